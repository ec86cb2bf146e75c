//go:build !windows

package textconv

// WChar matches the platform's wchar_t: UTF-32 code units outside Windows.
type WChar = uint32
