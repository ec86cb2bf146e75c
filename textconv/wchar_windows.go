//go:build windows

package textconv

// WChar matches the platform's wchar_t: UTF-16 code units on Windows.
type WChar = uint16
