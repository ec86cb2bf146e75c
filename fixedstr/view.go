// Package fixedstr provides a non-owning string view and a fixed-capacity,
// NUL-terminated UTF-8 string whose buffer is allocated once.
package fixedstr

import (
	"bytes"
	"unicode/utf8"
	"unsafe"

	"github.com/pavanmanishd/fixedcore/textconv"
)

// MaxScan bounds the terminator search of ViewCString.
const MaxScan = 1 << 20

// View is a read-only window onto bytes owned by someone else. The zero View
// is empty. A View must not outlive the memory it looks at.
type View struct {
	b []byte
}

// ViewBytes views b with an explicit length.
func ViewBytes(b []byte) View {
	return View{b: b[:len(b):len(b)]}
}

// ViewString views the bytes of s without copying. The result must not be
// written through.
func ViewString(s string) View {
	return View{b: stringBytes(s)}
}

// ViewCString views b up to its first NUL. The scan stops after
// min(len(b), MaxScan) bytes if no terminator is found.
func ViewCString(b []byte) View {
	limit := min(len(b), MaxScan)
	n := bytes.IndexByte(b[:limit], 0)
	if n < 0 {
		n = limit
	}
	return View{b: b[:n:n]}
}

func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (v View) Len() int    { return len(v.b) }
func (v View) Empty() bool { return len(v.b) == 0 }

// At returns the byte at i. It panics if i is out of range.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.b) {
		panic("fixedstr: index out of range")
	}
	return v.b[i]
}

// Front returns the first byte. It panics on an empty view.
func (v View) Front() byte {
	if len(v.b) == 0 {
		panic("fixedstr: Front of empty view")
	}
	return v.b[0]
}

// Back returns the last byte. It panics on an empty view.
func (v View) Back() byte {
	if len(v.b) == 0 {
		panic("fixedstr: Back of empty view")
	}
	return v.b[len(v.b)-1]
}

// Bytes returns the viewed bytes. The caller must not modify them.
func (v View) Bytes() []byte { return v.b }

// String returns a copy of the viewed bytes.
func (v View) String() string { return string(v.b) }

// RuneCount returns the number of codepoints in the view.
func (v View) RuneCount() (int, error) {
	return textconv.UTF8Len(v.b)
}

func (v View) Equal(s string) bool      { return string(v.b) == s }
func (v View) Compare(s string) int     { return bytes.Compare(v.b, stringBytes(s)) }
func (v View) HasPrefix(s string) bool  { return bytes.HasPrefix(v.b, stringBytes(s)) }
func (v View) HasSuffix(s string) bool  { return bytes.HasSuffix(v.b, stringBytes(s)) }
func (v View) Contains(s string) bool   { return bytes.Contains(v.b, stringBytes(s)) }
func (v View) ContainsByte(c byte) bool { return bytes.IndexByte(v.b, c) >= 0 }

// The *View variants compare against another view without copying either
// side, whatever storage each one points into.

func (v View) EqualView(o View) bool     { return bytes.Equal(v.b, o.b) }
func (v View) CompareView(o View) int    { return bytes.Compare(v.b, o.b) }
func (v View) HasPrefixView(o View) bool { return bytes.HasPrefix(v.b, o.b) }
func (v View) HasSuffixView(o View) bool { return bytes.HasSuffix(v.b, o.b) }
func (v View) ContainsView(o View) bool  { return bytes.Contains(v.b, o.b) }

// Index returns the first position at or after from where sub starts, or -1.
func (v View) Index(sub string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(v.b) {
		return -1
	}
	i := bytes.Index(v.b[from:], stringBytes(sub))
	if i < 0 {
		return -1
	}
	return from + i
}

// LastIndex returns the last position at or before pos where sub starts, or
// -1. A negative pos searches the whole view.
func (v View) LastIndex(sub string, pos int) int {
	end := len(v.b)
	if pos >= 0 && pos < end-len(sub) {
		end = pos + len(sub)
	}
	return bytes.LastIndex(v.b[:end], stringBytes(sub))
}

// IndexByte returns the first position at or after from holding c, or -1.
func (v View) IndexByte(c byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(v.b) {
		return -1
	}
	i := bytes.IndexByte(v.b[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// LastIndexByte returns the last position holding c, or -1.
func (v View) LastIndexByte(c byte) int {
	return bytes.LastIndexByte(v.b, c)
}

// IndexAny returns the position of the first codepoint at or after from that
// is in chars, or -1.
func (v View) IndexAny(chars string, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(v.b) {
		return -1
	}
	i := bytes.IndexAny(v.b[from:], chars)
	if i < 0 {
		return -1
	}
	return from + i
}

// IndexNotAny returns the position of the first codepoint at or after from
// that is not in chars, or -1.
func (v View) IndexNotAny(chars string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(v.b); {
		r, size := utf8.DecodeRune(v.b[i:])
		if !containsRune(chars, r) {
			return i
		}
		i += size
	}
	return -1
}

// LastIndexAny returns the position of the last codepoint in chars, or -1.
func (v View) LastIndexAny(chars string) int {
	return bytes.LastIndexAny(v.b, chars)
}

// LastIndexNotAny returns the position of the last codepoint not in chars,
// or -1.
func (v View) LastIndexNotAny(chars string) int {
	for end := len(v.b); end > 0; {
		r, size := utf8.DecodeLastRune(v.b[:end])
		end -= size
		if !containsRune(chars, r) {
			return end
		}
	}
	return -1
}

func containsRune(chars string, r rune) bool {
	for _, c := range chars {
		if c == r {
			return true
		}
	}
	return false
}

// Sub returns the view of n bytes starting at pos. A negative n, or one that
// runs past the end, means the rest of the view. It panics if pos > Len().
func (v View) Sub(pos, n int) View {
	if pos < 0 || pos > len(v.b) {
		panic("fixedstr: Sub position out of range")
	}
	end := len(v.b)
	if n >= 0 && n < end-pos {
		end = pos + n
	}
	return View{b: v.b[pos:end:end]}
}
