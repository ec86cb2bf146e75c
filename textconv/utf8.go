package textconv

import (
	"bytes"
	"unicode/utf8"

	"github.com/pavanmanishd/fixedcore"
)

// UTF8Len returns the number of codepoints in b. All len(b) bytes are counted,
// embedded NULs included. On malformed input it returns the count decoded so
// far and an *fixedcore.EncodingError at the offending offset.
func UTF8Len(b []byte) (int, error) {
	n := 0
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			n++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return n, fixedcore.NewEncodingError("textconv.UTF8Len", i)
		}
		i += size
		n++
	}
	return n, nil
}

// ValidUTF8 reports the offset of the first malformed sequence in b, or -1.
func ValidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	_, err := UTF8Len(b)
	if e, ok := err.(*fixedcore.EncodingError); ok {
		return e.Offset
	}
	return 0
}

// CStrLen returns the length of the NUL-terminated string at the start of b,
// or len(b) if b holds no terminator.
func CStrLen(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// RuneStart reports whether c can begin a codepoint, i.e. it is not a
// 10xxxxxx continuation byte.
func RuneStart(c byte) bool {
	return c&0xC0 != 0x80
}

// SequenceLen returns the encoded length announced by lead byte c, or 0 for
// continuation bytes and bytes that never start a valid sequence.
func SequenceLen(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0xC2:
		return 0
	case c < 0xE0:
		return 2
	case c < 0xF0:
		return 3
	case c < 0xF5:
		return 4
	default:
		return 0
	}
}

// LastBoundary returns the largest k <= limit such that b[:k] ends on a
// codepoint boundary. b must be valid UTF-8.
func LastBoundary(b []byte, limit int) int {
	if limit >= len(b) {
		return len(b)
	}
	if limit <= 0 {
		return 0
	}
	k := limit
	for k > 0 && !RuneStart(b[k]) {
		k--
	}
	return k
}

// LastRuneStart returns the index where the final codepoint of b begins, or
// -1 if b is empty. It walks back over at most utf8.UTFMax bytes.
func LastRuneStart(b []byte) int {
	i := len(b) - 1
	stop := len(b) - utf8.UTFMax
	for i > 0 && i > stop && !RuneStart(b[i]) {
		i--
	}
	return i
}
