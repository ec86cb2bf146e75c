package textconv

import (
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/pavanmanishd/fixedcore"
)

// Wide is a wide-character unit: uint16 holds UTF-16, uint32 holds UTF-32.
type Wide interface {
	~uint16 | ~uint32
}

func isUTF16[W Wide]() bool {
	var w W
	return unsafe.Sizeof(w) == 2
}

// UTF8ToWide decodes all of src into dst and terminates it with a 0 unit.
// It returns the number of units written, not counting the terminator.
// A destination too small for the whole result, or malformed input, is an
// error and leaves dst empty.
func UTF8ToWide[W Wide](dst []W, src []byte) (int, error) {
	return utf8ToWide("textconv.UTF8ToWide", dst, src, -1)
}

// UTF8ToWideN is UTF8ToWide limited to the first count codepoints of src.
// Bytes after the count-th codepoint are not examined.
func UTF8ToWideN[W Wide](dst []W, src []byte, count int) (int, error) {
	if count < 0 {
		count = 0
	}
	return utf8ToWide("textconv.UTF8ToWideN", dst, src, count)
}

func utf8ToWide[W Wide](op string, dst []W, src []byte, limit int) (int, error) {
	surrogates := isUTF16[W]()

	// First pass validates and sizes so a failure never leaves partial output.
	need := 0
	end := 0
	for decoded := 0; end < len(src) && (limit < 0 || decoded < limit); decoded++ {
		r, size := rune(src[end]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[end:])
			if r == utf8.RuneError && size <= 1 {
				if len(dst) > 0 {
					dst[0] = 0
				}
				return 0, fixedcore.NewEncodingError(op, end)
			}
		}
		if surrogates && r > 0xFFFF {
			need += 2
		} else {
			need++
		}
		end += size
	}
	if len(dst) < need+1 {
		if len(dst) > 0 {
			dst[0] = 0
		}
		return 0, fixedcore.NewCapacityError(op, need+1, len(dst))
	}

	n := 0
	for i := 0; i < end; {
		r, size := utf8.DecodeRune(src[i:])
		i += size
		if surrogates && r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			dst[n] = W(r1)
			dst[n+1] = W(r2)
			n += 2
			continue
		}
		dst[n] = W(r)
		n++
	}
	dst[n] = 0
	return n, nil
}

// WideToUTF8 encodes src up to its first 0 unit (or its end) as UTF-8 into dst
// followed by a NUL. Unpaired surrogates and values above U+10FFFF are
// malformed. On failure dst is left empty.
func WideToUTF8[W Wide](dst []byte, src []W) (int, error) {
	const op = "textconv.WideToUTF8"

	need := 0
	end := 0
	for end < len(src) && src[end] != 0 {
		r, width := decodeWide(src, end)
		if width == 0 {
			terminate(dst)
			return 0, fixedcore.NewEncodingError(op, end)
		}
		need += utf8.RuneLen(r)
		end += width
	}
	if len(dst) < need+1 {
		terminate(dst)
		return 0, fixedcore.NewCapacityError(op, need+1, len(dst))
	}

	n := 0
	for i := 0; i < end; {
		r, width := decodeWide(src, i)
		n += utf8.EncodeRune(dst[n:], r)
		i += width
	}
	dst[n] = 0
	return n, nil
}

// decodeWide decodes the codepoint at src[i]. width is the number of units
// consumed, 0 if the sequence is malformed.
func decodeWide[W Wide](src []W, i int) (rune, int) {
	if !isUTF16[W]() {
		v := uint32(src[i])
		if v > utf8.MaxRune || utf16.IsSurrogate(rune(v)) {
			return utf8.RuneError, 0
		}
		return rune(v), 1
	}
	u := rune(src[i])
	if !utf16.IsSurrogate(u) {
		return u, 1
	}
	if i+1 >= len(src) {
		return utf8.RuneError, 0
	}
	r := utf16.DecodeRune(u, rune(src[i+1]))
	if r == utf8.RuneError {
		return utf8.RuneError, 0
	}
	return r, 2
}

// WideLen returns the number of units before the first 0 unit in src.
func WideLen[W Wide](src []W) int {
	for i, u := range src {
		if u == 0 {
			return i
		}
	}
	return len(src)
}
