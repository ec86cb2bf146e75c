package textconv

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/pavanmanishd/fixedcore"
	"github.com/pavanmanishd/fixedcore/platform"
)

// wideEncoding returns the encoding of wchar_t strings on t: UTF-16 or UTF-32
// in the target's byte order, without a BOM.
func wideEncoding(t platform.Target) encoding.Encoding {
	big := isBigEndian(t)
	if t.WideCharSize() == 2 {
		if big {
			return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		}
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	}
	if big {
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	}
	return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
}

func isBigEndian(t platform.Target) bool {
	var one [2]byte
	t.ByteOrder().PutUint16(one[:], 1)
	return one[0] == 0
}

// EncodeWideBytes writes the byte image of src as a wchar_t string on t into
// dst: what a native wide-string buffer on that target would contain. No
// terminator is written. Returns the number of bytes written.
func EncodeWideBytes(dst, src []byte, t platform.Target) (int, error) {
	const op = "textconv.EncodeWideBytes"

	size := t.WideCharSize()
	units := 0
	for i := 0; i < len(src); {
		r, n := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && n <= 1 {
			return 0, fixedcore.NewEncodingError(op, i)
		}
		if size == 2 && r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		i += n
	}
	if need := units * size; need > len(dst) {
		return 0, fixedcore.NewCapacityError(op, need, len(dst))
	}

	nDst, _, err := wideEncoding(t).NewEncoder().Transform(dst, src, true)
	if err == transform.ErrShortDst {
		return 0, fixedcore.NewCapacityError(op, units*size, len(dst))
	}
	if err != nil {
		return 0, err
	}
	return nDst, nil
}

// DecodeWideBytes converts the byte image of a wchar_t string on t back to
// UTF-8 in dst. No terminator is written. Returns the number of bytes written.
func DecodeWideBytes(dst, src []byte, t platform.Target) (int, error) {
	const op = "textconv.DecodeWideBytes"

	size := t.WideCharSize()
	if rem := len(src) % size; rem != 0 {
		return 0, fixedcore.NewEncodingError(op, len(src)-rem)
	}

	order := t.ByteOrder()
	need := 0
	for i := 0; i < len(src); {
		var r rune
		if size == 2 {
			u := rune(order.Uint16(src[i:]))
			i += 2
			if utf16.IsSurrogate(u) {
				if i+2 > len(src) {
					return 0, fixedcore.NewEncodingError(op, i-2)
				}
				r = utf16.DecodeRune(u, rune(order.Uint16(src[i:])))
				if r == utf8.RuneError {
					return 0, fixedcore.NewEncodingError(op, i-2)
				}
				i += 2
			} else {
				r = u
			}
		} else {
			v := order.Uint32(src[i:])
			if v > utf8.MaxRune || utf16.IsSurrogate(rune(v)) {
				return 0, fixedcore.NewEncodingError(op, i)
			}
			r = rune(v)
			i += 4
		}
		need += utf8.RuneLen(r)
	}
	if need > len(dst) {
		return 0, fixedcore.NewCapacityError(op, need, len(dst))
	}

	nDst, _, err := wideEncoding(t).NewDecoder().Transform(dst, src, true)
	if err == transform.ErrShortDst {
		return 0, fixedcore.NewCapacityError(op, need, len(dst))
	}
	if err != nil {
		return 0, err
	}
	return nDst, nil
}
