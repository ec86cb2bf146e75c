// Package textconv converts integers and floats to text and UTF-8 to and from
// wide characters. Every routine writes into a caller-supplied buffer, never
// past its length, and terminates the output with a zero unit. On failure the
// buffer is left holding an empty terminated result.
package textconv

import (
	"strconv"
	"unsafe"

	"github.com/pavanmanishd/fixedcore"
)

// Base range accepted by the integer routines. Digits past 9 are a-z.
const (
	MinBase = 2
	MaxBase = 36
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func checkBase(base int) {
	if base < MinBase || base > MaxBase {
		panic("textconv: base must be in [2, 36]")
	}
}

// terminate leaves dst as an empty terminated string.
func terminate(dst []byte) {
	if len(dst) > 0 {
		dst[0] = 0
	}
}

// Utoa writes v in base followed by a NUL into dst and returns the digit
// count. If dst cannot hold the digits plus the terminator nothing but the
// empty terminator is written.
func Utoa(dst []byte, v uint64, base int) (int, error) {
	checkBase(base)
	return formatInt("textconv.Utoa", dst, v, base, false)
}

// Itoa is the signed counterpart of Utoa; negative values get a leading '-'.
func Itoa(dst []byte, v int64, base int) (int, error) {
	checkBase(base)
	if v < 0 {
		return formatInt("textconv.Itoa", dst, -uint64(v), base, true)
	}
	return formatInt("textconv.Itoa", dst, uint64(v), base, false)
}

func formatInt(op string, dst []byte, u uint64, base int, neg bool) (int, error) {
	n := countDigits(u, base)
	if neg {
		n++
	}
	if len(dst) < n+1 {
		terminate(dst)
		return 0, fixedcore.NewCapacityError(op, n+1, len(dst))
	}

	i := 0
	b := uint64(base)
	for {
		dst[i] = digitChars[u%b]
		i++
		u /= b
		if u == 0 {
			break
		}
	}
	if neg {
		dst[i] = '-'
		i++
	}
	Reverse(dst[:i])
	dst[i] = 0
	return i, nil
}

func countDigits(u uint64, base int) int {
	b := uint64(base)
	n := 1
	for u >= b {
		u /= b
		n++
	}
	return n
}

// MaxDigits returns the number of digits the widest unsigned value of the
// given bit width needs in base.
func MaxDigits(bits, base int) int {
	checkBase(base)
	if bits <= 0 || bits > 64 {
		panic("textconv: bits must be in [1, 64]")
	}
	return countDigits(^uint64(0)>>(64-bits), base)
}

// BufferSize returns the destination size that can hold any value of the
// given width in base, including sign and terminator.
func BufferSize(bits, base int, signed bool) int {
	if !signed {
		return MaxDigits(bits, base) + 1
	}
	checkBase(base)
	if bits <= 0 || bits > 64 {
		panic("textconv: bits must be in [1, 64]")
	}
	// the widest magnitude of a signed type is 1<<(bits-1)
	return countDigits(uint64(1)<<(bits-1), base) + 2
}

// ParseUint parses b (digits only, either case) as an unsigned value of the
// given width.
func ParseUint(b []byte, base, bits int) (uint64, error) {
	checkBase(base)
	return strconv.ParseUint(bytesView(b), base, bits)
}

// ParseInt parses b with an optional sign as a signed value of the given width.
func ParseInt(b []byte, base, bits int) (int64, error) {
	checkBase(base)
	return strconv.ParseInt(bytesView(b), base, bits)
}

// bytesView aliases b as a string for read-only use.
func bytesView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// Reverse reverses b in place.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
