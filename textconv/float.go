package textconv

import (
	"math"
	"strconv"

	"github.com/pavanmanishd/fixedcore"
)

// MaxFloatPrecision is the number of significant digits that round-trips a
// float64.
const MaxFloatPrecision = 17

// ShortestPrecision asks Ftoa for the fewest digits that read back as the
// same float64.
const ShortestPrecision = -1

// Ftoa writes v with precision significant digits into dst followed by a NUL,
// using plain notation for moderate exponents and e-notation otherwise.
// Trailing zeros are dropped. A negative precision means ShortestPrecision.
// NaN and infinities are written as "nan", "+inf" and "-inf".
func Ftoa(dst []byte, v float64, precision int) (int, error) {
	switch {
	case precision < 0:
		precision = ShortestPrecision
	case precision == 0:
		precision = 1
	}
	if precision > MaxFloatPrecision {
		precision = MaxFloatPrecision
	}

	var scratch [32]byte
	var out []byte
	switch {
	case math.IsNaN(v):
		out = append(scratch[:0], "nan"...)
	case math.IsInf(v, 1):
		out = append(scratch[:0], "+inf"...)
	case math.IsInf(v, -1):
		out = append(scratch[:0], "-inf"...)
	default:
		out = strconv.AppendFloat(scratch[:0], v, 'g', precision, 64)
	}

	if len(dst) < len(out)+1 {
		terminate(dst)
		return 0, fixedcore.NewCapacityError("textconv.Ftoa", len(out)+1, len(dst))
	}
	n := copy(dst, out)
	dst[n] = 0
	return n, nil
}
