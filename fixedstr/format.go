package fixedstr

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/pavanmanishd/fixedcore"
	"github.com/pavanmanishd/fixedcore/textconv"
)

// ErrInvalidFormat reports a format string with an unmatched brace, a
// placeholder count that differs from the argument count, or an argument of a
// type Assignf cannot write.
var ErrInvalidFormat = errors.New("invalid format string")

// float32 values are written with this many significant digits.
const float32Precision = 7

// CountPlaceholders returns the number of {} placeholders in format, or -1 if
// a brace is unmatched. {{ and }} stand for literal braces.
func CountPlaceholders(format string) int {
	count := 0
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case '{':
			if i+1 >= len(format) || (format[i+1] != '{' && format[i+1] != '}') {
				return -1
			}
			if format[i+1] == '}' {
				count++
			}
			i++
		case '}':
			if i+1 >= len(format) || format[i+1] != '}' {
				return -1
			}
			i++
		}
	}
	return count
}

// ValidateFormat reports whether format is well formed and has exactly args
// placeholders.
func ValidateFormat(format string, args int) error {
	n := CountPlaceholders(format)
	if n < 0 {
		return fmt.Errorf("%w: unmatched brace in %q", ErrInvalidFormat, format)
	}
	if n != args {
		return fmt.Errorf("%w: %d placeholders for %d arguments", ErrInvalidFormat, n, args)
	}
	return nil
}

// Assignf replaces the content with format, each {} taking the next argument.
// Arguments may be strings, Views, *Strings, bools, integers, floats, uintptr
// or unsafe.Pointer. A bad format, argument type or malformed text is rejected
// before anything changes. Otherwise the text is written as far as it fits:
// strings are cut at a codepoint boundary, numbers are written whole or not at
// all, and writing stops at the first piece that does not fit.
func (s *String) Assignf(format string, args ...any) (int, error) {
	const op = "fixedstr.Assignf"
	if err := checkFormat(op, format, args); err != nil {
		return 0, err
	}
	s.Clear()
	return s.appendFormat(op, format, args)
}

// Appendf is Assignf without clearing the existing content first.
func (s *String) Appendf(format string, args ...any) (int, error) {
	const op = "fixedstr.Appendf"
	if err := checkFormat(op, format, args); err != nil {
		return 0, err
	}
	return s.appendFormat(op, format, args)
}

func checkFormat(op, format string, args []any) error {
	if err := validate(op, stringBytes(format)); err != nil {
		return err
	}
	if err := ValidateFormat(format, len(args)); err != nil {
		return err
	}
	for i, a := range args {
		switch x := a.(type) {
		case string:
			if err := validate(op, stringBytes(x)); err != nil {
				return err
			}
		case View:
			if err := validate(op, x.b); err != nil {
				return err
			}
		case *String, bool, int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64, uintptr,
			float32, float64, unsafe.Pointer:
		default:
			return fmt.Errorf("%w: argument %d has unsupported type %T", ErrInvalidFormat, i, a)
		}
	}
	return nil
}

// appendFormat expects a format and arguments that passed checkFormat.
func (s *String) appendFormat(op, format string, args []any) (int, error) {
	start := s.n
	next := 0
	lit := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '{' && c != '}' {
			continue
		}
		if _, err := s.add(op, stringBytes(format[lit:i])); err != nil {
			return s.n - start, err
		}
		var err error
		if c == '{' && format[i+1] == '}' {
			err = s.appendArg(op, args[next])
			next++
		} else {
			err = s.appendWhole(op, format[i:i+1])
		}
		if err != nil {
			return s.n - start, err
		}
		i++
		lit = i + 1
	}
	_, err := s.add(op, stringBytes(format[lit:]))
	return s.n - start, err
}

func (s *String) appendArg(op string, a any) error {
	var err error
	switch x := a.(type) {
	case string:
		_, err = s.add(op, stringBytes(x))
	case View:
		_, err = s.add(op, x.b)
	case *String:
		_, err = s.add(op, x.Bytes())
	case bool:
		err = s.AppendBool(x)
	case int:
		err = s.AppendInt(int64(x), 10)
	case int8:
		err = s.AppendInt(int64(x), 10)
	case int16:
		err = s.AppendInt(int64(x), 10)
	case int32:
		err = s.AppendInt(int64(x), 10)
	case int64:
		err = s.AppendInt(x, 10)
	case uint:
		err = s.AppendUint(uint64(x), 10)
	case uint8:
		err = s.AppendUint(uint64(x), 10)
	case uint16:
		err = s.AppendUint(uint64(x), 10)
	case uint32:
		err = s.AppendUint(uint64(x), 10)
	case uint64:
		err = s.AppendUint(x, 10)
	case uintptr:
		err = s.AppendPointer(x)
	case unsafe.Pointer:
		err = s.AppendPointer(uintptr(x))
	case float32:
		err = s.AppendFloat(float64(x), float32Precision)
	case float64:
		err = s.AppendFloat(x, textconv.ShortestPrecision)
	}
	return err
}

// appendWhole appends str, which must be valid UTF-8, only if all of it fits.
func (s *String) appendWhole(op, str string) error {
	if len(str) > s.Available() {
		return fixedcore.NewCapacityError(op, len(str), s.Available())
	}
	copy(s.buf[s.n:], str)
	s.setLen(s.n + len(str))
	return nil
}

// AppendBool appends "true" or "false", whole or not at all.
func (s *String) AppendBool(v bool) error {
	if v {
		return s.appendWhole("fixedstr.AppendBool", "true")
	}
	return s.appendWhole("fixedstr.AppendBool", "false")
}

// AppendPointer appends p as 0x-prefixed hex padded to the pointer width, or
// "nil" for zero. It is written whole or not at all.
func (s *String) AppendPointer(p uintptr) error {
	const op = "fixedstr.AppendPointer"
	if p == 0 {
		return s.appendWhole(op, "nil")
	}
	const width = 2 * int(unsafe.Sizeof(uintptr(0)))
	var digits [2*8 + 1]byte
	n, err := textconv.Utoa(digits[:], uint64(p), 16)
	if err != nil {
		return err
	}
	need := 2 + width
	if need > s.Available() {
		return fixedcore.NewCapacityError(op, need, s.Available())
	}
	w := s.buf[s.n:]
	w[0], w[1] = '0', 'x'
	pad := width - n
	for i := 0; i < pad; i++ {
		w[2+i] = '0'
	}
	copy(w[2+pad:], digits[:n])
	s.setLen(s.n + need)
	return nil
}
