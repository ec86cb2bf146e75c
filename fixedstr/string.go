package fixedstr

import (
	"math"
	"unicode/utf8"

	"github.com/pavanmanishd/fixedcore"
	"github.com/pavanmanishd/fixedcore/arena"
	"github.com/pavanmanishd/fixedcore/textconv"
)

// String is a NUL-terminated UTF-8 string stored in a buffer of fixed
// capacity. The capacity counts the terminator, so a String of capacity C
// holds at most C-1 bytes of text. The buffer is allocated once, by New or
// carved from an arena by NewIn, and never reallocated.
//
// Text that does not fit is cut at the last whole codepoint that does, and the
// write reports a *fixedcore.CapacityError along with the number of bytes it
// did store. Malformed UTF-8 input is rejected with a
// *fixedcore.EncodingError and leaves the string unchanged.
//
// A String is not safe for concurrent use.
type String struct {
	buf []byte // len(buf) is the capacity; buf[n] == 0
	n   int
}

// New returns an empty String of the given capacity. It panics if capacity < 1.
func New(capacity int) *String {
	if capacity < 1 {
		panic("fixedstr: capacity must be at least 1")
	}
	return &String{buf: make([]byte, capacity)}
}

// NewIn is like New but takes the buffer from a. The String must not be used
// after a is reset or released.
func NewIn(a *arena.Arena, capacity int) (*String, error) {
	if capacity < 1 {
		panic("fixedstr: capacity must be at least 1")
	}
	buf, err := a.AllocBytes(capacity)
	if err != nil {
		return nil, err
	}
	return &String{buf: buf}, nil
}

// From returns a String of the given capacity holding s, truncated if needed.
// The String is always returned; the error reports truncation or rejection.
func From(capacity int, s string) (*String, error) {
	str := New(capacity)
	_, err := str.Assign(s)
	return str, err
}

func (s *String) Len() int       { return s.n }
func (s *String) Cap() int       { return len(s.buf) }
func (s *String) MaxLen() int    { return len(s.buf) - 1 }
func (s *String) Available() int { return len(s.buf) - 1 - s.n }
func (s *String) Empty() bool    { return s.n == 0 }

// Clear empties the string.
func (s *String) Clear() {
	s.setLen(0)
}

func (s *String) setLen(n int) {
	s.n = n
	s.buf[n] = 0
}

// validate rejects p unless it is well-formed UTF-8.
func validate(op string, p []byte) error {
	if off := textconv.ValidUTF8(p); off >= 0 {
		return fixedcore.NewEncodingError(op, off)
	}
	return nil
}

// fit returns how much of p can be stored in room bytes without splitting a
// codepoint, and the error to report if that is not all of it.
func fit(op string, p []byte, room int) (int, error) {
	if len(p) <= room {
		return len(p), nil
	}
	return textconv.LastBoundary(p, room), fixedcore.NewCapacityError(op, len(p), room)
}

func (s *String) set(op string, p []byte) (int, error) {
	if err := validate(op, p); err != nil {
		return 0, err
	}
	k, err := fit(op, p, s.MaxLen())
	copy(s.buf, p[:k])
	s.setLen(k)
	return k, err
}

func (s *String) add(op string, p []byte) (int, error) {
	if err := validate(op, p); err != nil {
		return 0, err
	}
	k, err := fit(op, p, s.Available())
	copy(s.buf[s.n:], p[:k])
	s.setLen(s.n + k)
	return k, err
}

// Assign replaces the content with str.
func (s *String) Assign(str string) (int, error) {
	return s.set("fixedstr.Assign", stringBytes(str))
}

// AssignBytes replaces the content with p.
func (s *String) AssignBytes(p []byte) (int, error) {
	return s.set("fixedstr.AssignBytes", p)
}

// Append adds str to the end.
func (s *String) Append(str string) (int, error) {
	return s.add("fixedstr.Append", stringBytes(str))
}

// Write adds p to the end. It implements io.Writer: a short count comes with
// a non-nil error.
func (s *String) Write(p []byte) (int, error) {
	return s.add("fixedstr.Write", p)
}

// WriteString implements io.StringWriter.
func (s *String) WriteString(str string) (int, error) {
	return s.add("fixedstr.WriteString", stringBytes(str))
}

// WriteByte appends an ASCII byte. Bytes >= 0x80 cannot form a codepoint on
// their own and are rejected.
func (s *String) WriteByte(c byte) error {
	if c >= utf8.RuneSelf {
		return fixedcore.NewEncodingError("fixedstr.WriteByte", 0)
	}
	if s.Available() < 1 {
		return fixedcore.NewCapacityError("fixedstr.WriteByte", 1, 0)
	}
	s.buf[s.n] = c
	s.setLen(s.n + 1)
	return nil
}

// WriteRune appends the UTF-8 encoding of r. Invalid runes are written as
// U+FFFD. A rune that does not fit is not written.
func (s *String) WriteRune(r rune) (int, error) {
	size := utf8.RuneLen(r)
	if size < 0 {
		r, size = utf8.RuneError, 3
	}
	if size > s.Available() {
		return 0, fixedcore.NewCapacityError("fixedstr.WriteRune", size, s.Available())
	}
	utf8.EncodeRune(s.buf[s.n:], r)
	s.setLen(s.n + size)
	return size, nil
}

// AppendRepeat appends count copies of r, as many as fit. It panics if count
// is negative.
func (s *String) AppendRepeat(r rune, count int) (int, error) {
	if count < 0 {
		panic("fixedstr: negative repeat count")
	}
	size := utf8.RuneLen(r)
	if size < 0 {
		r, size = utf8.RuneError, 3
	}
	room := s.Available()
	fits := min(count, room/size)
	for i := 0; i < fits; i++ {
		utf8.EncodeRune(s.buf[s.n:], r)
		s.n += size
	}
	s.setLen(s.n)
	if fits < count {
		need := math.MaxInt
		if count <= math.MaxInt/size {
			need = count * size
		}
		return fits * size, fixedcore.NewCapacityError("fixedstr.AppendRepeat", need, room)
	}
	return fits * size, nil
}

// AppendInt appends v in base. The number is written whole or not at all.
func (s *String) AppendInt(v int64, base int) error {
	n, err := textconv.Itoa(s.buf[s.n:], v, base)
	if err != nil {
		return err
	}
	s.setLen(s.n + n)
	return nil
}

// AppendUint appends v in base. The number is written whole or not at all.
func (s *String) AppendUint(v uint64, base int) error {
	n, err := textconv.Utoa(s.buf[s.n:], v, base)
	if err != nil {
		return err
	}
	s.setLen(s.n + n)
	return nil
}

// AppendFloat appends v with precision significant digits, whole or not at all.
func (s *String) AppendFloat(v float64, precision int) error {
	n, err := textconv.Ftoa(s.buf[s.n:], v, precision)
	if err != nil {
		return err
	}
	s.setLen(s.n + n)
	return nil
}

// checkBoundary panics unless pos is a codepoint boundary inside [0, Len()].
func (s *String) checkBoundary(pos int) {
	if pos < 0 || pos > s.n {
		panic("fixedstr: position out of range")
	}
	if pos < s.n && !textconv.RuneStart(s.buf[pos]) {
		panic("fixedstr: position splits a codepoint")
	}
}

// Insert inserts str at byte position pos, which must be a codepoint boundary.
// The existing tail is kept; if str does not fit, its longest whole-codepoint
// prefix that does is inserted.
func (s *String) Insert(pos int, str string) (int, error) {
	s.checkBoundary(pos)
	p := stringBytes(str)
	if err := validate("fixedstr.Insert", p); err != nil {
		return 0, err
	}
	return s.insert("fixedstr.Insert", pos, p)
}

func (s *String) insert(op string, pos int, p []byte) (int, error) {
	k, err := fit(op, p, s.Available())
	copy(s.buf[pos+k:], s.buf[pos:s.n])
	copy(s.buf[pos:], p[:k])
	s.setLen(s.n + k)
	return k, err
}

// Erase removes n bytes starting at pos. A negative n, or one that runs past
// the end, erases to the end. Both ends must be codepoint boundaries.
func (s *String) Erase(pos, n int) {
	s.checkBoundary(pos)
	end := s.n
	if n >= 0 && n < end-pos {
		end = pos + n
	}
	s.checkBoundary(end)
	copy(s.buf[pos:], s.buf[end:s.n])
	s.setLen(s.n - (end - pos))
}

// Replace erases n bytes at pos and inserts str in their place.
func (s *String) Replace(pos, n int, str string) (int, error) {
	s.checkBoundary(pos)
	p := stringBytes(str)
	if err := validate("fixedstr.Replace", p); err != nil {
		return 0, err
	}
	s.Erase(pos, n)
	return s.insert("fixedstr.Replace", pos, p)
}

// PopRune removes the last codepoint and returns it with its encoded size.
// On an empty string it returns (utf8.RuneError, 0) and does nothing.
func (s *String) PopRune() (rune, int) {
	if s.n == 0 {
		return utf8.RuneError, 0
	}
	i := textconv.LastRuneStart(s.buf[:s.n])
	r, size := utf8.DecodeRune(s.buf[i:s.n])
	s.setLen(i)
	return r, size
}

// RuneCount returns the number of codepoints in the string.
func (s *String) RuneCount() int {
	return utf8.RuneCount(s.buf[:s.n])
}

// At returns the byte at i. It panics if i is out of range.
func (s *String) At(i int) byte {
	if i < 0 || i >= s.n {
		panic("fixedstr: index out of range")
	}
	return s.buf[i]
}

// Front returns the first byte. It panics on an empty string.
func (s *String) Front() byte {
	if s.n == 0 {
		panic("fixedstr: Front of empty string")
	}
	return s.buf[0]
}

// Back returns the last byte. It panics on an empty string.
func (s *String) Back() byte {
	if s.n == 0 {
		panic("fixedstr: Back of empty string")
	}
	return s.buf[s.n-1]
}

// Bytes returns the content without the terminator. The slice aliases the
// buffer and is valid until the next mutation.
func (s *String) Bytes() []byte { return s.buf[:s.n:s.n] }

// CString returns the content including its NUL terminator.
func (s *String) CString() []byte { return s.buf[: s.n+1 : s.n+1] }

// String returns a copy of the content.
func (s *String) String() string { return string(s.buf[:s.n]) }

// View returns a view of the content.
func (s *String) View() View { return View{b: s.Bytes()} }

// Substr returns a new String of the same capacity holding n bytes from pos.
// A negative n means the rest. Both ends must be codepoint boundaries.
func (s *String) Substr(pos, n int) *String {
	s.checkBoundary(pos)
	end := s.n
	if n >= 0 && n < end-pos {
		end = pos + n
	}
	s.checkBoundary(end)
	out := New(len(s.buf))
	copy(out.buf, s.buf[pos:end])
	out.setLen(end - pos)
	return out
}

// Clone returns a copy with the same capacity.
func (s *String) Clone() *String {
	return s.Substr(0, -1)
}

// CopyFrom replaces the content with src's, truncating if src is longer than
// this string can hold.
func (s *String) CopyFrom(src *String) (int, error) {
	k, err := fit("fixedstr.CopyFrom", src.Bytes(), s.MaxLen())
	copy(s.buf, src.buf[:k])
	s.setLen(k)
	return k, err
}
