package textconv

import "github.com/pavanmanishd/fixedcore"

const groupSize = 3

// GroupDigits inserts sep between every three digits of the integer part at
// the start of buf[:n] (after an optional sign), in place. buf must have room
// for the grown text plus a terminator; otherwise buf is left untouched and a
// capacity error is returned. It returns the new length.
//
//	"-1234567.89" -> "-1,234,567.89"
func GroupDigits(buf []byte, n int, sep string) (int, error) {
	if n < 0 || n > len(buf) {
		panic("textconv: GroupDigits length out of range")
	}

	start := 0
	if n > 0 && (buf[0] == '-' || buf[0] == '+') {
		start = 1
	}
	digits := 0
	for start+digits < n && buf[start+digits] >= '0' && buf[start+digits] <= '9' {
		digits++
	}
	if digits <= groupSize || len(sep) == 0 {
		return n, nil
	}

	groups := (digits - 1) / groupSize
	total := n + groups*len(sep)
	if total+1 > len(buf) {
		return n, fixedcore.NewCapacityError("textconv.GroupDigits", total+1, len(buf))
	}

	end := start + digits
	copy(buf[end+groups*len(sep):total], buf[end:n])
	buf[total] = 0

	// Walk the digits right to left; the write cursor stays ahead of the read
	// cursor by the separators still to be placed.
	w, r := end+groups*len(sep), end
	for i := 0; i < digits; i++ {
		if i > 0 && i%groupSize == 0 {
			w -= len(sep)
			copy(buf[w:w+len(sep)], sep)
		}
		r--
		w--
		buf[w] = buf[r]
	}
	return total, nil
}
