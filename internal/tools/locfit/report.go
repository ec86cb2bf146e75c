package locfit

import (
	"fmt"
	"io"

	"github.com/pavanmanishd/fixedcore/platform"
)

// printer writes one report line per result. The first write error is kept
// and later writes are skipped.
type printer struct {
	w     io.Writer
	table string
	err   error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) print(r Result) {
	if r.Table != p.table {
		p.table = r.Table
		p.printf("== %s\n", r.Table)
	}
	status := "ok"
	if r.Truncated {
		status = "TRUNC"
	}
	p.printf("%-5s %s (%d bytes, %d runes, %d wide, cap %d)", status, r.Key, r.Bytes, r.Runes, r.WideUnits, r.Capacity)
	if r.Truncated {
		p.printf(" stored %q", r.Stored)
	}
	p.printf("\n")
}

func (p *printer) summary(s Stats, target platform.Target, arenaSize int) {
	p.printf("checked %d entries in %d tables for %s: %d truncated, arena high water %d of %d bytes\n",
		s.Entries, s.Tables, target, s.Truncated, s.HighWater, arenaSize)
}
