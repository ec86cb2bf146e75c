// Package locfit checks localization string tables against the fixed-capacity
// strings the engine stores them in, reporting which entries would be
// truncated and how many wide units each needs on the target platform.
package locfit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pavanmanishd/fixedcore"
	"github.com/pavanmanishd/fixedcore/arena"
	"github.com/pavanmanishd/fixedcore/callbacks"
	"github.com/pavanmanishd/fixedcore/fixedstr"
	"github.com/pavanmanishd/fixedcore/platform"
	"github.com/pavanmanishd/fixedcore/textconv"
)

// maxSubscribers bounds the result listeners: printer, stats and strict.
const maxSubscribers = 4

// ErrTruncated is returned by Run in strict mode when an entry does not fit.
var ErrTruncated = errors.New("entry truncated")

// Result is the outcome of checking one entry.
type Result struct {
	Table     string
	Key       string
	Capacity  int
	Bytes     int // length of the full text
	Runes     int
	WideUnits int // wchar_t units for the full text on the target
	Stored    string
	Truncated bool
}

// Stats aggregates results across a run.
type Stats struct {
	Tables    int
	Entries   int
	Truncated int
	// HighWater is the most arena bytes in use at once, scratch included.
	HighWater int
}

func (s *Stats) add(r Result) {
	s.Entries++
	if r.Truncated {
		s.Truncated++
	}
}

type checker struct {
	target  platform.Target
	arena   *arena.Arena
	results *callbacks.Pool[Result]
	stats   Stats
	logger  *log.Logger
}

func newChecker(cfg Config) (*checker, error) {
	target, ok := platform.ParseTarget(cfg.Target)
	if !ok {
		return nil, fmt.Errorf("unknown target %q", cfg.Target)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "locfit: ", 0)
	}
	c := &checker{
		target:  target,
		arena:   arena.NewArena(cfg.ArenaSize),
		results: callbacks.New[Result](maxSubscribers),
		logger:  logger,
	}
	if _, err := c.results.Subscribe(c.stats.add); err != nil {
		return nil, err
	}
	return c, nil
}

// checkTable runs every entry of t through a fixed string carved from the
// checker's arena and publishes a Result for each. The arena is reset when
// the table is done.
func (c *checker) checkTable(name string, t Table, fallback int) error {
	defer c.arena.Reset()

	for _, e := range t.Entries {
		capacity := t.capacityFor(e, fallback)
		s, err := fixedstr.NewIn(c.arena, capacity)
		if err != nil {
			return fmt.Errorf("%s: %s: arena: %w", name, e.Key, err)
		}

		_, err = s.Assign(e.Text)
		truncated := errors.Is(err, fixedcore.ErrCapacityExceeded)
		if err != nil && !truncated {
			return fmt.Errorf("%s: %s: %w", name, e.Key, err)
		}

		runes, err := fixedstr.ViewString(e.Text).RuneCount()
		if err != nil {
			return fmt.Errorf("%s: %s: %w", name, e.Key, err)
		}
		wide, err := c.wideUnits(e.Text)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", name, e.Key, err)
		}

		c.results.Dispatch(Result{
			Table:     name,
			Key:       e.Key,
			Capacity:  capacity,
			Bytes:     len(e.Text),
			Runes:     runes,
			WideUnits: wide,
			Stored:    s.String(),
			Truncated: truncated,
		})
	}

	c.stats.Tables++
	c.stats.HighWater = c.arena.HighWater()
	return nil
}

// wideUnits encodes text as a wchar_t string for the target in arena scratch
// space that is given back before returning.
func (c *checker) wideUnits(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	m := c.arena.Mark()
	defer c.arena.Rewind(m)

	// Every UTF-8 byte yields at most 4 bytes of either encoding.
	scratch, err := c.arena.AllocBytes(len(text) * 4)
	if err != nil {
		return 0, fmt.Errorf("arena: %w", err)
	}
	n, err := textconv.EncodeWideBytes(scratch, []byte(text), c.target)
	if err != nil {
		return 0, err
	}
	return n / c.target.WideCharSize(), nil
}

// Run checks every table named in cfg.Files and writes a report to out.
// ctx is checked between tables.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if len(cfg.Files) == 0 {
		return errors.New("no table files given")
	}
	c, err := newChecker(cfg)
	if err != nil {
		return err
	}

	c.logger.Printf("checking %d tables for %s on host %s (cpu: %s)", len(cfg.Files), c.target, platform.Host(), platform.DetectFeatures())

	p := &printer{w: out}
	if _, err := c.results.Subscribe(p.print); err != nil {
		return err
	}
	var strict *strictWatch
	if cfg.Strict {
		strict = &strictWatch{pool: c.results}
		if strict.handle, err = c.results.Subscribe(strict.observe); err != nil {
			return err
		}
	}

	for _, path := range cfg.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := LoadTable(path)
		if err != nil {
			return err
		}
		if len(t.Entries) == 0 {
			c.logger.Printf("%s: no entries", path)
		}
		if err := c.checkTable(path, t, cfg.Capacity); err != nil {
			return err
		}
	}

	p.summary(c.stats, c.target, c.arena.Capacity())
	if p.err != nil {
		return fmt.Errorf("write report: %w", p.err)
	}
	if strict != nil && strict.first != nil {
		return fmt.Errorf("%s: %s: %w (%d of %d entries)", strict.first.Table, strict.first.Key, ErrTruncated, c.stats.Truncated, c.stats.Entries)
	}
	if c.stats.Truncated > 0 {
		c.logger.Printf("%d of %d entries truncated", c.stats.Truncated, c.stats.Entries)
	}
	return nil
}

// strictWatch keeps the first truncated result and then unsubscribes itself.
type strictWatch struct {
	pool   *callbacks.Pool[Result]
	handle callbacks.Handle
	first  *Result
}

func (s *strictWatch) observe(r Result) {
	if !r.Truncated {
		return
	}
	s.first = &r
	s.pool.Unsubscribe(s.handle)
}
