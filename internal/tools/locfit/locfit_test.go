package locfit

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/fixedcore"
	"github.com/pavanmanishd/fixedcore/platform"
)

const uiTable = `capacity: 8
entries:
  - key: menu.start
    text: Start
  - key: menu.welcome
    text: Welcome back
  - key: menu.quit
    text: "Quitter ✓"
    capacity: 16
`

func writeTable(t *testing.T, name, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRunReport(t *testing.T) {
	path := writeTable(t, "ui.yaml", uiTable)
	var out bytes.Buffer

	err := Run(context.Background(), Config{
		Capacity:  32,
		ArenaSize: 65536,
		Target:    "windows/x64",
		Files:     []string{path},
		Logger:    quietLogger(),
	}, &out)
	require.NoError(t, err)

	want := strings.Join([]string{
		"== " + path,
		"ok    menu.start (5 bytes, 5 runes, 5 wide, cap 8)",
		`TRUNC menu.welcome (12 bytes, 12 runes, 12 wide, cap 8) stored "Welcome"`,
		"ok    menu.quit (11 bytes, 9 runes, 9 wide, cap 16)",
		"checked 3 entries in 1 tables for windows/x64: 1 truncated, arena high water 76 of 65536 bytes",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRunStrict(t *testing.T) {
	path := writeTable(t, "ui.yaml", uiTable)
	var out bytes.Buffer

	err := Run(context.Background(), Config{
		Capacity:  32,
		ArenaSize: 4096,
		Strict:    true,
		Target:    "linux/x64",
		Files:     []string{path},
		Logger:    quietLogger(),
	}, &out)
	require.ErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "menu.welcome")
	assert.Contains(t, err.Error(), "(1 of 3 entries)")
	assert.Contains(t, out.String(), "checked 3 entries", "the report is still complete")
}

func TestRunStrictPasses(t *testing.T) {
	path := writeTable(t, "ui.yaml", "entries:\n  - key: a\n    text: short\n")
	err := Run(context.Background(), Config{
		Capacity: 32, ArenaSize: 4096, Strict: true, Target: "host",
		Files: []string{path}, Logger: quietLogger(),
	}, io.Discard)
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	good := writeTable(t, "ui.yaml", uiTable)

	t.Run("no files", func(t *testing.T) {
		err := Run(context.Background(), Config{Capacity: 32, ArenaSize: 64, Target: "host"}, io.Discard)
		assert.EqualError(t, err, "no table files given")
	})
	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Run(ctx, Config{Capacity: 32, ArenaSize: 4096, Target: "host", Files: []string{good}}, io.Discard)
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("arena exhausted", func(t *testing.T) {
		err := Run(context.Background(), Config{Capacity: 32, ArenaSize: 16, Target: "host", Files: []string{good}}, io.Discard)
		require.ErrorIs(t, err, fixedcore.ErrCapacityExceeded)
		assert.Contains(t, err.Error(), "arena")
	})
	t.Run("missing file", func(t *testing.T) {
		err := Run(context.Background(), Config{Capacity: 32, ArenaSize: 4096, Target: "host", Files: []string{good, "/nonexistent/x.yaml"}}, io.Discard)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("unknown target", func(t *testing.T) {
		err := Run(context.Background(), Config{Capacity: 32, ArenaSize: 4096, Target: "beos", Files: []string{good}}, io.Discard)
		assert.EqualError(t, err, `unknown target "beos"`)
	})
}

func TestRunLogsEmptyTable(t *testing.T) {
	path := writeTable(t, "empty.yaml", "capacity: 8\n")
	var logs bytes.Buffer

	err := Run(context.Background(), Config{
		Capacity: 32, ArenaSize: 64, Target: "host",
		Files: []string{path}, Logger: log.New(&logs, "locfit: ", 0),
	}, io.Discard)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(logs.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "locfit: checking 1 tables for "+platform.Host().String()+" on host "+platform.Host().String()+" (cpu: "+platform.DetectFeatures().String()+")", lines[0])
	assert.Equal(t, "locfit: "+path+": no entries", lines[1])
}

func TestWideUnitsPerTarget(t *testing.T) {
	tests := []struct {
		target string
		text   string
		want   int
	}{
		{"windows/x64", "Start", 5},
		{"windows/x64", "🎮 go", 5},
		{"linux/arm64", "🎮 go", 4},
		{"switch/arm64", "日本語", 3},
		{"windows/x86", "", 0},
	}
	for _, tt := range tests {
		c, err := newChecker(Config{ArenaSize: 256, Target: tt.target, Logger: quietLogger()})
		require.NoError(t, err)

		got, err := c.wideUnits(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %q", tt.target, tt.text)
		assert.Equal(t, 0, c.arena.SizeInUse(), "scratch is given back")
	}
}

func TestCheckTableResetsArenaAndCounts(t *testing.T) {
	c, err := newChecker(Config{ArenaSize: 1024, Target: "linux/x64", Logger: quietLogger()})
	require.NoError(t, err)

	var got []Result
	_, err = c.results.Subscribe(func(r Result) { got = append(got, r) })
	require.NoError(t, err)

	tbl := Table{Entries: []Entry{
		{Key: "title", Text: "Très long titre", Capacity: 5},
		{Key: "ok", Text: "ok"},
	}}
	require.NoError(t, c.checkTable("fr.yaml", tbl, 8))
	require.NoError(t, c.checkTable("fr2.yaml", tbl, 8))

	assert.Equal(t, 0, c.arena.SizeInUse())
	require.Len(t, got, 4)
	assert.Equal(t, Result{
		Table: "fr.yaml", Key: "title", Capacity: 5,
		Bytes: 16, Runes: 15, WideUnits: 15,
		Stored: "Trè", Truncated: true,
	}, got[0])
	assert.False(t, got[1].Truncated)
	assert.Equal(t, 8, got[1].Capacity)
	assert.Equal(t, Stats{Tables: 2, Entries: 4, Truncated: 2, HighWater: c.arena.HighWater()}, c.stats)
}

func TestStrictWatchUnsubscribesAfterFirstFailure(t *testing.T) {
	c, err := newChecker(Config{ArenaSize: 1024, Target: "host", Logger: quietLogger()})
	require.NoError(t, err)

	w := &strictWatch{pool: c.results}
	w.handle, err = c.results.Subscribe(w.observe)
	require.NoError(t, err)
	require.Equal(t, 2, c.results.Len())

	c.results.Dispatch(Result{Key: "fine"})
	assert.Nil(t, w.first)

	c.results.Dispatch(Result{Key: "first", Truncated: true})
	c.results.Dispatch(Result{Key: "second", Truncated: true})
	require.NotNil(t, w.first)
	assert.Equal(t, "first", w.first.Key)
	assert.Equal(t, 1, c.results.Len())
	assert.False(t, c.results.Contains(w.handle))
}
