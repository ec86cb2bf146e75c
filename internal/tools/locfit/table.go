package locfit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is one localization string table.
type Table struct {
	// Capacity is the table default. Zero defers to Config.Capacity.
	Capacity int     `yaml:"capacity"`
	Entries  []Entry `yaml:"entries"`
}

// Entry is one localized string and the capacity it is stored in.
type Entry struct {
	Key      string `yaml:"key"`
	Text     string `yaml:"text"`
	Capacity int    `yaml:"capacity"`
}

// DecodeTable reads a YAML table from r. Unknown fields are rejected.
func DecodeTable(r io.Reader) (Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("yaml decode: %w", err)
	}
	if err := t.validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// LoadTable reads the YAML table at path.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := DecodeTable(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t Table) validate() error {
	if t.Capacity < 0 {
		return fmt.Errorf("table capacity must not be negative, got %d", t.Capacity)
	}
	seen := make(map[string]struct{}, len(t.Entries))
	for i, e := range t.Entries {
		if e.Key == "" {
			return fmt.Errorf("entry %d: key is required", i)
		}
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("entry %d: duplicate key %q", i, e.Key)
		}
		seen[e.Key] = struct{}{}
		if e.Capacity < 0 {
			return fmt.Errorf("entry %q: capacity must not be negative, got %d", e.Key, e.Capacity)
		}
	}
	return nil
}

// capacityFor resolves an entry's capacity: its own, then the table's, then
// fallback.
func (t Table) capacityFor(e Entry, fallback int) int {
	if e.Capacity > 0 {
		return e.Capacity
	}
	if t.Capacity > 0 {
		return t.Capacity
	}
	return fallback
}
