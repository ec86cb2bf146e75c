package locfit

import (
	"flag"
	"fmt"
	"log"

	"github.com/pavanmanishd/fixedcore/internal/config"
	"github.com/pavanmanishd/fixedcore/platform"
)

// Config holds locfit command configuration.
type Config struct {
	Capacity  int
	ArenaSize int
	Strict    bool
	Target    string
	Files     []string

	// Logger receives diagnostics. Nil means stderr with a "locfit: " prefix.
	Logger *log.Logger
}

type envConfig struct {
	Capacity  int    `env:"LOCFIT_CAPACITY" envDefault:"32"`
	ArenaSize int    `env:"LOCFIT_ARENA_SIZE" envDefault:"65536"`
	Strict    bool   `env:"LOCFIT_STRICT"`
	Target    string `env:"LOCFIT_TARGET" envDefault:"host"`
}

// ParseConfig reads LOCFIT_* environment variables and then flags, which win.
// Remaining arguments are the table files to check.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Capacity:  envCfg.Capacity,
		ArenaSize: envCfg.ArenaSize,
		Strict:    envCfg.Strict,
		Target:    envCfg.Target,
	}

	fs.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "default string capacity in bytes, terminator included (env LOCFIT_CAPACITY)")
	fs.IntVar(&cfg.ArenaSize, "arena-size", cfg.ArenaSize, "arena region size per table in bytes (env LOCFIT_ARENA_SIZE)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail if any entry is truncated (env LOCFIT_STRICT)")
	fs.StringVar(&cfg.Target, "target", cfg.Target, "platform or platform/arch whose wchar_t width is reported (env LOCFIT_TARGET)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Files = fs.Args()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1, got %d", c.Capacity)
	}
	if c.ArenaSize < 1 {
		return fmt.Errorf("arena size must be at least 1, got %d", c.ArenaSize)
	}
	if _, ok := platform.ParseTarget(c.Target); !ok {
		return fmt.Errorf("unknown target %q", c.Target)
	}
	return nil
}
