package lcr

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/vic/lcr/pkg/termgen"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds lcr command configuration.
type Config struct {
	Expressions int    `env:"LCR_EXPRESSIONS" envDefault:"1"`
	MinTokens   int    `env:"LCR_MIN_TOKENS"  envDefault:"3"`
	Consecutive int    `env:"LCR_CONSECUTIVE" envDefault:"0"`
	Seed        uint64 `env:"LCR_SEED"`
	MaxDepth    int    `env:"LCR_MAX_DEPTH"   envDefault:"4096"`
	Format      string `env:"LCR_FORMAT"      envDefault:"text"`
	Check       bool   `env:"LCR_CHECK"`
	Verbose     bool   `env:"LCR_VERBOSE"`
}

// ParseConfig reads the environment, then flags, then the positional
// arguments [expression_count] [min_tokens] [consecutive_count].
// A missing or non-numeric positional keeps the value it would
// otherwise have. Flags must come first; the first argument that is not
// a defined flag starts the positionals, even if it begins with "-".
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Expressions, "n", cfg.Expressions, "number of output lines")
	fs.IntVar(&cfg.MinTokens, "min", cfg.MinTokens, "minimum literal tokens per term")
	fs.IntVar(&cfg.Consecutive, "consecutive", cfg.Consecutive, "extra parenthesized terms per line")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "parenthesis nesting cap")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or yaml")
	fs.BoolVar(&cfg.Check, "check", cfg.Check, "re-parse every generated line")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log run details to stderr")

	flagArgs, tail := splitFlags(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return Config{}, err
	}

	rest := append(fs.Args(), tail...)
	positional(rest, 0, &cfg.Expressions)
	positional(rest, 1, &cfg.MinTokens)
	positional(rest, 2, &cfg.Consecutive)

	switch cfg.Format {
	case FormatText, FormatYAML:
	default:
		return Config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = termgen.DefaultMaxDepth
	}
	return cfg, nil
}

// splitFlags cuts args at the first token that is not a defined flag, so
// that positionals such as "-3" are never mistaken for flags.
func splitFlags(fs *flag.FlagSet, args []string) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args[:i], args[i+1:]
		}
		if len(a) < 2 || a[0] != '-' {
			return args[:i], args[i:]
		}
		name := strings.TrimLeft(a, "-")
		hasValue := false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, hasValue = name[:eq], true
		}
		f := fs.Lookup(name)
		if f == nil {
			return args[:i], args[i:]
		}
		if hasValue {
			continue
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			continue
		}
		i++ // the flag's value
	}
	return args, nil
}

func positional(args []string, i int, dst *int) {
	if i >= len(args) {
		return
	}
	if v, err := strconv.Atoi(strings.TrimSpace(args[i])); err == nil {
		*dst = v
	}
}
