// Package lcr implements the lcr command: print random lambda terms.
package lcr

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/vic/lcr/pkg/fixture"
	"github.com/vic/lcr/pkg/lambda"
	"github.com/vic/lcr/pkg/termgen"
)

// Run generates cfg.Expressions lines and writes them to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "lcr: ", 0)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	var set *fixture.Set
	runID := uuid.NewString()
	if cfg.Format == FormatYAML {
		set = fixture.NewSet(seed, cfg.MinTokens, cfg.Consecutive)
		runID = set.Run
	}
	if cfg.Verbose {
		logger.Printf("run %s seed %d", runID, seed)
	}

	interactive := isTerminal(out)
	bw := bufio.NewWriter(out)

	var line strings.Builder
	gen := termgen.New(termgen.NewSource(seed), &line)
	gen.SetMaxDepth(cfg.MaxDepth)

	total := 0
	for i := 0; i < cfg.Expressions; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line.Reset()
		n := gen.Line(cfg.MinTokens, cfg.Consecutive)
		if err := gen.Err(); err != nil {
			return fmt.Errorf("generate line %d: %w", i+1, err)
		}
		total += n

		if cfg.Check {
			if err := checkLine(line.String(), n); err != nil {
				return fmt.Errorf("check line %d: %w", i+1, err)
			}
		}

		if set != nil {
			set.Add(strings.TrimSuffix(line.String(), "\n"), n)
			continue
		}
		if _, err := bw.WriteString(line.String()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if interactive {
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	if set != nil {
		if err := set.Write(bw); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Verbose {
		st := gen.Stats()
		logger.Printf("lines=%d tokens=%d units=%d bindings=%d groups=%d depth=%d",
			cfg.Expressions, total, st.Units, st.Bindings, st.Groups, st.MaxDepth)
	}
	return nil
}

// checkLine parses a generated line and confirms its variable count
// matches what the generator reported.
func checkLine(text string, tokens int) error {
	term, err := lambda.Parse(text)
	if err != nil {
		return fmt.Errorf("%q: %w", strings.TrimSpace(text), err)
	}
	if got := lambda.Occurrences(term); got != tokens {
		return fmt.Errorf("%q: parsed %d variables, generator counted %d", strings.TrimSpace(text), got, tokens)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
