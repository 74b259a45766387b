package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vic/lcr/pkg/fixture"
	"github.com/vic/lcr/pkg/termgen"
)

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/lcr/cmd/gentests/helper"
//go:embed input.lc
var input string
func Test_%s_WellFormed(t *testing.T) {
	gentests.CheckWellFormed(t, "%s", input, %d)
}
`

func main() {
	count := flag.Int("n", 20, "number of fixtures")
	minTokens := flag.Int("min", 5, "minimum literal tokens per term")
	seed := flag.Uint64("seed", 1, "first seed; fixture i uses seed+i")
	baseDir := flag.String("dir", "cmd/gentests/generated", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *baseDir, err)
		os.Exit(1)
	}

	manifest := fixture.NewSet(*seed, *minTokens, 0)
	for i := 0; i < *count; i++ {
		s := *seed + uint64(i)
		name := fmt.Sprintf("%03d_seed%d", i+1, s)

		var sb strings.Builder
		gen := termgen.New(termgen.NewSource(s), &sb)
		tokens := gen.Expression(*minTokens)
		term := sb.String()
		manifest.Add(term, tokens)

		dir := filepath.Join(*baseDir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}

		testGo := fmt.Sprintf(testTemplate, name, name, tokens)
		if err := os.WriteFile(filepath.Join(dir, "input.lc"), []byte(term+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			os.Exit(1)
		}
		if err := os.WriteFile(filepath.Join(dir, "wellformed_test.go"), []byte(testGo), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	f, err := os.Create(filepath.Join(*baseDir, "manifest.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating manifest: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := manifest.Write(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d tests\n", *count)
}
