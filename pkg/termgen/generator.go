// Package termgen generates random, syntactically valid lambda-calculus
// terms in backslash syntax (\x y. M).
package termgen

import (
	"io"
	"strings"
)

// DefaultMaxDepth bounds parenthesis nesting. Past it "(" is no longer
// drawn; the token count contract is unaffected.
const DefaultMaxDepth = 4096

// Stats counts what a Generator has emitted so far.
type Stats struct {
	Bindings int
	Groups   int
	Literals int
	MaxDepth int
	// Units is every output unit written, parentheses and bindings included.
	Units int
}

// Generator writes random terms to an output stream.
type Generator struct {
	src      Source
	out      *Writer
	maxDepth int
	depth    int
	stats    Stats
}

// New returns a Generator drawing from src and writing to w.
func New(src Source, w io.Writer) *Generator {
	return &Generator{
		src:      src,
		out:      NewWriter(w),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth changes the nesting cap. Values below 1 restore the default.
func (g *Generator) SetMaxDepth(n int) {
	if n < 1 {
		n = DefaultMaxDepth
	}
	g.maxDepth = n
}

func (g *Generator) Stats() Stats {
	st := g.stats
	st.Units = g.out.Units()
	return st
}

// Err returns the first error hit while writing output.
func (g *Generator) Err() error {
	return g.out.Err()
}

// Binding writes one binding clause such as `\x y.`. It does not count
// towards any token budget.
func (g *Generator) Binding() {
	var sb strings.Builder
	sb.WriteString(Lambda.Text)
	sb.WriteString(firstBindingName.Pick(g.src))

	pool := bindingPool()
	for name := pool.Pick(g.src); name != terminator; name = pool.Pick(g.src) {
		sb.WriteByte(' ')
		sb.WriteString(name)
	}
	sb.WriteString(terminator)

	g.out.Unit(sb.String())
	g.stats.Bindings++
}

// Expression writes one term holding at least minTokens literal tokens
// and returns how many it wrote. Bindings and parentheses are not
// counted. minTokens below 1 is treated as 1 so the term is never empty.
func (g *Generator) Expression(minTokens int) int {
	if minTokens < 1 {
		minTokens = 1
	}

	g.depth++
	defer func() { g.depth-- }()
	if g.depth > g.stats.MaxDepth {
		g.stats.MaxDepth = g.depth
	}

	count := 0
	for count < minTokens {
		tok := g.draw()
		switch tok.Kind {
		case KindLambda:
			// The binding's body is whatever the loop emits next.
			g.Binding()
			continue
		case KindOpen:
			g.out.Unit(Open.Text)
			g.stats.Groups++
			count += g.Expression(minTokens - count)
			g.out.Unit(Close.Text)
		default:
			g.out.Unit(tok.Text)
			g.stats.Literals++
			count++
		}
	}
	return count
}

// Line writes one output line: a term followed by consecutive further
// terms, each in its own parentheses. The first term is parenthesized
// only when consecutive > 0. It returns the summed token count.
func (g *Generator) Line(minTokens, consecutive int) int {
	total := 0
	if consecutive > 0 {
		total += g.group(minTokens)
	} else {
		total += g.Expression(minTokens)
	}
	for i := 0; i < consecutive; i++ {
		total += g.group(minTokens)
	}
	g.out.EndLine()
	return total
}

func (g *Generator) group(minTokens int) int {
	g.out.Unit(Open.Text)
	n := g.Expression(minTokens)
	g.out.Unit(Close.Text)
	return n
}

func (g *Generator) draw() Token {
	if g.depth >= g.maxDepth {
		return flatTable.Pick(g.src)
	}
	return tokenTable.Pick(g.src)
}
