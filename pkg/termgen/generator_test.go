package termgen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vic/lcr/pkg/lambda"
)

// scripted replays a fixed sequence of draws.
type scripted struct {
	t     *testing.T
	draws []int
	pos   int
}

func (s *scripted) IntN(n int) int {
	s.t.Helper()
	if s.pos >= len(s.draws) {
		s.t.Fatalf("scripted source exhausted after %d draws", s.pos)
	}
	v := s.draws[s.pos]
	s.pos++
	if v < 0 || v >= n {
		s.t.Fatalf("draw %d: value %d out of range [0, %d)", s.pos, v, n)
	}
	return v
}

func (s *scripted) done() bool {
	return s.pos == len(s.draws)
}

func tok(t *testing.T, text string) int {
	t.Helper()
	off, ok := tokenTable.Offset(func(tk Token) bool { return tk.Text == text })
	if !ok {
		t.Fatalf("token %q not in table", text)
	}
	return off
}

func first(t *testing.T, name string) int {
	t.Helper()
	off, ok := firstBindingName.Offset(func(s string) bool { return s == name })
	if !ok {
		t.Fatalf("binding name %q not in table", name)
	}
	return off
}

func more(t *testing.T, name string) int {
	t.Helper()
	off, ok := bindingPool().Offset(func(s string) bool { return s == name })
	if !ok {
		t.Fatalf("binding entry %q not in pool", name)
	}
	return off
}

func run(t *testing.T, minTokens int, draws ...int) (string, int) {
	t.Helper()
	src := &scripted{t: t, draws: draws}
	var sb strings.Builder
	g := New(src, &sb)
	n := g.Expression(minTokens)
	if !src.done() {
		t.Fatalf("only %d of %d draws used", src.pos, len(draws))
	}
	return sb.String(), n
}

func TestExpressionLiterals(t *testing.T) {
	out, n := run(t, 2, tok(t, "x"), tok(t, "x"))
	if out != "x x" || n != 2 {
		t.Fatalf("expected %q/2, got %q/%d", "x x", out, n)
	}
}

func TestExpressionBindingIsFree(t *testing.T) {
	out, n := run(t, 2,
		tok(t, `\`), first(t, "x"), more(t, "."),
		tok(t, "y"), tok(t, "y"))
	if out != `\x. y y` || n != 2 {
		t.Fatalf("expected %q/2, got %q/%d", `\x. y y`, out, n)
	}
}

func TestBindingSeveralNames(t *testing.T) {
	out, n := run(t, 1,
		tok(t, `\`), first(t, "z"), more(t, "w"), more(t, "a"), more(t, "."),
		tok(t, "G"))
	if out != `\z w a. G` || n != 1 {
		t.Fatalf("expected %q/1, got %q/%d", `\z w a. G`, out, n)
	}
}

func TestExpressionGroup(t *testing.T) {
	// The sub-call inherits the whole remaining budget.
	out, n := run(t, 2, tok(t, "("), tok(t, "a"), tok(t, "B"))
	if out != "( a B )" || n != 2 {
		t.Fatalf("expected %q/2, got %q/%d", "( a B )", out, n)
	}
}

func TestExpressionGroupAfterLiteral(t *testing.T) {
	out, n := run(t, 3, tok(t, "c"), tok(t, "("), tok(t, "d"), tok(t, "e"))
	if out != "c ( d e )" || n != 3 {
		t.Fatalf("expected %q/3, got %q/%d", "c ( d e )", out, n)
	}
}

func TestExpressionZeroAndNegativeEmitOneToken(t *testing.T) {
	for _, min := range []int{0, -1, -50} {
		out, n := run(t, min, tok(t, "A"))
		if out != "A" || n != 1 {
			t.Fatalf("min %d: expected %q/1, got %q/%d", min, "A", out, n)
		}
	}
}

func TestNestedGroupNeverEmpty(t *testing.T) {
	out, n := run(t, 0, tok(t, "("), tok(t, "("), tok(t, "z"))
	if out != "( ( z ) )" || n != 1 {
		t.Fatalf("expected %q/1, got %q/%d", "( ( z ) )", out, n)
	}
}

func TestLine(t *testing.T) {
	src := &scripted{t: t, draws: []int{tok(t, "a"), tok(t, "b"), tok(t, "C")}}
	var sb strings.Builder
	g := New(src, &sb)

	if n := g.Line(1, 0); n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}
	if n := g.Line(1, 1); n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
	if want := "a\n( b ) ( C )\n"; sb.String() != want {
		t.Fatalf("expected %q, got %q", want, sb.String())
	}
}

func TestExhaustedByteSourceTerminates(t *testing.T) {
	var sb strings.Builder
	g := New(NewByteSource(nil), &sb)
	if n := g.Expression(5); n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}
	if sb.String() != "a a a a a" {
		t.Fatalf("unexpected output %q", sb.String())
	}
}

var bindingRE = regexp.MustCompile(`\\[a-z]+( [a-z]+)*\.`)

func checkBalanced(t *testing.T, out string) {
	t.Helper()
	depth := 0
	for _, f := range strings.Fields(out) {
		switch f {
		case "(":
			depth++
		case ")":
			depth--
			if depth < 0 {
				t.Fatalf("unmatched ')' in %q", out)
			}
		}
	}
	if depth != 0 {
		t.Fatalf("%d unclosed '(' in %q", depth, out)
	}
}

func TestRandomTermsAreWellFormed(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		for min := -1; min <= 8; min++ {
			var sb strings.Builder
			g := New(NewSource(seed), &sb)
			n := g.Expression(min)
			out := sb.String()

			if n < min || n < 1 {
				t.Fatalf("seed %d min %d: count %d below minimum", seed, min, n)
			}
			checkBalanced(t, out)
			if got := strings.Count(out, `\`); got != len(bindingRE.FindAllString(out, -1)) {
				t.Fatalf("seed %d min %d: malformed binding in %q", seed, min, out)
			}

			term, err := lambda.Parse(out)
			if err != nil {
				t.Fatalf("seed %d min %d: %v\n%s", seed, min, err, out)
			}
			if got := lambda.Occurrences(term); got != n {
				t.Fatalf("seed %d min %d: parsed %d occurrences, counted %d\n%s", seed, min, got, n, out)
			}
		}
	}
}

func TestSameSeedSameOutput(t *testing.T) {
	gen := func() string {
		var sb strings.Builder
		g := New(NewSource(42), &sb)
		for i := 0; i < 10; i++ {
			g.Line(4, 2)
		}
		return sb.String()
	}
	a, b := gen(), gen()
	if a != b {
		t.Fatalf("same seed produced different output:\n%s\n---\n%s", a, b)
	}
	if strings.Count(a, "\n") != 10 {
		t.Fatalf("expected 10 lines, got:\n%s", a)
	}
}

func TestMaxDepthCapsNesting(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		var sb strings.Builder
		g := New(NewSource(seed), &sb)
		g.SetMaxDepth(1)
		g.Expression(10)
		if strings.Contains(sb.String(), "(") {
			t.Fatalf("seed %d: group emitted past depth cap: %q", seed, sb.String())
		}
		if st := g.Stats(); st.MaxDepth != 1 || st.Groups != 0 {
			t.Fatalf("seed %d: unexpected stats %+v", seed, st)
		}
	}
}

func TestStats(t *testing.T) {
	src := &scripted{t: t, draws: []int{
		tok(t, `\`), first(t, "a"), more(t, "."),
		tok(t, "("), tok(t, "x"), tok(t, "D"),
	}}
	var sb strings.Builder
	g := New(src, &sb)
	g.Expression(2)

	want := Stats{Bindings: 1, Groups: 1, Literals: 2, MaxDepth: 2, Units: 5}
	if g.Stats() != want {
		t.Fatalf("expected %+v, got %+v", want, g.Stats())
	}
}
