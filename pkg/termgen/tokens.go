package termgen

type Kind int

const (
	KindBound Kind = iota
	KindFree
	KindLambda
	KindOpen
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindBound:
		return "bound"
	case KindFree:
		return "free"
	case KindLambda:
		return "lambda"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	default:
		return "unknown"
	}
}

type Token struct {
	Kind Kind
	Text string
}

var (
	Lambda = Token{KindLambda, `\`}
	Open   = Token{KindOpen, "("}
	Close  = Token{KindClose, ")"}
)

func bound(name string) Choice[Token] {
	return Choice[Token]{Token{KindBound, name}, 1}
}

func free(name string) Choice[Token] {
	return Choice[Token]{Token{KindFree, name}, 1}
}

// Literal tokens lead the table so that a source stuck at zero always
// draws a literal and generation ends.
var tokenTable = NewWeighted(
	bound("a"), bound("b"), bound("c"), bound("d"), bound("e"),
	bound("x"), bound("y"), bound("z"),
	free("A"), free("B"), free("C"), free("D"), free("E"), free("F"), free("G"),
	Choice[Token]{Lambda, 6},
	Choice[Token]{Open, 3},
)

// flatTable is used once the nesting cap is reached.
var flatTable = tokenTable.Without(func(t Token) bool { return t.Kind == KindOpen })

// bindingNames are the names a binding may declare.
var bindingNames = []string{"x", "y", "z", "w", "a"}

const (
	terminator       = "."
	terminatorWeight = 3
)

var firstBindingName = func() Weighted[string] {
	cs := make([]Choice[string], 0, len(bindingNames))
	for _, n := range bindingNames {
		cs = append(cs, Choice[string]{n, 1})
	}
	return NewWeighted(cs...)
}()

// bindingPool builds the table for the names after the first one.
// The terminator comes first so that a source stuck at zero ends the
// binding.
func bindingPool() Weighted[string] {
	cs := make([]Choice[string], 0, len(bindingNames)+1)
	cs = append(cs, Choice[string]{terminator, terminatorWeight})
	for _, n := range bindingNames {
		cs = append(cs, Choice[string]{n, 1})
	}
	return NewWeighted(cs...)
}
