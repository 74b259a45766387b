package lambda

import (
	"fmt"
	"sort"
)

// Term represents a lambda calculus term.
type Term interface {
	String() string
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda) over a single argument.
// `\x y. M` is parsed as Abs{x, Abs{y, M}}.
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(\\%s. %s)", a.Arg, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Occurrences counts variable occurrences in t. Binding names are not
// occurrences.
func Occurrences(t Term) int {
	switch v := t.(type) {
	case Var:
		return 1
	case Abs:
		return Occurrences(v.Body)
	case App:
		return Occurrences(v.Fun) + Occurrences(v.Arg)
	default:
		return 0
	}
}

// FreeVars returns the sorted, distinct names occurring free in t.
func FreeVars(t Term) []string {
	seen := make(map[string]bool)
	bound := make(map[string]int)
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Var:
			if bound[v.Name] == 0 {
				seen[v.Name] = true
			}
		case Abs:
			bound[v.Arg]++
			walk(v.Body)
			bound[v.Arg]--
		case App:
			walk(v.Fun)
			walk(v.Arg)
		}
	}
	walk(t)

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
