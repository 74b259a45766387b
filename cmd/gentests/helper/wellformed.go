package gentests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vic/lcr/pkg/lambda"
)

// CheckWellFormed parses a generated term, confirms it holds the
// expected number of variable occurrences and that its printed form
// parses back to the same term up to renaming of bound variables.
func CheckWellFormed(t *testing.T, testName string, inputStr string, tokens int) {
	t.Helper()
	input := strings.TrimSpace(inputStr)

	term, err := lambda.Parse(input)
	if err != nil {
		t.Fatalf("%s: parse error: %v\nInput: %s", testName, err, input)
	}

	if got := lambda.Occurrences(term); got != tokens {
		t.Errorf("%s: expected %d variable occurrences, got %d\nInput: %s", testName, tokens, got, input)
	}

	printed := term.String()
	reparsed, err := lambda.Parse(printed)
	if err != nil {
		t.Fatalf("%s: printed form does not parse: %v\nPrinted: %s", testName, err, printed)
	}

	if a, b := Normalize(term).String(), Normalize(reparsed).String(); a != b {
		t.Errorf("Mismatch in %s:\nInput:    %s\nOriginal: %s\nReparsed: %s", testName, input, a, b)
	}
	t.Logf("%s: %d occurrences, free %v", testName, tokens, lambda.FreeVars(term))
}

// Normalize renames bound variables to a canonical sequence x0, x1, ...
// Free variables keep their names.
func Normalize(t lambda.Term) lambda.Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(lambda.Term) lambda.Term
	walk = func(tt lambda.Term) lambda.Term {
		switch v := tt.(type) {
		case lambda.Var:
			if name, ok := bindings[v.Name]; ok {
				return lambda.Var{Name: name}
			}
			return v
		case lambda.Abs:
			canon := fmt.Sprintf("x%d", idx)
			idx++
			// shadowing: save old if any
			old, had := bindings[v.Arg]
			bindings[v.Arg] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Arg] = old
			} else {
				delete(bindings, v.Arg)
			}
			return lambda.Abs{Arg: canon, Body: body}
		case lambda.App:
			return lambda.App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(t)
}
