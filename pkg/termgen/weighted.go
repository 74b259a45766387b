package termgen

// Choice is one entry of a weighted table.
type Choice[T any] struct {
	Item   T
	Weight int
}

// Weighted is a table of items drawn with probability proportional to
// their weight. Entries with a non-positive weight are never drawn.
type Weighted[T any] struct {
	choices []Choice[T]
	total   int
}

// NewWeighted builds a table, dropping entries with a non-positive weight.
func NewWeighted[T any](choices ...Choice[T]) Weighted[T] {
	w := Weighted[T]{choices: make([]Choice[T], 0, len(choices))}
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		w.choices = append(w.choices, c)
		w.total += c.Weight
	}
	return w
}

// Total is the sum of all weights.
func (w Weighted[T]) Total() int {
	return w.total
}

func (w Weighted[T]) Len() int {
	return len(w.choices)
}

// Pick draws one item. It panics on an empty table.
func (w Weighted[T]) Pick(src Source) T {
	if w.total == 0 {
		panic("termgen: pick from empty weighted table")
	}
	r := src.IntN(w.total)
	for _, c := range w.choices {
		if r < c.Weight {
			return c.Item
		}
		r -= c.Weight
	}
	// Only reachable if src returns a value outside [0, total).
	return w.choices[len(w.choices)-1].Item
}

// Offset returns the first draw value that selects an item matching pred.
func (w Weighted[T]) Offset(pred func(T) bool) (int, bool) {
	off := 0
	for _, c := range w.choices {
		if pred(c.Item) {
			return off, true
		}
		off += c.Weight
	}
	return 0, false
}

// Without returns a copy of the table without the items matching pred.
func (w Weighted[T]) Without(pred func(T) bool) Weighted[T] {
	kept := make([]Choice[T], 0, len(w.choices))
	for _, c := range w.choices {
		if !pred(c.Item) {
			kept = append(kept, c)
		}
	}
	return NewWeighted(kept...)
}
