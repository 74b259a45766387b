package termgen

import "io"

// Writer emits output units separated by single spaces. A unit is
// preceded by a space unless it starts a line, so lines never carry
// trailing whitespace. The first write error is kept and all later
// writes are dropped.
type Writer struct {
	w       io.Writer
	midLine bool
	err     error
	units   int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Unit writes one output unit.
func (w *Writer) Unit(s string) {
	if w.midLine {
		w.write(" ")
	}
	w.write(s)
	w.midLine = true
	w.units++
}

// EndLine terminates the current line.
func (w *Writer) EndLine() {
	w.write("\n")
	w.midLine = false
}

// Units reports how many units have been written.
func (w *Writer) Units() int {
	return w.units
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}
