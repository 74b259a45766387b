package termgen

import "math/rand/v2"

// Source abstracts the source of randomness. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ByteSource uses a byte slice as a source of randomness.
// Once the data is exhausted every draw returns 0.
type ByteSource struct {
	data []byte
	pos  int
}

// NewByteSource returns a source that replays data.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

func (s *ByteSource) IntN(n int) int {
	if n <= 0 || s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}
