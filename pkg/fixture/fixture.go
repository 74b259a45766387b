// Package fixture stores generated terms as YAML documents that parser
// test suites can load.
package fixture

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Set is one batch of generated terms.
type Set struct {
	// Run identifies the batch.
	Run         string `yaml:"run"`
	Seed        uint64 `yaml:"seed"`
	MinTokens   int    `yaml:"min_tokens"`
	Consecutive int    `yaml:"consecutive,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case is one generated line.
type Case struct {
	Term string `yaml:"term"`
	// Tokens is the generator's count of literal tokens in Term.
	Tokens int `yaml:"tokens"`
}

func NewSet(seed uint64, minTokens, consecutive int) *Set {
	return &Set{
		Run:         uuid.NewString(),
		Seed:        seed,
		MinTokens:   minTokens,
		Consecutive: consecutive,
	}
}

func (s *Set) Add(term string, tokens int) {
	s.Cases = append(s.Cases, Case{Term: term, Tokens: tokens})
}

func (s *Set) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode fixture set: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode fixture set: %w", err)
	}
	return nil
}

func Read(r io.Reader) (*Set, error) {
	var s Set
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode fixture set: %w", err)
	}
	if _, err := uuid.Parse(s.Run); err != nil {
		return nil, fmt.Errorf("decode fixture set: bad run id %q: %w", s.Run, err)
	}
	return &s, nil
}
