package reference

import (
	"context"
	"fmt"
)

// Static is an in-memory Client keyed by CRN, used when no reference API is
// configured and in tests.
type Static struct {
	People map[string]Person
	Rosh   map[string]RoshSummary
	Flags  map[string][]string
}

var _ Client = (*Static)(nil)

func (s *Static) Person(_ context.Context, crn string) (Person, error) {
	p, ok := s.People[crn]
	if !ok {
		return Person{}, fmt.Errorf("person %s: %w", crn, ErrNotFound)
	}
	return p, nil
}

func (s *Static) RoshSummary(_ context.Context, crn string) (RoshSummary, error) {
	r, ok := s.Rosh[crn]
	if !ok {
		return RoshSummary{}, fmt.Errorf("rosh summary %s: %w", crn, ErrNotFound)
	}
	return r, nil
}

func (s *Static) RiskFlags(_ context.Context, crn string) ([]string, error) {
	f, ok := s.Flags[crn]
	if !ok {
		return nil, fmt.Errorf("risk flags %s: %w", crn, ErrNotFound)
	}
	return append([]string(nil), f...), nil
}
