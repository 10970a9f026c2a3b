package genling

import (
	"errors"
	"fmt"
	"math"
)

// Filter is a probabilistic accept/reject rule over generated words.
//
// On each check a random draw decides whether the rule applies at all. When it
// does not (the draw is at or above probability) the filter returns !permit. When
// it does, a match returns permit and a miss returns !permit. With the defaults
// (probability 1, permit false) a filter rejects every word its pattern matches.
type Filter struct {
	matcher     Matcher
	probability float64
	permit      bool
}

// NewFilter returns a filter around an arbitrary matcher.
func NewFilter(m Matcher, probability float64, permit bool) (*Filter, error) {
	if m == nil {
		return nil, configError(ErrNilComponent, errors.New("nil matcher"))
	}
	if err := validateProbability(probability); err != nil {
		return nil, err
	}
	return &Filter{matcher: m, probability: probability, permit: permit}, nil
}

// NewSimpleFilter returns a filter that matches pattern as a literal substring.
func NewSimpleFilter(pattern string, probability float64, permit bool) (*Filter, error) {
	return NewFilter(LiteralMatcher(pattern), probability, permit)
}

// NewRegexFilter returns a filter that searches for pattern as a regular expression.
// The pattern is compiled here, so a malformed one fails with ErrInvalidPattern.
func NewRegexFilter(pattern string, probability float64, permit bool) (*Filter, error) {
	m, err := RegexMatcher(pattern)
	if err != nil {
		return nil, err
	}
	return NewFilter(m, probability, permit)
}

// IsPermitted reports whether s passes the filter.
func (f *Filter) IsPermitted(src Source, s string) bool {
	if !chance(src, f.probability) {
		return !f.permit
	}
	if f.matcher.Match(s) {
		return f.permit
	}
	return !f.permit
}

// IsRejected is the negation of IsPermitted.
func (f *Filter) IsRejected(src Source, s string) bool {
	return !f.IsPermitted(src, s)
}

func validateProbability(p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%w: %g", ErrInvalidProbability, p)
	}
	return nil
}
