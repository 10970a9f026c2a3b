package genling

import "errors"

// Replace is a probabilistic rewrite rule applied by callers to generated words.
// A Stem never applies replaces on its own.
type Replace struct {
	rewriter    Rewriter
	probability float64
}

// NewReplace returns a rule around an arbitrary rewriter.
func NewReplace(r Rewriter, probability float64) (*Replace, error) {
	if r == nil {
		return nil, configError(ErrNilComponent, errors.New("nil rewriter"))
	}
	if err := validateProbability(probability); err != nil {
		return nil, err
	}
	return &Replace{rewriter: r, probability: probability}, nil
}

// NewSimpleReplace returns a rule replacing every literal occurrence of pattern.
func NewSimpleReplace(pattern, replacement string, probability float64) (*Replace, error) {
	return NewReplace(LiteralRewriter(pattern, replacement), probability)
}

// NewRegexReplace returns a rule substituting every match of pattern.
// The pattern is compiled here, so a malformed one fails with ErrInvalidPattern.
func NewRegexReplace(pattern, replacement string, probability float64) (*Replace, error) {
	rw, err := RegexRewriter(pattern, replacement)
	if err != nil {
		return nil, err
	}
	return NewReplace(rw, probability)
}

// Replace rewrites s in a single pass, or returns it unchanged when the draw
// is at or above the rule's probability.
func (r *Replace) Replace(src Source, s string) string {
	if !chance(src, r.probability) {
		return s
	}
	return r.rewriter.Rewrite(s)
}

// ReplaceAll applies rules to s in order, each once.
func ReplaceAll(src Source, s string, rules ...*Replace) string {
	src = sourceOrDefault(src)
	for _, r := range rules {
		s = r.Replace(src, s)
	}
	return s
}
