package genling

import "fmt"

// SegmentOptions configures a Segment. A nil value means no affixes.
type SegmentOptions struct {
	// Prefix is prepended to the chosen grapheme.
	Prefix string

	// Suffix is appended to the chosen grapheme.
	Suffix string
}

// Segment is a weighted choice point over a set of phonemes.
type Segment struct {
	phonemes []Phoneme
	weights  []float64
	prefix   string
	suffix   string
}

// NewSegment validates the phoneme list and returns a Segment.
// The list must be non-empty, every weight non-negative, and at least one weight positive.
func NewSegment(phonemes []Phoneme, opts *SegmentOptions) (*Segment, error) {
	if len(phonemes) == 0 {
		return nil, configError(ErrEmptyPhonemes, nil)
	}

	weights := make([]float64, len(phonemes))
	for i, p := range phonemes {
		weights[i] = p.Weight
	}
	if _, _, err := sumWeights(weights); err != nil {
		return nil, configError(err, fmt.Errorf("segment phonemes %v", graphemes(phonemes)))
	}

	s := &Segment{
		phonemes: append([]Phoneme(nil), phonemes...),
		weights:  weights,
	}
	if opts != nil {
		s.prefix = opts.Prefix
		s.suffix = opts.Suffix
	}
	return s, nil
}

// MustSegment is like NewSegment but panics on error.
func MustSegment(phonemes []Phoneme, opts *SegmentOptions) *Segment {
	s, err := NewSegment(phonemes, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Phonemes returns a copy of the segment's phonemes.
func (s *Segment) Phonemes() []Phoneme {
	return append([]Phoneme(nil), s.phonemes...)
}

// Generate picks one phoneme and wraps its grapheme in the segment affixes.
func (s *Segment) Generate(src Source) (string, error) {
	i, err := WeightedChoice(src, s.weights)
	if err != nil {
		return "", configError(err, nil)
	}
	return s.prefix + s.phonemes[i].Grapheme + s.suffix, nil
}

func graphemes(phonemes []Phoneme) []string {
	out := make([]string, len(phonemes))
	for i, p := range phonemes {
		out[i] = p.Grapheme
	}
	return out
}
