package genling

import (
	"fmt"
	"math"
	"strings"
)

// SyllableOptions configures a Syllable. Zero fields take the defaults:
// Position anywhere and Weight 1.
type SyllableOptions struct {
	// Position restricts where in a word the syllable may appear.
	Position Position

	// Weight is the relative chance of this syllable among those eligible for a slot.
	// Must be positive; zero means the default of 1.
	Weight float64

	// Prefix and Suffix wrap the joined segments.
	Prefix string
	Suffix string

	// Infix is placed between segments.
	Infix string
}

func defaultSyllableOptions() *SyllableOptions {
	return &SyllableOptions{Weight: 1}
}

func (o *SyllableOptions) merge(defaults *SyllableOptions) *SyllableOptions {
	if o == nil {
		return defaults
	}
	result := *o
	if result.Weight == 0 {
		result.Weight = defaults.Weight
	}
	return &result
}

// Syllable is an ordered sequence of segments with a placement rule and a weight.
type Syllable struct {
	segments []*Segment
	position Position
	weight   float64
	prefix   string
	suffix   string
	infix    string
}

// NewSyllable validates the segments and options and returns a Syllable.
func NewSyllable(segments []*Segment, opts *SyllableOptions) (*Syllable, error) {
	o := opts.merge(defaultSyllableOptions())

	if len(segments) == 0 {
		return nil, configError(ErrEmptySegments, nil)
	}
	for i, seg := range segments {
		if seg == nil {
			return nil, configError(ErrNilComponent, fmt.Errorf("segment %d", i))
		}
	}
	if o.Weight < 0 || math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
		return nil, configError(ErrInvalidWeight, fmt.Errorf("weight %g", o.Weight))
	}
	if err := o.Position.validate(); err != nil {
		return nil, configError(err, nil)
	}

	return &Syllable{
		segments: append([]*Segment(nil), segments...),
		position: o.Position,
		weight:   o.Weight,
		prefix:   o.Prefix,
		suffix:   o.Suffix,
		infix:    o.Infix,
	}, nil
}

// MustSyllable is like NewSyllable but panics on error.
func MustSyllable(segments []*Segment, opts *SyllableOptions) *Syllable {
	s, err := NewSyllable(segments, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Position returns the placement rule.
func (s *Syllable) Position() Position { return s.position }

// Weight returns the sampling weight.
func (s *Syllable) Weight() float64 { return s.weight }

// IsPermittedPosition reports whether the syllable may fill the 0-based slot i
// of a word that has total syllables.
func (s *Syllable) IsPermittedPosition(i, total int) bool {
	return s.position.Permits(i, total)
}

// Generate produces every segment in order, joined by the infix and wrapped in the affixes.
func (s *Syllable) Generate(src Source) (string, error) {
	src = sourceOrDefault(src)

	parts := make([]string, len(s.segments))
	for i, seg := range s.segments {
		part, err := seg.Generate(src)
		if err != nil {
			return "", err
		}
		parts[i] = part
	}
	return s.prefix + strings.Join(parts, s.infix) + s.suffix, nil
}
