package genling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/genling/pkg/genling"
)

// seqSource replays fixed draws in a loop.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func seq(vals ...float64) *seqSource {
	return &seqSource{vals: vals}
}

func segment(t testing.TB, graphemes ...string) *genling.Segment {
	t.Helper()
	s, err := genling.NewSegment(genling.Phonemes(graphemes...), nil)
	require.NoError(t, err)
	return s
}

func syllable(t testing.TB, opts *genling.SyllableOptions, segs ...*genling.Segment) *genling.Syllable {
	t.Helper()
	s, err := genling.NewSyllable(segs, opts)
	require.NoError(t, err)
	return s
}
