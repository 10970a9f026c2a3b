package genling

// Phoneme is a single grapheme together with its sampling weight.
type Phoneme struct {
	Grapheme string
	Weight   float64
}

// NewPhoneme returns a phoneme with the default weight of 1.
func NewPhoneme(grapheme string) Phoneme {
	return Phoneme{Grapheme: grapheme, Weight: 1}
}

// Phonemes returns equally weighted phonemes for the given graphemes.
func Phonemes(graphemes ...string) []Phoneme {
	out := make([]Phoneme, len(graphemes))
	for i, g := range graphemes {
		out[i] = NewPhoneme(g)
	}
	return out
}
