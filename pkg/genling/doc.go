// Package genling generates words for constructed languages from a declarative
// phonological model.
//
// A model is a four-level hierarchy, each level a weighted random choice over the
// one below it:
//
//   • Phoneme  – a grapheme and its weight.
//   • Segment  – one choice among phonemes, wrapped in a prefix and suffix.
//   • Syllable – segments in order, joined by an infix, with a placement rule
//     (Position) and a weight.
//   • Stem     – picks a word length from its balance, fills every slot with an
//     eligible syllable, and rejects candidates that fail its filters.
//
// Filters and Replaces are the post-generation layer. A Filter accepts or rejects
// a word by literal substring or regular expression, enforced with a given
// probability. A Stem retries up to MaxAttempts (100 by default) times and then
// returns ErrGenerationExhausted. A Replace rewrites a word in a single pass; the
// stem never applies replaces, callers do (see ReplaceAll).
//
// # Randomness
//
// Every random decision draws from a Source. *rand.Rand satisfies the interface.
// Methods accept a Source argument; nil selects DefaultSource(), a time-seeded
// generator guarded by a mutex and safe for concurrent use. NewSource returns a
// seeded source for reproducible output; it must stay on one goroutine. Give each
// goroutine its own source, or use NewLockedSource.
//
// # Positions
//
// Word slots are 1-based. At(1) is the first syllable, At(-1) the last, At(-2) the
// one before the last. Between(2, -2) is every slot except the first and last.
// Anywhere(), the zero Position, places no restriction.
//
// # Errors
//
// Constructors validate their input and return errors joined with
// ErrInvalidConfig: empty lists, negative or all-zero weights, zero bounds in a
// range, and word lengths with an empty slot. Regular expressions are compiled at
// construction and fail with ErrInvalidPattern.
//
// # Usage
//
//	cons := genling.MustSegment(genling.Phonemes("k", "t", "n", "s"), nil)
//	vowel := genling.MustSegment([]genling.Phoneme{
//	    {Grapheme: "a", Weight: 3},
//	    {Grapheme: "i", Weight: 2},
//	    {Grapheme: "u", Weight: 1},
//	}, nil)
//
//	cv := genling.MustSyllable([]*genling.Segment{cons, vowel}, nil)
//	final := genling.MustSyllable([]*genling.Segment{cons, vowel, cons}, &genling.SyllableOptions{
//	    Position: genling.At(-1),
//	})
//
//	noTripleA, _ := genling.NewRegexFilter("a{3}", 1, false)
//	stem := genling.MustStem([]*genling.Syllable{cv, final}, &genling.StemOptions{
//	    Balance: []float64{1, 3, 2},
//	    Filters: []*genling.Filter{noTripleA},
//	})
//
//	word, err := stem.Generate()
//	if errors.Is(err, genling.ErrGenerationExhausted) {
//	    // relax the filters
//	}
package genling
