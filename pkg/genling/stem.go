package genling

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/genling/pkg/logger"
)

// DefaultMaxAttempts is the number of candidates a Stem generates before giving up.
const DefaultMaxAttempts = 100

// StemOptions configures a Stem. Zero fields take the defaults.
type StemOptions struct {
	// Balance holds the relative weight of each word length: Balance[i] is the
	// weight of a word with i+1 syllables. Default: [1].
	Balance []float64

	// Filters are checked in order against each candidate; any rejection discards it.
	Filters []*Filter

	// Prefix and Suffix wrap the joined syllables.
	Prefix string
	Suffix string

	// Infix is placed between syllables.
	Infix string

	// MaxAttempts caps the rejection loop. Default: DefaultMaxAttempts.
	MaxAttempts int

	// Source is used by Generate and GenerateN. Default: DefaultSource().
	Source Source

	// Logger receives a debug record per rejected candidate and a warning on
	// exhaustion. Default: discard.
	Logger *slog.Logger
}

func defaultStemOptions() *StemOptions {
	return &StemOptions{
		Balance:     []float64{1},
		MaxAttempts: DefaultMaxAttempts,
		Source:      DefaultSource(),
		Logger:      logger.Discard(),
	}
}

func (o *StemOptions) merge(defaults *StemOptions) *StemOptions {
	if o == nil {
		return defaults
	}
	result := *o
	if len(result.Balance) == 0 {
		result.Balance = defaults.Balance
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}
	if result.Source == nil {
		result.Source = defaults.Source
	}
	if result.Logger == nil {
		result.Logger = defaults.Logger
	}
	return &result
}

// Stem generates whole words: it picks a word length from the balance, fills each
// slot with an eligible syllable, and rejects candidates that fail its filters.
type Stem struct {
	syllables   []*Syllable
	balance     []float64
	filters     []*Filter
	prefix      string
	suffix      string
	infix       string
	maxAttempts int
	src         Source
	log         *slog.Logger
}

// NewStem validates the configuration and returns a Stem.
//
// Besides checking each field, it verifies that every word length with a positive
// balance weight has at least one eligible syllable in each slot, so Generate never
// hits an empty slot at run time.
func NewStem(syllables []*Syllable, opts *StemOptions) (*Stem, error) {
	o := opts.merge(defaultStemOptions())

	if len(syllables) == 0 {
		return nil, configError(ErrEmptySyllables, nil)
	}
	for i, syl := range syllables {
		if syl == nil {
			return nil, configError(ErrNilComponent, fmt.Errorf("syllable %d", i))
		}
	}
	for i, f := range o.Filters {
		if f == nil {
			return nil, configError(ErrNilComponent, fmt.Errorf("filter %d", i))
		}
	}
	if _, _, err := sumWeights(o.Balance); err != nil {
		return nil, configError(err, fmt.Errorf("balance %v", o.Balance))
	}
	if o.MaxAttempts < 0 {
		return nil, configError(ErrInvalidAttempts, fmt.Errorf("max attempts %d", o.MaxAttempts))
	}

	s := &Stem{
		syllables:   append([]*Syllable(nil), syllables...),
		balance:     append([]float64(nil), o.Balance...),
		filters:     append([]*Filter(nil), o.Filters...),
		prefix:      o.Prefix,
		suffix:      o.Suffix,
		infix:       o.Infix,
		maxAttempts: o.MaxAttempts,
		src:         o.Source,
		log:         o.Logger.With(logger.Component("stem")),
	}

	for i, w := range s.balance {
		if w == 0 {
			continue
		}
		total := i + 1
		for slot := 0; slot < total; slot++ {
			if len(s.eligible(slot, total)) == 0 {
				return nil, configError(ErrNoEligibleSyllable, fmt.Errorf("slot %d of %d", slot+1, total))
			}
		}
	}

	return s, nil
}

// MustStem is like NewStem but panics on error.
func MustStem(syllables []*Syllable, opts *StemOptions) *Stem {
	s, err := NewStem(syllables, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Generate returns a word that passed every filter, using the stem's configured source.
// It returns ErrGenerationExhausted when no candidate passes within the attempt cap.
func (s *Stem) Generate() (string, error) {
	return s.GenerateWith(s.src)
}

// GenerateWith is like Generate but draws from src. A nil src uses DefaultSource().
func (s *Stem) GenerateWith(src Source) (string, error) {
	src = sourceOrDefault(src)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate, err := s.generate(src)
		if err != nil {
			return "", err
		}
		if i := s.rejectedBy(src, candidate); i >= 0 {
			s.log.Debug("candidate rejected",
				logger.Word(candidate),
				logger.Attempt(attempt),
				slog.Int("filter", i),
			)
			continue
		}
		return candidate, nil
	}

	s.log.Warn("generation exhausted", logger.Attempt(s.maxAttempts))
	return "", fmt.Errorf("%w: %d attempts", ErrGenerationExhausted, s.maxAttempts)
}

// GenerateN returns n words. It stops at the first error and returns the words
// produced so far together with it.
func (s *Stem) GenerateN(n int) ([]string, error) {
	words := make([]string, 0, max(n, 0))
	for range n {
		w, err := s.Generate()
		if err != nil {
			return words, err
		}
		words = append(words, w)
	}
	return words, nil
}

// generate builds one unfiltered candidate.
func (s *Stem) generate(src Source) (string, error) {
	n, err := WeightedChoice(src, s.balance)
	if err != nil {
		return "", configError(err, nil)
	}
	total := n + 1

	parts := make([]string, total)
	for slot := range total {
		syl, err := s.pick(src, slot, total)
		if err != nil {
			return "", err
		}
		part, err := syl.Generate(src)
		if err != nil {
			return "", err
		}
		parts[slot] = part
	}

	return s.prefix + strings.Join(parts, s.infix) + s.suffix, nil
}

func (s *Stem) pick(src Source, slot, total int) (*Syllable, error) {
	candidates := s.eligible(slot, total)
	switch len(candidates) {
	case 0:
		return nil, configError(ErrNoEligibleSyllable, fmt.Errorf("slot %d of %d", slot+1, total))
	case 1:
		return candidates[0], nil
	}

	weights := make([]float64, len(candidates))
	for i, syl := range candidates {
		weights[i] = syl.weight
	}
	i, err := WeightedChoice(src, weights)
	if err != nil {
		return nil, configError(err, nil)
	}
	return candidates[i], nil
}

func (s *Stem) eligible(slot, total int) []*Syllable {
	var out []*Syllable
	for _, syl := range s.syllables {
		if syl.IsPermittedPosition(slot, total) {
			out = append(out, syl)
		}
	}
	return out
}

// rejectedBy returns the index of the first filter rejecting candidate, or -1.
func (s *Stem) rejectedBy(src Source, candidate string) int {
	for i, f := range s.filters {
		if f.IsRejected(src, candidate) {
			return i
		}
	}
	return -1
}
