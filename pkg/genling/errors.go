package genling

import "errors"

// Configuration errors. Every one of them is returned joined with ErrInvalidConfig,
// so callers may branch on the umbrella or on the specific cause.
var (
	// ErrInvalidConfig indicates that a phoneme, segment, syllable, or stem definition
	// cannot produce well-formed output.
	ErrInvalidConfig = errors.New("genling: invalid configuration")

	// ErrNoWeights indicates an empty weight list or one that sums to zero.
	ErrNoWeights = errors.New("genling: no selectable weight")

	// ErrNegativeWeight indicates a negative, NaN, or infinite weight.
	ErrNegativeWeight = errors.New("genling: weight must be a finite non-negative number")

	// ErrInvalidWeight indicates a syllable weight that is not strictly positive.
	ErrInvalidWeight = errors.New("genling: syllable weight must be positive")

	// ErrEmptyPhonemes indicates a segment without phonemes.
	ErrEmptyPhonemes = errors.New("genling: segment has no phonemes")

	// ErrEmptySegments indicates a syllable without segments.
	ErrEmptySegments = errors.New("genling: syllable has no segments")

	// ErrEmptySyllables indicates a stem without syllables.
	ErrEmptySyllables = errors.New("genling: stem has no syllables")

	// ErrNilComponent indicates a nil segment, syllable, filter, or replace in a list.
	ErrNilComponent = errors.New("genling: nil component")

	// ErrInvalidPosition indicates a range position with a zero bound.
	ErrInvalidPosition = errors.New("genling: invalid syllable position")

	// ErrNoEligibleSyllable indicates a slot of a reachable word length that no syllable may fill.
	ErrNoEligibleSyllable = errors.New("genling: no eligible syllable for slot")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("genling: probability out of range")

	// ErrInvalidAttempts indicates a negative attempt cap.
	ErrInvalidAttempts = errors.New("genling: max attempts must not be negative")
)

// ErrInvalidPattern is returned when a regular expression fails to compile.
var ErrInvalidPattern = errors.New("genling: invalid pattern")

// ErrGenerationExhausted is returned by Stem when no candidate passes the filters
// within the attempt cap. It is recoverable: relax the filters or retry.
var ErrGenerationExhausted = errors.New("genling: too many filter rejected stems")

func configError(cause error, detail error) error {
	if detail == nil {
		return errors.Join(ErrInvalidConfig, cause)
	}
	return errors.Join(ErrInvalidConfig, cause, detail)
}
