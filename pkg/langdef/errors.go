package langdef

import "errors"

var (
	// Reading and decoding
	ErrFailedToReadFile  = errors.New("failed to read language definition")
	ErrFailedToParseYAML = errors.New("failed to parse language definition YAML")

	// Definition content
	ErrInvalidDefinition = errors.New("invalid language definition")
	ErrUnknownSegment    = errors.New("syllable references an undefined segment")
	ErrUnknownRuleKind   = errors.New("unknown rule kind")
	ErrInvalidPosition   = errors.New("position must be an integer or a [min, max] pair")
	ErrInvalidPhoneme    = errors.New("phoneme must be a string or a {grapheme, weight} mapping")
)
