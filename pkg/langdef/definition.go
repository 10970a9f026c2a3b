package langdef

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule kinds for filters and replaces.
const (
	KindSimple = "simple"
	KindRegex  = "regex"
)

// Definition is the YAML document describing a language.
type Definition struct {
	Name      string                       `yaml:"name"`
	Segments  map[string]SegmentDefinition `yaml:"segments"`
	Syllables []SyllableDefinition         `yaml:"syllables"`
	Stem      StemDefinition               `yaml:"stem"`
	Filters   []FilterDefinition           `yaml:"filters"`
	Replaces  []ReplaceDefinition          `yaml:"replaces"`
}

// SegmentDefinition lists the phonemes of a named segment.
type SegmentDefinition struct {
	Phonemes []PhonemeDefinition `yaml:"phonemes"`
	Prefix   string              `yaml:"prefix"`
	Suffix   string              `yaml:"suffix"`
}

// PhonemeDefinition accepts either a bare grapheme ("a", weight 1)
// or a mapping {grapheme: a, weight: 3}.
type PhonemeDefinition struct {
	Grapheme string  `yaml:"grapheme"`
	Weight   float64 `yaml:"weight"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PhonemeDefinition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		p.Grapheme = node.Value
		p.Weight = 1
		return nil
	case yaml.MappingNode:
		var raw struct {
			Grapheme string   `yaml:"grapheme"`
			Weight   *float64 `yaml:"weight"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		p.Grapheme = raw.Grapheme
		p.Weight = 1
		if raw.Weight != nil {
			p.Weight = *raw.Weight
		}
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidPhoneme, node.Line)
	}
}

// SyllableDefinition describes a syllable by the names of its segments.
type SyllableDefinition struct {
	Segments []string           `yaml:"segments"`
	Position PositionDefinition `yaml:"position"`
	Weight   float64            `yaml:"weight"`
	Prefix   string             `yaml:"prefix"`
	Suffix   string             `yaml:"suffix"`
	Infix    string             `yaml:"infix"`
}

// PositionDefinition accepts an integer slot (0 for anywhere) or a [min, max] pair.
type PositionDefinition struct {
	Min int
	Max int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PositionDefinition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var slot int
		if err := node.Decode(&slot); err != nil {
			return fmt.Errorf("%w: line %d", ErrInvalidPosition, node.Line)
		}
		p.Min, p.Max = slot, slot
		return nil
	case yaml.SequenceNode:
		var bounds []int
		if err := node.Decode(&bounds); err != nil || len(bounds) != 2 {
			return fmt.Errorf("%w: line %d", ErrInvalidPosition, node.Line)
		}
		p.Min, p.Max = bounds[0], bounds[1]
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidPosition, node.Line)
	}
}

// StemDefinition configures word assembly.
type StemDefinition struct {
	Balance     []float64 `yaml:"balance"`
	Prefix      string    `yaml:"prefix"`
	Suffix      string    `yaml:"suffix"`
	Infix       string    `yaml:"infix"`
	MaxAttempts int       `yaml:"max_attempts"`
}

// FilterDefinition describes a filter. Probability defaults to 1 when omitted.
type FilterDefinition struct {
	Kind        string   `yaml:"kind"`
	Pattern     string   `yaml:"pattern"`
	Probability *float64 `yaml:"probability"`
	Permit      bool     `yaml:"permit"`
}

// ReplaceDefinition describes a replace rule. Probability defaults to 1 when omitted.
type ReplaceDefinition struct {
	Kind        string   `yaml:"kind"`
	Pattern     string   `yaml:"pattern"`
	Replacement string   `yaml:"replacement"`
	Probability *float64 `yaml:"probability"`
}

func probabilityOrDefault(p *float64) float64 {
	if p == nil {
		return 1
	}
	return *p
}
