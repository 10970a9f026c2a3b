// Package langdef loads language definitions for genling from YAML.
//
// A definition names its segments, builds syllables from those names, and
// configures the stem, its filters, and the replace rules applied afterwards:
//
//	name: toki
//	segments:
//	  C: {phonemes: [p, t, k, s, m, n, l]}
//	  V:
//	    phonemes:
//	      - {grapheme: a, weight: 3}
//	      - e
//	      - i
//	syllables:
//	  - segments: [C, V]
//	  - segments: [C, V, C]
//	    position: -1      # or [2, -2] for a range, 0 or omitted for anywhere
//	    weight: 2
//	stem:
//	  balance: [1, 3, 2]
//	filters:
//	  - {kind: regex, pattern: "(.)\\1"}   # kind defaults to simple
//	replaces:
//	  - {kind: simple, pattern: "nl", replacement: "ll", probability: 0.5}
//
// A bare phoneme string has weight 1. Filter and replace probabilities default
// to 1. Regular expressions use Go syntax, so replacements reference groups as $1.
//
// Compile, Parse, Load, and LoadFile return errors joined with
// ErrInvalidDefinition when the model is inconsistent; the genling sentinel
// errors stay reachable through errors.Is.
//
//	lang, err := langdef.LoadFile("toki.yaml", langdef.WithSource(genling.NewSource(1)))
//	if err != nil {
//	    return err
//	}
//	word, err := lang.Generate()
package langdef
