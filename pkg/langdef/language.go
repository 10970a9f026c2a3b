package langdef

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/genling/pkg/genling"
	"github.com/dmitrymomot/genling/pkg/logger"
)

// Option configures compilation of a definition.
type Option func(*options)

type options struct {
	src genling.Source
	log *slog.Logger
}

// WithSource sets the random source used by the compiled language.
func WithSource(src genling.Source) Option {
	return func(o *options) {
		if src != nil {
			o.src = src
		}
	}
}

// WithLogger sets the logger handed to the compiled stem.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Language is a compiled definition: a stem plus the replace rules applied to its output.
type Language struct {
	Name     string
	stem     *genling.Stem
	replaces []*genling.Replace
	src      genling.Source
}

// Stem returns the compiled stem.
func (l *Language) Stem() *genling.Stem { return l.stem }

// Replaces returns the compiled replace rules in application order.
func (l *Language) Replaces() []*genling.Replace { return slices.Clone(l.replaces) }

// Generate produces one word and runs it through every replace rule in order.
func (l *Language) Generate() (string, error) {
	word, err := l.stem.GenerateWith(l.src)
	if err != nil {
		return "", err
	}
	return genling.ReplaceAll(l.src, word, l.replaces...), nil
}

// GenerateN produces n words, stopping at the first error.
func (l *Language) GenerateN(n int) ([]string, error) {
	words := make([]string, 0, max(n, 0))
	for range n {
		w, err := l.Generate()
		if err != nil {
			return words, err
		}
		words = append(words, w)
	}
	return words, nil
}

// Decode parses YAML into a Definition without compiling it.
func Decode(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return &def, nil
}

// Parse decodes and compiles a YAML definition.
func Parse(data []byte, opts ...Option) (*Language, error) {
	def, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return def.Compile(opts...)
}

// Load reads a YAML definition from r and compiles it.
func Load(r io.Reader, opts ...Option) (*Language, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data, opts...)
}

// LoadFile reads a YAML definition from path and compiles it.
func LoadFile(path string, opts ...Option) (*Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data, opts...)
}

// Compile builds the genling model described by d.
func (d *Definition) Compile(opts ...Option) (*Language, error) {
	o := &options{src: genling.DefaultSource(), log: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	segments, err := d.compileSegments()
	if err != nil {
		return nil, err
	}

	syllables := make([]*genling.Syllable, 0, len(d.Syllables))
	for i, sd := range d.Syllables {
		syl, err := sd.compile(segments)
		if err != nil {
			return nil, invalid(fmt.Errorf("syllable %d: %w", i, err))
		}
		syllables = append(syllables, syl)
	}

	filters := make([]*genling.Filter, 0, len(d.Filters))
	for i, fd := range d.Filters {
		f, err := fd.compile()
		if err != nil {
			return nil, invalid(fmt.Errorf("filter %d: %w", i, err))
		}
		filters = append(filters, f)
	}

	replaces := make([]*genling.Replace, 0, len(d.Replaces))
	for i, rd := range d.Replaces {
		r, err := rd.compile()
		if err != nil {
			return nil, invalid(fmt.Errorf("replace %d: %w", i, err))
		}
		replaces = append(replaces, r)
	}

	stem, err := genling.NewStem(syllables, &genling.StemOptions{
		Balance:     d.Stem.Balance,
		Filters:     filters,
		Prefix:      d.Stem.Prefix,
		Suffix:      d.Stem.Suffix,
		Infix:       d.Stem.Infix,
		MaxAttempts: d.Stem.MaxAttempts,
		Source:      o.src,
		Logger:      o.log,
	})
	if err != nil {
		return nil, invalid(fmt.Errorf("stem: %w", err))
	}

	o.log.Debug("language compiled",
		logger.Component("langdef"),
		slog.String("language", d.Name),
		slog.Int("segments", len(segments)),
		slog.Int("syllables", len(syllables)),
		slog.Int("filters", len(filters)),
		slog.Int("replaces", len(replaces)),
	)

	return &Language{
		Name:     d.Name,
		stem:     stem,
		replaces: replaces,
		src:      o.src,
	}, nil
}

func (d *Definition) compileSegments() (map[string]*genling.Segment, error) {
	names := make([]string, 0, len(d.Segments))
	for name := range d.Segments {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make(map[string]*genling.Segment, len(names))
	for _, name := range names {
		sd := d.Segments[name]
		phonemes := make([]genling.Phoneme, len(sd.Phonemes))
		for i, p := range sd.Phonemes {
			phonemes[i] = genling.Phoneme{Grapheme: p.Grapheme, Weight: p.Weight}
		}
		seg, err := genling.NewSegment(phonemes, &genling.SegmentOptions{Prefix: sd.Prefix, Suffix: sd.Suffix})
		if err != nil {
			return nil, invalid(fmt.Errorf("segment %q: %w", name, err))
		}
		out[name] = seg
	}
	return out, nil
}

func (sd SyllableDefinition) compile(segments map[string]*genling.Segment) (*genling.Syllable, error) {
	segs := make([]*genling.Segment, 0, len(sd.Segments))
	for _, name := range sd.Segments {
		seg, ok := segments[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSegment, name)
		}
		segs = append(segs, seg)
	}
	return genling.NewSyllable(segs, &genling.SyllableOptions{
		Position: sd.Position.position(),
		Weight:   sd.Weight,
		Prefix:   sd.Prefix,
		Suffix:   sd.Suffix,
		Infix:    sd.Infix,
	})
}

func (p PositionDefinition) position() genling.Position {
	if p.Min == p.Max {
		return genling.At(p.Min)
	}
	return genling.Between(p.Min, p.Max)
}

func (fd FilterDefinition) compile() (*genling.Filter, error) {
	p := probabilityOrDefault(fd.Probability)
	switch fd.Kind {
	case KindSimple, "":
		return genling.NewSimpleFilter(fd.Pattern, p, fd.Permit)
	case KindRegex:
		return genling.NewRegexFilter(fd.Pattern, p, fd.Permit)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, fd.Kind)
	}
}

func (rd ReplaceDefinition) compile() (*genling.Replace, error) {
	p := probabilityOrDefault(rd.Probability)
	switch rd.Kind {
	case KindSimple, "":
		return genling.NewSimpleReplace(rd.Pattern, rd.Replacement, p)
	case KindRegex:
		return genling.NewRegexReplace(rd.Pattern, rd.Replacement, p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, rd.Kind)
	}
}

func invalid(err error) error {
	if errors.Is(err, ErrInvalidDefinition) {
		return err
	}
	return errors.Join(ErrInvalidDefinition, err)
}
