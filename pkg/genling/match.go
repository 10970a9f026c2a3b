package genling

import (
	"errors"
	"regexp"
	"strings"
)

// Matcher tests a word against a pattern.
type Matcher interface {
	Match(s string) bool
}

// Rewriter rewrites every occurrence of a pattern in a word in a single pass.
type Rewriter interface {
	Rewrite(s string) string
}

type literalMatcher string

func (m literalMatcher) Match(s string) bool { return strings.Contains(s, string(m)) }

type regexMatcher struct{ re *regexp.Regexp }

func (m regexMatcher) Match(s string) bool { return m.re.MatchString(s) }

// LiteralMatcher matches words containing pattern as a substring.
func LiteralMatcher(pattern string) Matcher {
	return literalMatcher(pattern)
}

// RegexMatcher matches words in which pattern finds a match anywhere.
// It returns ErrInvalidPattern if pattern does not compile.
func RegexMatcher(pattern string) (Matcher, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return regexMatcher{re: re}, nil
}

type literalRewriter struct{ from, to string }

func (r literalRewriter) Rewrite(s string) string { return strings.ReplaceAll(s, r.from, r.to) }

type regexRewriter struct {
	re   *regexp.Regexp
	repl string
}

func (r regexRewriter) Rewrite(s string) string { return r.re.ReplaceAllString(s, r.repl) }

// LiteralRewriter replaces every non-overlapping occurrence of pattern with replacement.
func LiteralRewriter(pattern, replacement string) Rewriter {
	return literalRewriter{from: pattern, to: replacement}
}

// RegexRewriter replaces every match of pattern with replacement, expanding $1 and ${name}.
// It returns ErrInvalidPattern if pattern does not compile.
func RegexRewriter(pattern, replacement string) (Rewriter, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return regexRewriter{re: re, repl: replacement}, nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return re, nil
}
