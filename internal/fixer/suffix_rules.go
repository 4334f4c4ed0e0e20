package fixer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidPattern indicates an empty or non-compilable wildcard pattern.
	ErrInvalidPattern = errors.New("invalid parent type pattern")

	// ErrEmptySuffix indicates a rule that would append nothing.
	ErrEmptySuffix = errors.New("empty class name suffix")
)

const interfaceSuffix = "Interface"

// defaultParentTypes are auto entries: each suffix is derived from its pattern.
var defaultParentTypes = []string{
	"*Command",
	"*Controller",
	"*Repository",
	"*Presenter",
	"*Request",
	"*Response",
	"*EventSubscriber",
	"*FixerInterface",
	"*Sniff",
	"*Exception",
	"*Handler",
}

// SuffixRule requires classes extending or implementing a type matching
// Pattern to end with Suffix.
type SuffixRule struct {
	Pattern string
	Suffix  string
}

// SuffixRules is an ordered set of rules keyed by pattern.
type SuffixRules []SuffixRule

// NewAutoRule derives the suffix from pattern by stripping leading wildcards
// and a trailing "Interface".
func NewAutoRule(pattern string) SuffixRule {
	suffix := strings.TrimLeft(pattern, "*")
	suffix = strings.TrimSuffix(suffix, interfaceSuffix)
	return SuffixRule{Pattern: pattern, Suffix: suffix}
}

// DefaultSuffixRules returns a fresh copy of the built-in rules.
func DefaultSuffixRules() SuffixRules {
	rules := make(SuffixRules, 0, len(defaultParentTypes))
	for _, pattern := range defaultParentTypes {
		rules = append(rules, NewAutoRule(pattern))
	}
	return rules
}

// Merge returns r with extra applied on top: a rule whose pattern already
// exists replaces it in place, any other rule is appended. r is not modified.
func (r SuffixRules) Merge(extra SuffixRules) SuffixRules {
	merged := make(SuffixRules, len(r), len(r)+len(extra))
	copy(merged, r)

	for _, rule := range extra {
		if i := merged.index(rule.Pattern); i >= 0 {
			merged[i] = rule
			continue
		}
		merged = append(merged, rule)
	}
	return merged
}

// Validate rejects empty patterns, empty suffixes and patterns the glob
// engine cannot compile.
func (r SuffixRules) Validate() error {
	var errs []error
	for _, rule := range r {
		if _, err := compileRule(rule); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r SuffixRules) index(pattern string) int {
	for i, rule := range r {
		if rule.Pattern == pattern {
			return i
		}
	}
	return -1
}

// compiledRule matches a type name against the pattern and the pattern with
// "Interface" appended.
type compiledRule struct {
	SuffixRule
	plain         glob.Glob
	withInterface glob.Glob
}

func compileRule(rule SuffixRule) (compiledRule, error) {
	if strings.TrimSpace(rule.Pattern) == "" {
		return compiledRule{}, fmt.Errorf("%w: pattern is required", ErrInvalidPattern)
	}
	if rule.Suffix == "" {
		return compiledRule{}, fmt.Errorf("%w: pattern %q", ErrEmptySuffix, rule.Pattern)
	}

	plain, err := glob.Compile(rule.Pattern)
	if err != nil {
		return compiledRule{}, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, rule.Pattern, err)
	}
	withInterface, err := glob.Compile(rule.Pattern + interfaceSuffix)
	if err != nil {
		return compiledRule{}, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, rule.Pattern, err)
	}

	return compiledRule{
		SuffixRule:    rule,
		plain:         plain,
		withInterface: withInterface,
	}, nil
}

func (c compiledRule) Match(typeName string) bool {
	return c.plain.Match(typeName) || c.withInterface.Match(typeName)
}
