package fixer

import (
	"fmt"
	"strings"

	"github.com/maypok86/otter"

	"github.com/mvp-joe/codestandard/internal/php"
)

// ClassNameSuffixRuleName identifies ClassNameSuffixByParent in reports.
const ClassNameSuffixRuleName = "class_name_suffix_by_parent"

// matchCacheCapacity bounds the memoized type name lookups.
const matchCacheCapacity = 4096

// ClassNameSuffixByParent appends a suffix to class names based on the
// classes they extend and the interfaces they implement.
//
//	class SomeClass extends Command {}  =>  class SomeClassCommand extends Command {}
type ClassNameSuffixByParent struct {
	rules []compiledRule

	// matches caches type name -> indexes of matching rules.
	matches otter.Cache[string, []int]
}

// NewClassNameSuffixByParent creates the fixer for rules, applied in order.
func NewClassNameSuffixByParent(rules SuffixRules) (*ClassNameSuffixByParent, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		c, err := compileRule(rule)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}

	cache, err := otter.MustBuilder[string, []int](matchCacheCapacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create match cache: %w", err)
	}

	return &ClassNameSuffixByParent{
		rules:   compiled,
		matches: cache,
	}, nil
}

func (f *ClassNameSuffixByParent) Name() string {
	return ClassNameSuffixRuleName
}

// IsRisky is true: renaming a class breaks every reference to it.
func (f *ClassNameSuffixByParent) IsRisky() bool {
	return true
}

func (f *ClassNameSuffixByParent) IsCandidate(file *php.File) bool {
	for _, class := range file.Classes() {
		if !class.IsAnonymous() && class.HasSupertypes() {
			return true
		}
	}
	return false
}

func (f *ClassNameSuffixByParent) Fix(file *php.File) []TextEdit {
	var edits []TextEdit
	for _, class := range file.Classes() {
		if edit, ok := f.Rewrite(class); ok {
			edits = append(edits, edit)
		}
	}
	return edits
}

// Rewrite checks the parent first, then each interface in declared order.
// Every matching rule appends its suffix unless the name already ends with it,
// so a class matching several rules receives their suffixes in rule order.
func (f *ClassNameSuffixByParent) Rewrite(decl php.ClassDeclaration) (TextEdit, bool) {
	if decl.IsAnonymous() {
		return TextEdit{}, false
	}

	types := make([]string, 0, len(decl.Interfaces)+1)
	if decl.Parent != "" {
		types = append(types, decl.Parent)
	}
	types = append(types, decl.Interfaces...)

	name := decl.Name
	for _, typeName := range types {
		for _, i := range f.matching(typeName) {
			suffix := f.rules[i].Suffix
			if !strings.HasSuffix(name, suffix) {
				name += suffix
			}
		}
	}

	if name == decl.Name {
		return TextEdit{}, false
	}

	return TextEdit{
		StartOffset: int(decl.NameStart),
		EndOffset:   int(decl.NameEnd),
		OldText:     decl.Name,
		NewText:     name,
		Line:        decl.NameLine,
		Column:      decl.NameColumn,
	}, true
}

// Close releases the match cache.
func (f *ClassNameSuffixByParent) Close() {
	f.matches.Close()
}

func (f *ClassNameSuffixByParent) matching(typeName string) []int {
	if indexes, ok := f.matches.Get(typeName); ok {
		return indexes
	}

	var indexes []int
	for i, rule := range f.rules {
		if rule.Match(typeName) {
			indexes = append(indexes, i)
		}
	}
	f.matches.Set(typeName, indexes)
	return indexes
}
