// Package rules contains analysis rules: plugins that report issues in PHP
// code without modifying it.
package rules

import (
	"github.com/mvp-joe/codestandard/internal/php"
)

// Diagnostic is a single issue reported by a rule.
type Diagnostic struct {
	Rule     string
	Message  string
	FilePath string
	Line     int
}

// Rule inspects a parsed file and reports diagnostics.
type Rule interface {
	// Name returns the identifier used in reports.
	Name() string

	// Check runs the rule over every applicable unit of file.
	Check(file *php.File) []Diagnostic
}
