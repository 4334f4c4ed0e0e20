// Package fixer contains fixers: plugins that detect style issues in PHP code
// and propose text edits resolving them.
package fixer

import (
	"github.com/mvp-joe/codestandard/internal/php"
)

// Fixer proposes edits for a parsed file. Fixers never write files; callers
// apply the returned edits with ApplyEdits.
type Fixer interface {
	// Name returns the identifier used in reports.
	Name() string

	// IsRisky reports whether applying the edits may change program behavior.
	IsRisky() bool

	// IsCandidate reports whether Fix could produce anything for file.
	IsCandidate(file *php.File) bool

	// Fix returns the edits for file in source order.
	Fix(file *php.File) []TextEdit
}

// NameRewriter renames a single class declaration.
type NameRewriter interface {
	// Rewrite returns the edit renaming decl, or false when decl is left unchanged.
	Rewrite(decl php.ClassDeclaration) (TextEdit, bool)
}
