package runner

import (
	"github.com/mvp-joe/codestandard/internal/fixer"
	"github.com/mvp-joe/codestandard/internal/rules"
)

// Mode selects what the runner does with fixer edits.
type Mode int

const (
	// ModeCheck reports pending fixer edits as diagnostics.
	ModeCheck Mode = iota
	// ModeFix applies fixer edits and writes the files back.
	ModeFix
	// ModeDryRun computes fixer edits without writing anything.
	ModeDryRun
)

func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeFix:
		return "fix"
	case ModeDryRun:
		return "dry-run"
	default:
		return "unknown"
	}
}

// Config holds everything the runner needs to process a project.
type Config struct {
	RootDir         string
	IncludePatterns []string
	IgnorePatterns  []string

	MaximumCognitiveComplexity int
	SuffixRules                fixer.SuffixRules

	// Verbose enables per-file log output.
	Verbose bool
}

// FileChange is the set of edits one fixer produced for one file.
type FileChange struct {
	FilePath string
	Fixer    string
	Edits    []fixer.TextEdit
}

// Result is the outcome of a run.
type Result struct {
	Diagnostics []rules.Diagnostic
	Changes     []FileChange
	Stats       Stats
}

// HasFindings reports whether the run produced diagnostics or edits.
func (r *Result) HasFindings() bool {
	return len(r.Diagnostics) > 0 || len(r.Changes) > 0
}

// Stats tracks statistics about a run.
type Stats struct {
	FilesDiscovered       int     `json:"files_discovered"`
	FilesProcessed        int     `json:"files_processed"`
	FilesSkipped          int     `json:"files_skipped"`
	FilesChanged          int     `json:"files_changed"`
	Diagnostics           int     `json:"diagnostics"`
	Edits                 int     `json:"edits"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}
