// Package runner drives the rules and fixers over a PHP project: it discovers
// files, parses each one and collects diagnostics and edits, writing fixed
// files back when asked to. Files are processed one at a time.
package runner

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mvp-joe/codestandard/internal/complexity"
	"github.com/mvp-joe/codestandard/internal/fixer"
	"github.com/mvp-joe/codestandard/internal/php"
	"github.com/mvp-joe/codestandard/internal/rules"
)

// Runner applies the configured rules and fixers to PHP files.
type Runner struct {
	config    *Config
	parser    *php.Parser
	discovery *FileDiscovery
	rules     []rules.Rule
	fixers    []fixer.Fixer
	progress  ProgressReporter
	closers   []func()
}

// New creates a runner for cfg. A nil progress reporter disables progress output.
func New(cfg *Config, progress ProgressReporter) (*Runner, error) {
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	discovery, err := NewFileDiscovery(cfg.RootDir, cfg.IncludePatterns, cfg.IgnorePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to create file discovery: %w", err)
	}

	suffixFixer, err := fixer.NewClassNameSuffixByParent(cfg.SuffixRules)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s fixer: %w", fixer.ClassNameSuffixRuleName, err)
	}

	return &Runner{
		config:    cfg,
		parser:    php.NewParser(),
		discovery: discovery,
		rules: []rules.Rule{
			rules.NewFunctionLikeCognitiveComplexity(complexity.NewAnalyzer(), cfg.MaximumCognitiveComplexity),
		},
		fixers:   []fixer.Fixer{suffixFixer},
		progress: progress,
		closers:  []func(){suffixFixer.Close},
	}, nil
}

// Close releases resources held by the fixers.
func (r *Runner) Close() {
	for _, closeFn := range r.closers {
		closeFn()
	}
	r.closers = nil
}

// Run processes the files below targets (the whole root when empty).
// The context is checked between files.
func (r *Runner) Run(ctx context.Context, mode Mode, targets ...string) (*Result, error) {
	start := time.Now()
	result := &Result{}

	r.progress.OnDiscoveryStart()
	files, err := r.discovery.DiscoverFiles(targets...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}
	result.Stats.FilesDiscovered = len(files)
	r.progress.OnDiscoveryComplete(len(files))

	return r.process(ctx, mode, files, result, start)
}

// RunFiles processes exactly the given files that the include and ignore
// patterns select, without walking directories.
func (r *Runner) RunFiles(ctx context.Context, mode Mode, paths []string) (*Result, error) {
	start := time.Now()
	result := &Result{}

	files, err := r.discovery.FilterFiles(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to filter files: %w", err)
	}
	result.Stats.FilesDiscovered = len(files)

	return r.process(ctx, mode, files, result, start)
}

func (r *Runner) process(ctx context.Context, mode Mode, files []string, result *Result, start time.Time) (*Result, error) {
	r.progress.OnFileProcessingStart(len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := r.processFile(ctx, mode, path, result); err != nil {
			return nil, err
		}
		r.progress.OnFileProcessed(path)
	}

	result.Stats.Diagnostics = len(result.Diagnostics)
	result.Stats.ProcessingTimeSeconds = time.Since(start).Seconds()
	r.progress.OnComplete(&result.Stats)

	return result, nil
}

func (r *Runner) processFile(ctx context.Context, mode Mode, path string, result *Result) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	relPath := r.displayPath(path)
	file, err := r.parser.Parse(ctx, relPath, source)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", relPath, err)
	}
	defer func() { file.Close() }()

	if file.HasErrors() {
		log.Printf("Warning: skipping %s: syntax errors\n", relPath)
		result.Stats.FilesSkipped++
		return nil
	}
	result.Stats.FilesProcessed++

	for _, rule := range r.rules {
		result.Diagnostics = append(result.Diagnostics, rule.Check(file)...)
	}

	changed := false
	for _, f := range r.fixers {
		if !f.IsCandidate(file) {
			continue
		}
		edits := f.Fix(file)
		if len(edits) == 0 {
			continue
		}

		result.Changes = append(result.Changes, FileChange{FilePath: relPath, Fixer: f.Name(), Edits: edits})
		result.Stats.Edits += len(edits)

		switch mode {
		case ModeCheck:
			for _, edit := range edits {
				result.Diagnostics = append(result.Diagnostics, rules.Diagnostic{
					Rule:     f.Name(),
					Message:  fmt.Sprintf("%q should be renamed to %q", edit.OldText, edit.NewText),
					FilePath: relPath,
					Line:     edit.Line,
				})
			}
		case ModeFix:
			fixed, err := fixer.ApplyEdits(file.Source, edits)
			if err != nil {
				return fmt.Errorf("failed to apply %s to %s: %w", f.Name(), relPath, err)
			}

			// Later fixers see the rewritten source.
			reparsed, err := r.parser.Parse(ctx, relPath, fixed)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", relPath, err)
			}
			file.Close()
			file = reparsed
			changed = true
		}

		if r.config.Verbose {
			log.Printf("%s: %s produced %d edit(s)\n", relPath, f.Name(), len(edits))
		}
	}

	if changed {
		if err := os.WriteFile(path, file.Source, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", relPath, err)
		}
		result.Stats.FilesChanged++
	}

	return nil
}

// displayPath returns path relative to the root when it lies below it.
func (r *Runner) displayPath(path string) string {
	rel, err := filepath.Rel(r.config.RootDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
