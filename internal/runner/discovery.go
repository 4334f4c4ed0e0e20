package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// alwaysIgnored directories are never descended into.
var alwaysIgnored = []string{".git", ".codestandard"}

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery finds PHP files below a root directory using include and
// ignore glob patterns matched against slash-separated relative paths.
type FileDiscovery struct {
	rootDir        string
	includes       []compiledPattern
	ignorePatterns []compiledPattern
}

// NewFileDiscovery creates a new file discovery instance.
func NewFileDiscovery(rootDir string, includePatterns, ignorePatterns []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{
		rootDir: rootDir,
	}

	var err error
	if fd.includes, err = compilePatterns(includePatterns); err != nil {
		return nil, err
	}
	if fd.ignorePatterns, err = compilePatterns(ignorePatterns); err != nil {
		return nil, err
	}

	return fd, nil
}

// compilePatterns compiles each pattern together with its zero-directory
// variants, so "**/*.php" also matches "index.php" and "src/**/*.php" also
// matches "src/Kernel.php".
func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		for _, variant := range patternVariants(pattern) {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			compiled = append(compiled, compiledPattern{pattern: pattern, glob: g})
		}
	}
	return compiled, nil
}

func patternVariants(pattern string) []string {
	variants := []string{pattern}
	if trimmed, ok := strings.CutPrefix(pattern, "**/"); ok {
		variants = append(variants, trimmed)
	}
	if strings.Contains(pattern, "/**/") {
		variants = append(variants, strings.ReplaceAll(pattern, "/**/", "/"))
	}
	return variants
}

// DiscoverFiles returns the matching files below each target, sorted and
// without duplicates. Targets are files or directories; with no targets the
// whole root is walked. A file named explicitly is always included.
func (fd *FileDiscovery) DiscoverFiles(targets ...string) ([]string, error) {
	if len(targets) == 0 {
		targets = []string{fd.rootDir}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, target := range targets {
		if !filepath.IsAbs(target) {
			target = filepath.Join(fd.rootDir, target)
		}

		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(target)
			continue
		}

		if err := fd.walk(target, add); err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// FilterFiles keeps the paths that the include and ignore patterns select,
// preserving order.
func (fd *FileDiscovery) FilterFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		if !filepath.IsAbs(path) {
			path = filepath.Join(fd.rootDir, path)
		}
		relPath, err := fd.relative(path)
		if err != nil {
			return nil, err
		}
		if !fd.shouldIgnore(relPath) && fd.matchesAnyPattern(relPath, fd.includes) {
			files = append(files, path)
		}
	}
	return files, nil
}

func (fd *FileDiscovery) walk(dir string, add func(string)) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := fd.relative(path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != dir && fd.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.shouldIgnore(relPath) {
			return nil
		}

		if fd.matchesAnyPattern(relPath, fd.includes) {
			add(path)
		}
		return nil
	})
}

// relative returns path relative to the root, slash-separated.
func (fd *FileDiscovery) relative(path string) (string, error) {
	relPath, err := filepath.Rel(fd.rootDir, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

// shouldIgnore checks if a path matches any ignore pattern.
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	for _, dir := range alwaysIgnored {
		if relPath == dir || strings.HasPrefix(relPath, dir+"/") {
			return true
		}
	}

	if fd.matchesAnyPattern(relPath, fd.ignorePatterns) {
		return true
	}

	// A directory matches its "dir/**" pattern too, e.g. "vendor" and "vendor/**".
	return fd.matchesAnyPattern(relPath+"/**", fd.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func (fd *FileDiscovery) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}
	return false
}
