// Package git narrows a run to the files changed in a working tree.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotRepository indicates the project is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Operations defines the interface for git operations.
// This allows mocking git commands in tests.
type Operations interface {
	// ChangedFiles returns absolute paths of files added, copied, modified or
	// renamed since ref, plus untracked files that are not ignored. Paths are
	// rooted at the worktree root, which may lie above projectPath.
	ChangedFiles(projectPath, ref string) ([]string, error)
}

// gitOps is the real implementation using exec.Command.
type gitOps struct{}

// NewOperations returns the default git operations implementation.
func NewOperations() Operations {
	return &gitOps{}
}

// worktreeRoot returns the root of the work tree containing projectPath.
func (g *gitOps) worktreeRoot(projectPath string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = projectPath
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotRepository, projectPath)
	}
	return strings.TrimSpace(string(output)), nil
}

func (g *gitOps) ChangedFiles(projectPath, ref string) ([]string, error) {
	root, err := g.worktreeRoot(projectPath)
	if err != nil {
		return nil, err
	}

	changed, err := g.lines(root, "diff", "--name-only", "--diff-filter=ACMR", ref, "--")
	if err != nil {
		return nil, fmt.Errorf("failed to diff against %s: %w", ref, err)
	}
	untracked, err := g.lines(root, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %w", err)
	}

	files := make([]string, 0, len(changed)+len(untracked))
	for _, rel := range append(changed, untracked...) {
		files = append(files, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return files, nil
}

func (g *gitOps) lines(dir string, args ...string) ([]string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
