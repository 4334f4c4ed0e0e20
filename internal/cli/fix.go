package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/codestandard/internal/runner"
)

var dryRunFlag bool

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Apply fixers to PHP files",
	Long: `Fix applies every fixer to the PHP files of the project and writes the
results back. Renaming a class does not update references to it.

With --dry-run nothing is written; the pending edits are printed instead and
the exit status is 1 when there are any.

Examples:
  # Fix the whole project
  codestandard fix

  # Show what would change in src/
  codestandard fix --dry-run src
`,
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print edits without writing files")
}

func runFix(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	mode := runner.ModeFix
	if dryRunFlag {
		mode = runner.ModeDryRun
	}

	opts, err := currentOptions(mode, args)
	if err != nil {
		return err
	}

	result, err := executeRun(ctx, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printChanges(out, result.Changes)

	if dryRunFlag {
		if len(result.Changes) > 0 {
			return errFindings
		}
		return nil
	}

	if !opts.quiet {
		fmt.Fprintf(out, "✓ Fixed %s files\n", formatNumber(result.Stats.FilesChanged))
	}
	return nil
}

// printChanges writes one "path:line: old -> new (fixer)" line per edit.
func printChanges(out io.Writer, changes []runner.FileChange) {
	for _, change := range changes {
		for _, edit := range change.Edits {
			fmt.Fprintf(out, "%s:%d: %s -> %s (%s)\n", change.FilePath, edit.Line, edit.OldText, edit.NewText, change.Fixer)
		}
	}
}
