package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/codestandard/internal/rules"
	"github.com/mvp-joe/codestandard/internal/runner"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report rule violations and pending fixes",
	Long: `Check runs every rule and fixer over the PHP files of the project and
prints one line per finding. Files are never modified.

The exit status is 1 when anything is reported.

Examples:
  # Check the whole project
  codestandard check

  # Check a directory and a single file
  codestandard check src/Command bin/console
`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	opts, err := currentOptions(runner.ModeCheck, args)
	if err != nil {
		return err
	}

	result, err := executeRun(ctx, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	printDiagnostics(cmd.OutOrStdout(), result.Diagnostics)
	if len(result.Diagnostics) > 0 {
		return errFindings
	}
	return nil
}

// printDiagnostics writes one "path:line: message" line per diagnostic.
func printDiagnostics(out io.Writer, diagnostics []rules.Diagnostic) {
	for _, d := range diagnostics {
		fmt.Fprintf(out, "%s:%d: %s\n", d.FilePath, d.Line, d.Message)
	}
}
