package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/codestandard/internal/complexity"
	"github.com/mvp-joe/codestandard/internal/php"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain <file>...",
	Short: "Show the syntactic units codestandard sees in PHP files",
	Long: `Explain parses each file and lists its function-like units with their
cognitive complexity, and its class declarations with their parent class and
interfaces. It is meant for understanding why a rule or fixer fired.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	parser := php.NewParser()
	analyzer := complexity.NewAnalyzer()

	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		file, err := parser.Parse(ctx, path, source)
		if err != nil {
			return err
		}
		printExplanation(cmd.OutOrStdout(), file, analyzer)
		file.Close()
	}
	return nil
}

func printExplanation(out io.Writer, file *php.File, analyzer complexity.ComplexityAnalyzer) {
	fmt.Fprintln(out, file.Path)
	if file.HasErrors() {
		fmt.Fprintln(out, "  warning: syntax errors, rules and fixers skip this file")
	}

	for _, unit := range file.FunctionLikes() {
		label := unit.Kind.String()
		if unit.Name != "" {
			label += " " + unit.Name
		}
		fmt.Fprintf(out, "  %4d  %-40s complexity %d\n", unit.StartLine, label, analyzer.Analyze(unit))
	}

	for _, class := range file.Classes() {
		label := "class " + class.Name
		if class.IsAnonymous() {
			label = "class@anonymous"
		}
		if class.Parent != "" {
			label += " extends " + class.Parent
		}
		if len(class.Interfaces) > 0 {
			label += " implements " + strings.Join(class.Interfaces, ", ")
		}
		fmt.Fprintf(out, "  %4d  %s\n", class.StartLine, label)
	}
}
