package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	quietFlag bool
	sinceFlag string
)

// errFindings signals that the run reported something. It maps to exit
// status 1 without printing an error message.
var errFindings = errors.New("findings reported")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codestandard",
	Short: "codestandard - PHP coding standard checks and fixers",
	Long: `codestandard checks PHP code against a coding standard and fixes what
can be fixed automatically.

Rules:
  function_like_cognitive_complexity   reports functions, methods, closures
                                       and arrow functions that are too complex

Fixers:
  class_name_suffix_by_parent          appends a role suffix to class names
                                       based on their parent and interfaces

Configuration is read from .codestandard/config.yml in the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .codestandard/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	rootCmd.PersistentFlags().StringVar(&sinceFlag, "since", "", "only process files changed since this git ref")
}

// initLogging routes log output to stderr and silences it with --quiet.
func initLogging() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	if quietFlag {
		log.SetOutput(io.Discard)
	}
}
