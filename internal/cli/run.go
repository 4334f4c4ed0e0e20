package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvp-joe/codestandard/internal/config"
	"github.com/mvp-joe/codestandard/internal/git"
	"github.com/mvp-joe/codestandard/internal/runner"
)

// runOptions carries what check and fix share.
type runOptions struct {
	rootDir    string
	configFile string
	verbose    bool
	quiet      bool
	mode       runner.Mode
	targets    []string

	// since restricts the run to files changed relative to this git ref.
	since  string
	gitOps git.Operations
}

// currentOptions collects the global flags for mode.
func currentOptions(mode runner.Mode, targets []string) (runOptions, error) {
	rootDir, err := os.Getwd()
	if err != nil {
		return runOptions{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	return runOptions{
		rootDir:    rootDir,
		configFile: cfgFile,
		verbose:    verbose,
		quiet:      quietFlag,
		mode:       mode,
		targets:    targets,
		since:      sinceFlag,
		gitOps:     git.NewOperations(),
	}, nil
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// executeRun loads configuration and runs the rules and fixers. Progress goes
// to progressOut.
func executeRun(ctx context.Context, opts runOptions, progressOut io.Writer) (*runner.Result, error) {
	if opts.since != "" && len(opts.targets) > 0 {
		return nil, errors.New("--since cannot be combined with explicit paths")
	}

	loader := config.NewLoader(opts.rootDir)
	if opts.configFile != "" {
		loader = config.NewFileLoader(opts.rootDir, opts.configFile)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	runnerConfig := cfg.ToRunnerConfig(opts.rootDir)
	runnerConfig.Verbose = opts.verbose

	r, err := runner.New(runnerConfig, NewCLIProgressReporter(opts.quiet, progressOut))
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	defer r.Close()

	if opts.since != "" {
		changed, err := opts.gitOps.ChangedFiles(opts.rootDir, opts.since)
		if err != nil {
			return nil, fmt.Errorf("failed to list changed files: %w", err)
		}
		if opts.verbose {
			log.Printf("%d files changed since %s\n", len(changed), opts.since)
		}
		return r.RunFiles(ctx, opts.mode, changed)
	}

	return r.Run(ctx, opts.mode, opts.targets...)
}
