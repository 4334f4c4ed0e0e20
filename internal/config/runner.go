package config

import (
	"github.com/mvp-joe/codestandard/internal/runner"
)

// ToRunnerConfig converts a Config to a runner.Config.
// The rootDir parameter specifies the root directory of the project to process.
func (c *Config) ToRunnerConfig(rootDir string) *runner.Config {
	return &runner.Config{
		RootDir:                    rootDir,
		IncludePatterns:            c.Paths.Include,
		IgnorePatterns:             c.Paths.Ignore,
		MaximumCognitiveComplexity: c.Rules.CognitiveComplexity.MaximumCognitiveComplexity,
		SuffixRules:                c.Fixers.ClassNameSuffixByParent.SuffixRules(),
	}
}
