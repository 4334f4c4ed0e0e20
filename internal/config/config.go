// Package config provides configuration loading for codestandard.
//
// Project configuration lives in .codestandard/config.yml (or config.yaml)
// in the project root. Priority (highest to lowest):
//  1. Environment variables (CODESTANDARD_*)
//  2. Config file
//  3. Built-in defaults
//
// The suffix tables of the class name fixer are decoded straight from the
// YAML document so pattern order and letter case are preserved.
package config

import (
	"github.com/mvp-joe/codestandard/internal/fixer"
	"github.com/mvp-joe/codestandard/internal/rules"
)

// Config represents the complete codestandard configuration.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Rules  RulesConfig  `yaml:"rules" mapstructure:"rules"`
	Fixers FixersConfig `yaml:"fixers" mapstructure:"-"`
}

// PathsConfig defines which files are analyzed.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for PHP files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// RulesConfig configures the analysis rules.
type RulesConfig struct {
	CognitiveComplexity CognitiveComplexityConfig `yaml:"cognitive_complexity" mapstructure:"cognitive_complexity"`
}

// CognitiveComplexityConfig configures the function-like cognitive complexity rule.
type CognitiveComplexityConfig struct {
	MaximumCognitiveComplexity int `yaml:"maximum_cognitive_complexity" mapstructure:"maximum_cognitive_complexity"`
}

// FixersConfig configures the fixers.
type FixersConfig struct {
	ClassNameSuffixByParent ClassNameSuffixConfig `yaml:"class_name_suffix_by_parent"`
}

// ClassNameSuffixConfig configures the class name suffix fixer.
type ClassNameSuffixConfig struct {
	// ParentTypesToSuffixes replaces the built-in rules when non-nil.
	ParentTypesToSuffixes SuffixMap `yaml:"parent_types_to_suffixes"`

	// ExtraParentTypesToSuffixes is merged on top of ParentTypesToSuffixes.
	ExtraParentTypesToSuffixes SuffixMap `yaml:"extra_parent_types_to_suffixes"`
}

// SuffixRules returns the effective, ordered rule set.
func (c ClassNameSuffixConfig) SuffixRules() fixer.SuffixRules {
	base := fixer.SuffixRules(c.ParentTypesToSuffixes)
	if base == nil {
		base = fixer.DefaultSuffixRules()
	}
	return base.Merge(fixer.SuffixRules(c.ExtraParentTypesToSuffixes))
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Include: []string{
				"**/*.php",
			},
			Ignore: []string{
				"vendor/**",
				"var/**",
				"node_modules/**",
				".git/**",
			},
		},
		Rules: RulesConfig{
			CognitiveComplexity: CognitiveComplexityConfig{
				MaximumCognitiveComplexity: rules.DefaultMaximumCognitiveComplexity,
			},
		},
	}
}
