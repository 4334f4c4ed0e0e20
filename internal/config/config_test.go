package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/codestandard/internal/fixer"
)

// Test Plan for Config System:
// - Default() returns valid configuration with all expected defaults
// - Load() uses defaults when no config file exists
// - Load() loads from .codestandard/config.yml and .codestandard/config.yaml
// - Load() merges a partial config file with defaults
// - Load() reads an explicit config file and fails when it is missing
// - Suffix tables keep order and case through the loader
// - An extra-only table keeps the eleven defaults and appends new patterns
// - An explicit primary table replaces the defaults
// - Environment variables override config file values and defaults
// - Load() returns error for malformed YAML and wrong suffix table shapes
// - Load() rejects empty suffixes and uncompilable patterns without falling back
// - Validate() rejects non-positive maximum complexity
// - Validate() rejects empty include paths and uncompilable path globs
// - Validate() reports every invalid field at once

func writeConfig(t *testing.T, rootDir, name, content string) string {
	t.Helper()

	dir := filepath.Join(rootDir, DirName)
	require.NoError(t, os.MkdirAll(dir, 0755))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"**/*.php"}, cfg.Paths.Include)
	assert.Contains(t, cfg.Paths.Ignore, "vendor/**")
	assert.Equal(t, 8, cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
	assert.Equal(t, fixer.DefaultSuffixRules(), cfg.Fixers.ClassNameSuffixByParent.SuffixRules())

	assert.NoError(t, Validate(cfg))
}

func TestLoad_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_LoadsFromConfigYml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
paths:
  include:
    - "src/**/*.php"
  ignore:
    - "src/Legacy/**"
rules:
  cognitive_complexity:
    maximum_cognitive_complexity: 5
fixers:
  class_name_suffix_by_parent:
    parent_types_to_suffixes:
      - "*Command"
      - "*AbstractMapper": DataMapper
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"src/**/*.php"}, cfg.Paths.Include)
	assert.Equal(t, []string{"src/Legacy/**"}, cfg.Paths.Ignore)
	assert.Equal(t, 5, cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
	assert.Equal(t, fixer.SuffixRules{
		{Pattern: "*Command", Suffix: "Command"},
		{Pattern: "*AbstractMapper", Suffix: "DataMapper"},
	}, cfg.Fixers.ClassNameSuffixByParent.SuffixRules())
}

func TestLoad_LoadsFromConfigYaml(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yaml", `
rules:
  cognitive_complexity:
    maximum_cognitive_complexity: 12
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
}

func TestLoad_MergesConfigWithDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
paths:
  ignore:
    - "tests/Fixtures/**"
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, Default().Paths.Include, cfg.Paths.Include)
	assert.Equal(t, []string{"tests/Fixtures/**"}, cfg.Paths.Ignore)
	assert.Equal(t, 8, cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
	assert.Equal(t, fixer.DefaultSuffixRules(), cfg.Fixers.ClassNameSuffixByParent.SuffixRules())
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "standards.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  cognitive_complexity:
    maximum_cognitive_complexity: 3
fixers:
  class_name_suffix_by_parent:
    extra_parent_types_to_suffixes:
      "*Mapper": Mapper
`), 0644))

	cfg, err := NewFileLoader(tempDir, path).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
	assert.Len(t, cfg.Fixers.ClassNameSuffixByParent.SuffixRules(), 12)

	_, err = NewFileLoader(tempDir, filepath.Join(tempDir, "missing.yml")).Load()
	assert.Error(t, err)
}

func TestLoad_ExtraOnlyKeepsDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
fixers:
  class_name_suffix_by_parent:
    extra_parent_types_to_suffixes:
      - "*Mapper"
      - "*Command": Cmd
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	rules := cfg.Fixers.ClassNameSuffixByParent.SuffixRules()
	require.Len(t, rules, 12)
	assert.Equal(t, fixer.SuffixRule{Pattern: "*Command", Suffix: "Cmd"}, rules[0])
	assert.Equal(t, fixer.SuffixRule{Pattern: "*Handler", Suffix: "Handler"}, rules[10])
	assert.Equal(t, fixer.SuffixRule{Pattern: "*Mapper", Suffix: "Mapper"}, rules[11])
}

func TestLoad_EmptyPrimaryTableDisablesDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
fixers:
  class_name_suffix_by_parent:
    parent_types_to_suffixes: []
    extra_parent_types_to_suffixes:
      "*Mapper": Mapper
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, fixer.SuffixRules{{Pattern: "*Mapper", Suffix: "Mapper"}},
		cfg.Fixers.ClassNameSuffixByParent.SuffixRules())
}

func TestLoad_EnvironmentOverridesConfigFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", `
rules:
  cognitive_complexity:
    maximum_cognitive_complexity: 5
`)

	t.Setenv("CODESTANDARD_RULES_COGNITIVE_COMPLEXITY_MAXIMUM_COGNITIVE_COMPLEXITY", "15")

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()
	t.Setenv("CODESTANDARD_RULES_COGNITIVE_COMPLEXITY_MAXIMUM_COGNITIVE_COMPLEXITY", "20")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "config.yml", "rules:\n  cognitive_complexity: [unclosed\n")

	_, err := NewLoader(tempDir).Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNonIntegerComplexity(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"3.7", "3.0", "true", "false"} {
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			tempDir := t.TempDir()
			writeConfig(t, tempDir, "config.yml",
				"rules:\n  cognitive_complexity:\n    maximum_cognitive_complexity: "+value+"\n")

			_, err := NewLoader(tempDir).Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidType)
		})
	}
}

func TestLoad_RejectsInvalidSuffixTables(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		table   string
		wantErr error
	}{
		{
			name:    "scalar table",
			table:   "parent_types_to_suffixes: Command",
			wantErr: ErrInvalidSuffixMap,
		},
		{
			name:    "empty suffix",
			table:   "extra_parent_types_to_suffixes:\n      \"*Mapper\": \"\"",
			wantErr: fixer.ErrEmptySuffix,
		},
		{
			name:    "uncompilable pattern",
			table:   "extra_parent_types_to_suffixes:\n      - \"[Mapper\"",
			wantErr: fixer.ErrInvalidPattern,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tempDir := t.TempDir()
			writeConfig(t, tempDir, "config.yml",
				"fixers:\n  class_name_suffix_by_parent:\n    "+tc.table+"\n")

			cfg, err := NewLoader(tempDir).Load()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidSuffixMap)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_RejectsNonPositiveComplexity(t *testing.T) {
	t.Parallel()

	for _, maximum := range []int{0, -1} {
		cfg := Default()
		cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity = maximum
		assert.ErrorIs(t, Validate(cfg), ErrInvalidComplexity)
	}
}

func TestValidate_RejectsInvalidPaths(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Paths.Include = nil
	assert.ErrorIs(t, Validate(cfg), ErrInvalidPaths)

	cfg = Default()
	cfg.Paths.Ignore = []string{"vendor/[**"}
	assert.ErrorIs(t, Validate(cfg), ErrInvalidPaths)
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Paths.Include = nil
	cfg.Rules.CognitiveComplexity.MaximumCognitiveComplexity = -3
	cfg.Fixers.ClassNameSuffixByParent.ExtraParentTypesToSuffixes = SuffixMap{{Pattern: "*Mapper"}}

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPaths)
	assert.ErrorIs(t, err, ErrInvalidComplexity)
	assert.ErrorIs(t, err, ErrInvalidSuffixMap)
	assert.Contains(t, err.Error(), "validation failed")
}
