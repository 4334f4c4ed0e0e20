package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DirName is the per-project configuration directory.
const DirName = ".codestandard"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewFileLoader creates a loader that reads configFile instead of searching
// rootDir. A missing file is an error.
func NewFileLoader(rootDir, configFile string) Loader {
	return &loader{
		rootDir:    rootDir,
		configFile: configFile,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CODESTANDARD_*)
// 2. Config file (.codestandard/config.yml or .codestandard/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, DirName))
	}

	// Replace . with _ in env var names (e.g., CODESTANDARD_PATHS_INCLUDE)
	v.SetEnvPrefix("CODESTANDARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("paths.include")
	v.BindEnv("paths.ignore")
	v.BindEnv("rules.cognitive_complexity.maximum_cognitive_complexity")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Viper folds keys to lower case and loses map order, both of which
	// matter for the suffix tables, so the fixers section is decoded from
	// the raw document.
	if path := v.ConfigFileUsed(); path != "" {
		fixers, err := readFixers(path)
		if err != nil {
			return nil, err
		}
		cfg.Fixers = fixers
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("rules.cognitive_complexity.maximum_cognitive_complexity",
		defaults.Rules.CognitiveComplexity.MaximumCognitiveComplexity)
}

func readFixers(path string) (FixersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FixersConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc struct {
		Fixers FixersConfig `yaml:"fixers"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return FixersConfig{}, fmt.Errorf("failed to parse fixers in %s: %w", path, err)
	}
	return doc.Fixers, nil
}

// decodeHook keeps viper's default hooks and refuses floats and booleans for
// integer settings, which weak typing would otherwise truncate or convert.
// Strings still parse, so environment variables keep working.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		strictIntHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func strictIntHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Bool:
		return nil, fmt.Errorf("%w: expected an integer, got %v", ErrInvalidType, data)
	}
	return data, nil
}
