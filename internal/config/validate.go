package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidSuffixMap indicates a malformed class name suffix table
	ErrInvalidSuffixMap = errors.New("invalid parent types to suffixes map")

	// ErrInvalidComplexity indicates a non-positive complexity maximum
	ErrInvalidComplexity = errors.New("invalid maximum cognitive complexity")

	// ErrInvalidPaths indicates missing or malformed path patterns
	ErrInvalidPaths = errors.New("invalid paths")

	// ErrInvalidType indicates a setting of the wrong YAML type
	ErrInvalidType = errors.New("invalid value type")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	if err := validateRules(&cfg.Rules); err != nil {
		errs = append(errs, err)
	}

	if err := validateFixers(&cfg.Fixers); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(cfg *PathsConfig) error {
	var errs []error

	if len(cfg.Include) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one include pattern required", ErrInvalidPaths))
	}

	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Ignore...) {
		if strings.TrimSpace(pattern) == "" {
			errs = append(errs, fmt.Errorf("%w: empty pattern", ErrInvalidPaths))
			continue
		}
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPaths, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateRules(cfg *RulesConfig) error {
	maximum := cfg.CognitiveComplexity.MaximumCognitiveComplexity
	if maximum <= 0 {
		return fmt.Errorf("%w: maximum_cognitive_complexity must be positive, got %d", ErrInvalidComplexity, maximum)
	}
	return nil
}

func validateFixers(cfg *FixersConfig) error {
	if err := cfg.ClassNameSuffixByParent.SuffixRules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSuffixMap, err)
	}
	return nil
}

// joinErrors combines multiple errors into one that still matches each of
// them with errors.Is.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return &validationError{
		msg:  fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - ")),
		errs: errs,
	}
}

type validationError struct {
	msg  string
	errs []error
}

func (e *validationError) Error() string   { return e.msg }
func (e *validationError) Unwrap() []error { return e.errs }
