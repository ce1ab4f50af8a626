package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError describes one rejected setting, keyed the way it appears
// in config.yaml, such as "output.format" or "cache.size".
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors lets Load report every bad setting at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	lines := make([]string, 0, len(e)+1)
	lines = append(lines, fmt.Sprintf("%d validation errors:", len(e)))
	for i, err := range e {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, err))
	}
	return strings.Join(lines, "\n") + "\n"
}

// ValidFormats returns the list of valid output formats
func ValidFormats() []string {
	return []string{FormatText, FormatTable, FormatYAML}
}

// IsValidFormat checks if the given output format is valid
func IsValidFormat(format string) bool {
	return slices.Contains(ValidFormats(), format)
}

// Validate checks the configuration and returns every problem found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !IsValidFormat(c.Output.Format) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidFormats(), ", ")),
		})
	}

	if c.Cache.Size < 0 {
		errs = append(errs, ValidationError{
			Field:   "cache.size",
			Value:   c.Cache.Size,
			Message: "must not be negative",
		})
	}

	return errs
}
