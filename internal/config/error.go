package config

import (
	"fmt"
	"strings"
)

// ConfigError aggregates configuration errors.
type ConfigError struct {
	Path   string   // Config file path
	Errors []string // Validation errors
}

func (e *ConfigError) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}

	parts := []string{"validation failed:"}
	for _, err := range e.Errors {
		parts = append(parts, fmt.Sprintf("  - %s", err))
	}

	return strings.Join(parts, "\n")
}

// HasErrors returns true if there are any errors.
func (e *ConfigError) HasErrors() bool {
	return len(e.Errors) > 0
}
