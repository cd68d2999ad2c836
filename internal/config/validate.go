package config

import (
	"fmt"
	"os"
	"strings"
)

var validFilenameModes = []string{"id", "title"}
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for values that would fail later in
// less obvious ways. Errors are aggregated so the user sees them all at once.
func (c *Config) Validate() error {
	cfgErr := &ConfigError{}

	if !contains(validFilenameModes, c.Output.Filename) {
		cfgErr.Errors = append(cfgErr.Errors,
			fmt.Sprintf("output.filename %q invalid, must be one of: %s",
				c.Output.Filename, strings.Join(validFilenameModes, ", ")))
	}

	if !contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		cfgErr.Errors = append(cfgErr.Errors,
			fmt.Sprintf("log.level %q invalid, must be one of: %s",
				c.Log.Level, strings.Join(validLogLevels, ", ")))
	}

	for _, lang := range c.Subtitles.Langs {
		if strings.TrimSpace(lang) == "" {
			cfgErr.Errors = append(cfgErr.Errors, "subtitles.langs contains an empty language code")
		}
	}

	if c.Cookies.File != "" {
		if info, err := os.Stat(c.Cookies.File); err != nil || info.IsDir() {
			cfgErr.Errors = append(cfgErr.Errors,
				fmt.Sprintf("cookies.file %q is not a readable file", c.Cookies.File))
		}
	}

	if cfgErr.HasErrors() {
		return cfgErr
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
