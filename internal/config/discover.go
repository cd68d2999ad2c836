package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./tubegrab.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tubegrab", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. TUBEGRAB_CONFIG environment variable
//  2. ./tubegrab.toml (current directory)
//  3. $XDG_CONFIG_HOME/tubegrab/config.toml
//
// An empty path with a nil error means no config file exists anywhere,
// which is fine: built-in defaults apply.
func Discover() (string, error) {
	if envPath := os.Getenv("TUBEGRAB_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("TUBEGRAB_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./tubegrab.toml",
		DefaultPath(),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}
