// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Output    OutputConfig    `toml:"output"`
	Format    FormatConfig    `toml:"format"`
	Subtitles SubtitlesConfig `toml:"subtitles"`
	Cookies   CookiesConfig   `toml:"cookies"`
	Log       LogConfig       `toml:"log"`
}

type OutputConfig struct {
	Dir      string `toml:"dir"`
	Filename string `toml:"filename"` // "id" or "title"
}

type FormatConfig struct {
	Video string `toml:"video"`
	Merge string `toml:"merge"`
}

type SubtitlesConfig struct {
	Langs  []string `toml:"langs"`
	Format string   `toml:"format"`
}

type CookiesConfig struct {
	File        string `toml:"file"`
	Browser     string `toml:"browser"`
	FromBrowser *bool  `toml:"from_browser"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration. The tool must be usable with
// no config file at all.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Filename == "" {
		c.Output.Filename = "id"
	}
	if c.Format.Video == "" {
		c.Format.Video = "bv*+ba/b"
	}
	if c.Format.Merge == "" {
		c.Format.Merge = "mp4"
	}
	if len(c.Subtitles.Langs) == 0 {
		c.Subtitles.Langs = []string{"en"}
	}
	if c.Subtitles.Format == "" {
		c.Subtitles.Format = "vtt"
	}
	if c.Cookies.Browser == "" {
		c.Cookies.Browser = "chrome"
	}
	if c.Cookies.FromBrowser == nil {
		t := true
		c.Cookies.FromBrowser = &t
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// BrowserFallback reports whether the browser cookie store may be used when
// no cookies.txt is found.
func (c *Config) BrowserFallback() bool {
	return c.Cookies.FromBrowser == nil || *c.Cookies.FromBrowser
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
