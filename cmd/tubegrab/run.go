package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/tubegrab/internal/config"
	"github.com/vmunix/tubegrab/internal/retrieve"
	"github.com/vmunix/tubegrab/internal/retrieve/ytdlp"
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ytdlp.New(logger)
	if err := client.Check(ctx); err != nil {
		return fmt.Errorf("%w\nInstall yt-dlp and make sure it is on PATH: https://github.com/yt-dlp/yt-dlp/wiki/Installation", err)
	}

	outputDir := cfg.Output.Dir
	if len(args) > 1 {
		outputDir = args[1]
	}

	out := io.Writer(os.Stdout)
	if quietOutput {
		out = io.Discard
	}

	browser := cfg.Cookies.Browser
	if !cfg.BrowserFallback() {
		browser = ""
	}

	fetcher := retrieve.NewFetcher(client, retrieve.Policy{
		Format:         cfg.Format.Video,
		MergeFormat:    cfg.Format.Merge,
		SubtitleLangs:  cfg.Subtitles.Langs,
		SubtitleFormat: cfg.Subtitles.Format,
		CookieFile:     cfg.Cookies.File,
		CookieBrowser:  browser,
		TitleFilename:  cfg.Output.Filename == "title",
	}, out, logger)

	result, err := fetcher.Fetch(ctx, args[0], outputDir)
	if err != nil {
		return err
	}

	if !quietOutput {
		fmt.Println()
	}
	return printJSON(result)
}

// loadConfig resolves the configuration: an explicit --config path must
// exist, a discovered file is used when present, and built-in defaults
// apply otherwise.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlags lets command-line flags override the config file.
func applyFlags(cfg *config.Config) {
	if noBrowserCookies {
		f := false
		cfg.Cookies.FromBrowser = &f
	}
	if filenameMode != "" {
		cfg.Output.Filename = filenameMode
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// printJSON pretty-prints the result to stdout, preserving non-ASCII
// titles literally.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
