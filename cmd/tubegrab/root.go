package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath       string
	quietOutput      bool
	noBrowserCookies bool
	filenameMode     string
	logLevel         string
)

var rootCmd = &cobra.Command{
	Use:   "tubegrab <url> [output-dir]",
	Short: "Download a YouTube video and its English subtitles",
	Long: `tubegrab - download a YouTube video and its English subtitles

Fetches the best available video+audio streams via yt-dlp, grabs
human-authored and auto-generated English subtitles in WebVTT format,
and prints the resulting file paths and metadata as JSON.

Authentication cookies are taken from a cookies.txt in the output
directory or the working directory when present, falling back to the
local browser's cookie store otherwise.

Examples:
  tubegrab https://youtube.com/watch?v=dQw4w9WgXcQ
  tubegrab https://youtu.be/dQw4w9WgXcQ ~/Downloads
  tubegrab --no-browser-cookies https://youtu.be/dQw4w9WgXcQ`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: auto-discover)")
	rootCmd.Flags().BoolVarP(&quietOutput, "quiet", "q", false, "Suppress progress output, print only the JSON result")
	rootCmd.Flags().BoolVar(&noBrowserCookies, "no-browser-cookies", false, "Never read cookies from the browser store")
	rootCmd.Flags().StringVar(&filenameMode, "filename", "", "Output naming: id or title")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tubegrab {{.Version}}\n")
}
