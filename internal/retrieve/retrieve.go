package retrieve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/tubegrab/internal/progress"
)

// Result is the record reported for one completed download. It is built
// once, after all files are verified on disk, and never mutated.
type Result struct {
	VideoPath    string `json:"video_path"`
	SubtitlePath string `json:"subtitle_path,omitempty"`
	Title        string `json:"title"`
	Duration     int64  `json:"duration"`
	FileSize     int64  `json:"file_size"`
	VideoID      string `json:"video_id"`
}

// Policy holds the retrieval knobs that stay fixed for one invocation.
type Policy struct {
	Format         string
	MergeFormat    string
	SubtitleLangs  []string
	SubtitleFormat string

	// CookieFile is an explicitly configured cookie jar. When set it wins
	// over cookies.txt discovery and the browser store.
	CookieFile string

	// CookieBrowser names the browser store used when no cookies.txt is
	// found. Empty disables the fallback entirely.
	CookieBrowser string

	// TitleFilename renames the output files to a sanitized title stem
	// instead of keeping the platform video ID.
	TitleFilename bool
}

// Fetcher orchestrates a single URL-to-files download.
type Fetcher struct {
	retriever Retriever
	policy    Policy
	out       io.Writer
	log       *slog.Logger
}

// NewFetcher creates a fetcher. Human-readable status goes to out; pass
// io.Discard to silence it.
func NewFetcher(r Retriever, policy Policy, out io.Writer, log *slog.Logger) *Fetcher {
	if log == nil {
		log = slog.Default()
	}
	return &Fetcher{
		retriever: r,
		policy:    policy,
		out:       out,
		log:       log.With("component", "fetcher"),
	}
}

// Fetch downloads the video and its subtitles into outputDir (the working
// directory when empty) and returns the verified result. The URL is
// validated before any directory is touched.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, outputDir string) (*Result, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	if outputDir == "" {
		outputDir = workDir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(f.out, "Fetching video\n   URL: %s\n   Output dir: %s\n", rawURL, outputDir)

	opts := f.buildOptions(outputDir, workDir)

	fmt.Fprintln(f.out, "\nProbing video info...")
	info, err := f.retriever.Probe(ctx, rawURL, opts)
	if err != nil {
		return nil, wrapDownload(err, outputDir)
	}
	fmt.Fprintf(f.out, "   Title:    %s\n   Duration: %s\n   Video ID: %s\n",
		info.Title, formatDuration(info.Duration), info.ID)

	fmt.Fprintln(f.out, "\nDownloading...")
	dlInfo, err := f.download(ctx, rawURL, opts)
	if err != nil {
		return nil, wrapDownload(err, outputDir)
	}

	// The download-phase report can be sparser than the probe; prefer it
	// but fall back to probed metadata.
	if dlInfo.ID == "" {
		dlInfo.ID = info.ID
	}
	if dlInfo.Title == "" {
		dlInfo.Title = info.Title
	}
	if dlInfo.Duration == 0 {
		dlInfo.Duration = info.Duration
	}

	videoPath := dlInfo.Filename
	if videoPath == "" {
		return nil, wrapDownload(fmt.Errorf("retriever reported no output file"), outputDir)
	}
	stat, err := os.Stat(videoPath)
	if err != nil {
		return nil, wrapDownload(fmt.Errorf("video file not found after download: %s", videoPath), outputDir)
	}

	subtitlePath, found := FindSubtitle(videoPath, f.policy.SubtitleLangs, f.policy.SubtitleFormat)

	if f.policy.TitleFilename {
		videoPath, subtitlePath, err = f.renameToTitle(videoPath, subtitlePath, dlInfo.Title)
		if err != nil {
			return nil, wrapDownload(err, outputDir)
		}
	}

	fmt.Fprintf(f.out, "\nVideo downloaded: %s (%s)\n",
		filepath.Base(videoPath), humanize.Bytes(uint64(stat.Size())))
	if found {
		fmt.Fprintf(f.out, "Subtitle downloaded: %s\n", filepath.Base(subtitlePath))
	} else {
		fmt.Fprintln(f.out, "Warning: no matching subtitle found (the video may have none)")
	}

	return &Result{
		VideoPath:    videoPath,
		SubtitlePath: subtitlePath,
		Title:        dlInfo.Title,
		Duration:     dlInfo.Duration,
		FileSize:     stat.Size(),
		VideoID:      dlInfo.ID,
	}, nil
}

// buildOptions assembles the fixed retrieval policy plus the resolved
// cookie source for this invocation.
func (f *Fetcher) buildOptions(outputDir, workDir string) Options {
	opts := Options{
		OutputTemplate: filepath.Join(outputDir, "%(id)s.%(ext)s"),
		Format:         f.policy.Format,
		MergeFormat:    f.policy.MergeFormat,
		SubtitleLangs:  f.policy.SubtitleLangs,
		SubtitleFormat: f.policy.SubtitleFormat,
		WriteSubs:      true,
		WriteAutoSubs:  true,
	}

	src := CookieSource{File: f.policy.CookieFile}
	if src.File == "" {
		src = ResolveCookieSource(outputDir, workDir, f.policy.CookieBrowser)
	}
	switch {
	case src.File != "":
		fmt.Fprintf(f.out, "   Using cookie file: %s\n", src.File)
		opts.CookieFile = src.File
	case src.Browser != "":
		fmt.Fprintf(f.out, "   Using %s browser cookies\n", src.Browser)
		fmt.Fprintln(f.out, "   Note: the OS may prompt for keychain access; denying it will hang the download")
		opts.CookieBrowser = src.Browser
	default:
		f.log.Debug("no cookie source available")
	}

	return opts
}

// download runs the retrieval call and the progress renderer together.
// The retriever invokes its callback on its own goroutine; events flow
// over a channel so rendering never blocks the transfer.
func (f *Fetcher) download(ctx context.Context, rawURL string, opts Options) (*Info, error) {
	events := make(chan ProgressEvent, 16)

	var info *Info
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(events)
		var err error
		info, err = f.retriever.Download(ctx, rawURL, opts, func(ev ProgressEvent) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
		return err
	})

	g.Go(func() error {
		r := progress.New(f.out)
		defer r.Finish()
		for ev := range events {
			switch ev.Status {
			case ProgressDownloading:
				r.Update(ev.DownloadedBytes, ev.TotalBytes, ev.BytesPerSec)
			case ProgressFinished:
				r.Finish()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("retriever returned no video info")
	}
	return info, nil
}

// renameToTitle moves the downloaded files to a sanitized title-based name,
// keeping extensions and language suffixes intact.
func (f *Fetcher) renameToTitle(videoPath, subtitlePath, title string) (string, string, error) {
	stem := SanitizeFilename(title)
	if stem == "" {
		f.log.Warn("title unusable as filename, keeping id-based name", "title", title)
		return videoPath, subtitlePath, nil
	}

	dir := filepath.Dir(videoPath)
	oldStem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	newVideo := filepath.Join(dir, stem+filepath.Ext(videoPath))
	if newVideo != videoPath {
		if err := os.Rename(videoPath, newVideo); err != nil {
			return "", "", fmt.Errorf("rename video: %w", err)
		}
	}

	newSubtitle := subtitlePath
	if subtitlePath != "" {
		// Preserve everything after the old stem (e.g. ".en.vtt").
		suffix := strings.TrimPrefix(filepath.Base(subtitlePath), oldStem)
		newSubtitle = filepath.Join(dir, stem+suffix)
		if newSubtitle != subtitlePath {
			if err := os.Rename(subtitlePath, newSubtitle); err != nil {
				return "", "", fmt.Errorf("rename subtitle: %w", err)
			}
		}
	}

	return newVideo, newSubtitle, nil
}

// formatDuration renders seconds as mm:ss or hh:mm:ss.
func formatDuration(seconds int64) string {
	if seconds <= 0 {
		return "unknown"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
