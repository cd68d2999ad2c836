// Package ytdlp adapts the yt-dlp retrieval library to the retrieve.Retriever
// contract.
package ytdlp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/vmunix/tubegrab/internal/retrieve"
)

// progressInterval is how often yt-dlp reports transfer progress.
const progressInterval = 500 * time.Millisecond

// Client drives the yt-dlp binary through the go-ytdlp wrapper.
type Client struct {
	log *slog.Logger
}

var _ retrieve.Retriever = (*Client)(nil)

// New creates a client.
func New(log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{log: log.With("component", "ytdlp")}
}

// Check verifies yt-dlp is runnable by asking it for its version.
func (c *Client) Check(ctx context.Context) error {
	res, err := ytdlp.New().Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", retrieve.ErrNotInstalled, err)
	}
	c.log.Debug("yt-dlp available", "version", strings.TrimSpace(res.Stdout))
	return nil
}

// Probe fetches metadata for a URL without transferring media.
func (c *Client) Probe(ctx context.Context, url string, opts retrieve.Options) (*retrieve.Info, error) {
	cmd := c.build(opts).SkipDownload()

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}

	return c.firstInfo(res)
}

// Download transfers the media, forwarding progress updates to the callback.
func (c *Client) Download(ctx context.Context, url string, opts retrieve.Options, progress func(retrieve.ProgressEvent)) (*retrieve.Info, error) {
	cmd := c.build(opts)

	if progress != nil {
		cmd.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			progress(mapProgress(update))
		})
	}

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, err
	}

	if progress != nil {
		progress(retrieve.ProgressEvent{Status: retrieve.ProgressFinished})
	}

	return c.firstInfo(res)
}

// build translates retrieval options into yt-dlp flags.
func (c *Client) build(opts retrieve.Options) *ytdlp.Command {
	cmd := ytdlp.New().Output(opts.OutputTemplate)

	if opts.Format != "" {
		cmd = cmd.Format(opts.Format)
	}
	if opts.MergeFormat != "" {
		cmd = cmd.MergeOutputFormat(opts.MergeFormat)
	}
	if opts.WriteSubs {
		cmd = cmd.WriteSubs()
	}
	if opts.WriteAutoSubs {
		cmd = cmd.WriteAutoSubs()
	}
	if len(opts.SubtitleLangs) > 0 {
		cmd = cmd.SubLangs(strings.Join(opts.SubtitleLangs, ","))
	}
	if opts.SubtitleFormat != "" {
		cmd = cmd.SubFormat(opts.SubtitleFormat)
	}

	switch {
	case opts.CookieFile != "":
		cmd = cmd.Cookies(opts.CookieFile)
	case opts.CookieBrowser != "":
		cmd = cmd.CookiesFromBrowser(opts.CookieBrowser)
	}

	return cmd
}

// firstInfo extracts the first video's metadata from a yt-dlp result.
func (c *Client) firstInfo(res *ytdlp.Result) (*retrieve.Info, error) {
	infos, err := res.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("extract info: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("yt-dlp reported no video info")
	}
	return mapInfo(infos[0]), nil
}

func mapInfo(in *ytdlp.ExtractedInfo) *retrieve.Info {
	out := &retrieve.Info{ID: in.ID}
	if in.Title != nil {
		out.Title = *in.Title
	}
	if in.Duration != nil {
		out.Duration = int64(*in.Duration)
	}
	if in.Filename != nil {
		out.Filename = *in.Filename
	}
	return out
}

// mapProgress converts a yt-dlp progress sample. The wrapper does not
// report an instantaneous rate, so speed is derived from elapsed time.
func mapProgress(update ytdlp.ProgressUpdate) retrieve.ProgressEvent {
	ev := retrieve.ProgressEvent{
		Status:          retrieve.ProgressDownloading,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}

	if !update.Started.IsZero() {
		if elapsed := time.Since(update.Started).Seconds(); elapsed > 0 {
			ev.BytesPerSec = int64(float64(ev.DownloadedBytes) / elapsed)
		}
	}

	return ev
}
