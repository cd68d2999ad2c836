// Package retrieve turns a video URL into downloaded files on disk,
// delegating the actual media transfer to an external retrieval capability.
package retrieve

import "context"

//go:generate mockgen -source=retriever.go -destination=mocks/retriever_mock.go -package=mocks

// Info is the metadata a retriever reports for a video. Filename is the
// final media path and is only set after a download.
type Info struct {
	ID       string
	Title    string
	Duration int64 // seconds, 0 if unknown
	Filename string
}

// ProgressStatus identifies the phase of a progress event.
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
)

// ProgressEvent is one sample from the retriever's progress stream.
// TotalBytes and BytesPerSec are zero when unknown.
type ProgressEvent struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64
	BytesPerSec     int64
}

// Options configures a retrieval call. CookieFile and CookieBrowser are
// mutually exclusive; when both are empty no cookie source is used.
type Options struct {
	OutputTemplate string
	Format         string
	MergeFormat    string
	SubtitleLangs  []string
	SubtitleFormat string
	WriteSubs      bool
	WriteAutoSubs  bool
	CookieFile     string
	CookieBrowser  string
}

// Retriever is the contract with the external video retrieval library.
type Retriever interface {
	// Check verifies the retrieval capability is available.
	Check(ctx context.Context) error

	// Probe fetches metadata for a URL without transferring media.
	Probe(ctx context.Context, url string, opts Options) (*Info, error)

	// Download transfers the media, emitting progress events along the way.
	// The returned Info carries the final output filename.
	Download(ctx context.Context, url string, opts Options, progress func(ProgressEvent)) (*Info, error)
}
