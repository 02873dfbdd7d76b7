package domain

import (
	"path/filepath"
	"strings"
)

// DefaultUserAgent is the literal User-Agent sent on every page request.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"

// UnknownFilename is used when a URL has no '/' to split on.
const UnknownFilename = "unknown"

type DownloadTask struct {
	URL      string
	Filename string
	Dir      string
	Proxy    string // empty means no proxy for this transfer
}

// Path is the location the downloader is expected to write to.
func (t DownloadTask) Path() string {
	return filepath.Join(t.Dir, t.Filename)
}

// FilenameFromURL returns the substring after the last '/'.
func FilenameFromURL(rawURL string) string {
	i := strings.LastIndex(rawURL, "/")
	if i < 0 {
		return UnknownFilename
	}
	return rawURL[i+1:]
}

// NewDownloadTask derives a task for rawURL. The proxy is only attached when
// applyProxy is set.
func NewDownloadTask(rawURL, dir, proxy string, applyProxy bool) DownloadTask {
	t := DownloadTask{
		URL:      rawURL,
		Filename: FilenameFromURL(rawURL),
		Dir:      dir,
	}
	if proxy != "" && applyProxy {
		t.Proxy = proxy
	}
	return t
}
