package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
	"github.com/rojanmagar2001/goimgdl/internal/ports"
)

// ErrDecode reports page content that could not be turned into text.
var ErrDecode = errors.New("decode page text")

type PageFetcher struct {
	client ports.HTTPClient
	logger *zap.Logger
}

// NewPageFetcher returns a fetcher; client may be nil when only local
// sources will be read.
func NewPageFetcher(client ports.HTTPClient, logger *zap.Logger) *PageFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageFetcher{client: client, logger: logger}
}

func (f *PageFetcher) Fetch(ctx context.Context, src domain.Source) (string, error) {
	switch src.Kind {
	case domain.SourceRemote:
		return f.fetchRemote(ctx, src.Location)
	case domain.SourceLocal:
		return f.readLocal(src.Location)
	default:
		return "", fmt.Errorf("unknown source kind %q", src.Kind)
	}
}

func (f *PageFetcher) fetchRemote(ctx context.Context, pageURL string) (string, error) {
	if f.client == nil {
		return "", errors.New("no http client configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	// Always the literal browser string, whatever the client was configured with.
	req.Header.Set("User-Agent", domain.DefaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("unexpected status",
			zap.String("url", pageURL),
			zap.Int("status", resp.StatusCode),
		)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrDecode, err)
	}

	return string(body), nil
}

func (f *PageFetcher) readLocal(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read html file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrDecode, path)
	}
	return string(data), nil
}
