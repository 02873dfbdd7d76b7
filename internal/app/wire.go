package app

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rojanmagar2001/goimgdl/internal/config"
	"github.com/rojanmagar2001/goimgdl/internal/domain"
	"github.com/rojanmagar2001/goimgdl/internal/infra/aria2"
	"github.com/rojanmagar2001/goimgdl/internal/infra/extractor"
	"github.com/rojanmagar2001/goimgdl/internal/infra/httpclient"
	"github.com/rojanmagar2001/goimgdl/internal/infra/store"
	"github.com/rojanmagar2001/goimgdl/internal/logging"
	"github.com/rojanmagar2001/goimgdl/internal/ports"
	"github.com/rojanmagar2001/goimgdl/internal/usecase"
)

// Run executes one pipeline: fetch page -> extract image urls -> download
// each with the external downloader. Progress goes to stdout, logs and the
// downloader's own output to stderr.
func Run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	_, err := run(ctx, cfg, stdout, stderr)
	return err
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) ([]domain.Result, error) {
	src, err := cfg.Source()
	if err != nil {
		return nil, Usage(err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Writer: stderr})
	if err != nil {
		return nil, &Error{Kind: KindConfig, Err: err}
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", runID()))

	// The client, and so the proxy check, is only needed for remote pages.
	var client ports.HTTPClient
	if src.IsRemote() {
		c, err := httpclient.New(httpclient.Options{
			Timeout:      cfg.Timeout,
			MaxRedirects: cfg.MaxRedirects,
			Proxy:        cfg.Proxy,
			UserAgent:    cfg.UserAgent,
		})
		if err != nil {
			return nil, &Error{Kind: KindConfig, Err: err}
		}
		client = c
	}

	fetcher := usecase.NewPageFetcher(client, logger)
	dl := aria2.New(cfg.Downloader, stdout, stderr)
	dispatcher := usecase.NewDispatcher(dl, store.NewMemory(), logger, stdout, usecase.DispatchOptions{
		Dir:        cfg.Dir,
		Proxy:      cfg.Proxy,
		ApplyProxy: cfg.ProxyDownloads,
	})

	orch := usecase.NewOrchestrator(fetcher, extractor.New(), dispatcher, logger)
	results, err := orch.Run(ctx, src)
	if err != nil {
		kind := KindSetup
		if errors.Is(err, usecase.ErrFetch) {
			kind = KindFetch
		}
		logger.Debug("run aborted", zap.Stringer("stage", kind), zap.Error(err))
		return nil, &Error{Kind: kind, Err: err}
	}
	return results, nil
}

func runID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
