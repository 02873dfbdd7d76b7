package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
	"github.com/rojanmagar2001/goimgdl/internal/ports"
)

type DispatchOptions struct {
	Dir        string
	Proxy      string
	ApplyProxy bool // pass Proxy to each download
}

// Dispatcher hands each image URL to the external downloader, one at a time.
type Dispatcher struct {
	downloader ports.Downloader
	store      ports.Store
	logger     *zap.Logger
	stdout     io.Writer
	opts       DispatchOptions
}

func NewDispatcher(dl ports.Downloader, st ports.Store, logger *zap.Logger, stdout io.Writer, opts DispatchOptions) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stdout == nil {
		stdout = io.Discard
	}
	return &Dispatcher{
		downloader: dl,
		store:      st,
		logger:     logger,
		stdout:     stdout,
		opts:       opts,
	}
}

// Dispatch creates the output directory, then downloads every URL in order.
// Per-item failures are recorded and logged; only the directory setup can
// fail the call.
func (d *Dispatcher) Dispatch(ctx context.Context, urls []string) ([]domain.Result, error) {
	if err := os.MkdirAll(d.opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	total := len(urls)
	for i, u := range urls {
		task := domain.NewDownloadTask(u, d.opts.Dir, d.opts.Proxy, d.opts.ApplyProxy)
		fmt.Fprintf(d.stdout, "Downloading %d/%d file name: %s\n", i+1, total, task.Path())

		d.store.Record(d.downloadOne(ctx, i+1, task))
	}

	return d.store.All(), nil
}

func (d *Dispatcher) Counts() map[domain.Outcome]int {
	return d.store.Counts()
}

func (d *Dispatcher) downloadOne(ctx context.Context, index int, task domain.DownloadTask) domain.Result {
	start := time.Now()
	err := d.downloader.Download(ctx, task)
	res := domain.Result{
		Index:   index,
		URL:     task.URL,
		Task:    task,
		Outcome: domain.OutcomeOK,
		Err:     err,
		Elapsed: time.Since(start),
	}
	if err == nil {
		return res
	}

	var ee *domain.ExitError
	if errors.As(err, &ee) {
		res.Outcome = domain.OutcomeFailed
		res.ExitCode = ee.Code
		d.logger.Error("failed to download",
			zap.String("url", task.URL),
			zap.Int("exit_code", ee.Code),
		)
		return res
	}

	res.Outcome = domain.OutcomeExecError
	d.logger.Error("failed to execute downloader",
		zap.String("url", task.URL),
		zap.Error(err),
	)
	return res
}
