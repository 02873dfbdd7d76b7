package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
	"github.com/rojanmagar2001/goimgdl/internal/ports"
)

var (
	ErrFetch = errors.New("fetch page")
	ErrSetup = errors.New("prepare downloads")
)

// Orchestrator runs fetch -> extract -> dispatch, strictly in sequence.
type Orchestrator struct {
	fetcher    ports.Fetcher
	extractor  ports.Extractor
	dispatcher *Dispatcher
	logger     *zap.Logger
}

func NewOrchestrator(f ports.Fetcher, ex ports.Extractor, d *Dispatcher, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		fetcher:    f,
		extractor:  ex,
		dispatcher: d,
		logger:     logger,
	}
}

func (o *Orchestrator) Run(ctx context.Context, src domain.Source) ([]domain.Result, error) {
	o.logger.Info("get html content", zap.Stringer("source", src))

	text, err := o.fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	urls := o.extractor.Extract(text)
	o.logger.Info("extracted image urls", zap.Int("count", len(urls)))

	start := time.Now()
	results, err := o.dispatcher.Dispatch(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	// Item failures are reported here only; they never fail the run.
	counts := o.dispatcher.Counts()
	o.logger.Info("downloads finished",
		zap.Int("total", len(results)),
		zap.Int("ok", counts[domain.OutcomeOK]),
		zap.Int("failed", counts[domain.OutcomeFailed]),
		zap.Int("exec_errors", counts[domain.OutcomeExecError]),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results, nil
}
