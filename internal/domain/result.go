package domain

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeFailed    Outcome = "failed"
	OutcomeExecError Outcome = "exec_error"
)

// Result is the outcome of one dispatched download.
type Result struct {
	Index    int // 1-based position in the extracted sequence
	URL      string
	Task     DownloadTask
	Outcome  Outcome
	ExitCode int
	Err      error
	Elapsed  time.Duration
}

func (r Result) IsFailed() bool {
	return r.Outcome != OutcomeOK
}

// ExitError reports that the external downloader ran but exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("downloader exited with status %d", e.Code)
}
