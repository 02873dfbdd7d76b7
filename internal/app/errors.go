package app

import "errors"

type Kind int

const (
	KindUsage Kind = iota + 1
	KindConfig
	KindFetch
	KindSetup
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindFetch:
		return "fetch"
	case KindSetup:
		return "setup"
	default:
		return "unknown"
	}
}

const (
	ExitOK    = 0
	ExitUsage = 1
	ExitFatal = 2
)

// Error is a fatal run error tagged with the stage that produced it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func Usage(err error) error { return &Error{Kind: KindUsage, Err: err} }

// ExitCode maps an error returned by Run (or the CLI) to a process exit code.
// Per-item download failures never reach here.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *Error
	if errors.As(err, &e) && e.Kind == KindUsage {
		return ExitUsage
	}
	return ExitFatal
}
