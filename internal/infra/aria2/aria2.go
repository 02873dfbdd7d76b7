// Package aria2 runs the aria2c command line downloader, one process per file.
package aria2

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
)

const (
	DefaultCommand = "aria2c"

	OutputFlag   = "-o"
	DirFlag      = "-d"
	AllProxyFlag = "--all-proxy"
)

type Downloader struct {
	Command string
	Stdout  io.Writer
	Stderr  io.Writer
}

func New(command string, stdout, stderr io.Writer) *Downloader {
	if command == "" {
		command = DefaultCommand
	}
	return &Downloader{Command: command, Stdout: stdout, Stderr: stderr}
}

// Args builds the argument list for one transfer.
func Args(task domain.DownloadTask) []string {
	args := []string{
		OutputFlag, task.Filename,
		DirFlag, task.Dir,
		task.URL,
	}
	if task.Proxy != "" {
		args = append(args, AllProxyFlag, task.Proxy)
	}
	return args
}

func (d *Downloader) Download(ctx context.Context, task domain.DownloadTask) error {
	cmd := exec.CommandContext(ctx, d.Command, Args(task)...)
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &domain.ExitError{Code: ee.ExitCode()}
	}
	return fmt.Errorf("run %s: %w", d.Command, err)
}
