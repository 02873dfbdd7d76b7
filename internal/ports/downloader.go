package ports

import (
	"context"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
)

// Downloader transfers one file. A non-zero exit of the underlying tool is
// reported as *domain.ExitError; any other error means it could not be run.
type Downloader interface {
	Download(ctx context.Context, task domain.DownloadTask) error
}
