package ports

import (
	"context"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
)

type Fetcher interface {
	Fetch(ctx context.Context, src domain.Source) (string, error)
}
