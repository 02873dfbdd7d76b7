package ports

import "github.com/rojanmagar2001/goimgdl/internal/domain"

// Store is in-memory; results only live for a single run.
type Store interface {
	Record(r domain.Result)
	All() []domain.Result
	Counts() map[domain.Outcome]int
}
