package store

import (
	"sort"
	"sync"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
)

type Memory struct {
	mu sync.Mutex

	results []domain.Result
	counts  map[domain.Outcome]int
}

func NewMemory() *Memory {
	return &Memory{
		counts: make(map[domain.Outcome]int),
	}
}

func (m *Memory) Record(r domain.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = append(m.results, r)
	m.counts[r.Outcome]++
}

// All returns recorded results ordered by their dispatch index.
func (m *Memory) All() []domain.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Result, len(m.results))
	copy(out, m.results)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (m *Memory) Counts() map[domain.Outcome]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[domain.Outcome]int, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out
}
