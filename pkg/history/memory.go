package history

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// MemoryStorer is an in-memory Storer for tests and development.
type MemoryStorer struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStorer creates an empty in-memory store.
func NewMemoryStorer() *MemoryStorer {
	return &MemoryStorer{records: make(map[string]*Record)}
}

func (s *MemoryStorer) Put(_ context.Context, rec *Record) error {
	if rec == nil {
		return errors.New("cannot store nil record")
	}
	if rec.ID == "" {
		return errors.New("cannot store record without ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return nil
	}
	s.records[rec.ID] = rec
	return nil
}

func (s *MemoryStorer) Get(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound{ID: id}
	}
	return rec, nil
}

func (s *MemoryStorer) List(ctx context.Context) ([]*Record, error) {
	return s.listWhere(func(*Record) bool { return true })
}

func (s *MemoryStorer) ListKind(_ context.Context, kind Kind) ([]*Record, error) {
	return s.listWhere(func(r *Record) bool { return r.Kind == kind })
}

func (s *MemoryStorer) listWhere(keep func(*Record) bool) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}

	// Newest first; ID as tiebreaker for deterministic ordering.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (s *MemoryStorer) Close() error {
	return nil
}
