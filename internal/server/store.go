package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gridboard/gridboard/pkg/errors"
)

// Dashboard is a stored dashboard definition.
type Dashboard struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Source    []byte    `json:"-" bson:"source"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Store is the interface for dashboard storage backends.
type Store interface {
	// Put stores a dashboard, replacing any existing one with the same ID.
	Put(ctx context.Context, d *Dashboard) error

	// Get retrieves a dashboard by ID. Returns a DASHBOARD_NOT_FOUND error
	// if no dashboard with that ID exists.
	Get(ctx context.Context, id string) (*Dashboard, error)

	// List returns all dashboards ordered by creation time.
	List(ctx context.Context) ([]Dashboard, error)

	// Delete removes a dashboard. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore is an in-memory store for development and testing.
type MemoryStore struct {
	mu         sync.RWMutex
	dashboards map[string]Dashboard
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{dashboards: make(map[string]Dashboard)}
}

func (s *MemoryStore) Put(ctx context.Context, d *Dashboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboards[d.ID] = *d
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.dashboards[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeDashboardNotFound, "dashboard %q not found", id)
	}
	return &d, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Dashboard, 0, len(s.dashboards))
	for _, d := range s.dashboards {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dashboards, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
