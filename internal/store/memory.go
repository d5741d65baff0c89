package store

import (
	"context"
	"sync"
	"time"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

// MemoryStore keeps applications in memory. Returned applications are
// copies, so callers never share answer maps with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	apps map[string]form.Application
	now  func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{apps: map[string]form.Application{}, now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, crn string) (*form.Application, error) {
	app, err := newApplication(crn, s.now())
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.apps[app.ID] = *app
	s.mu.Unlock()
	return copyApplication(*app), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*form.Application, error) {
	s.mu.RLock()
	app, ok := s.apps[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return copyApplication(app), nil
}

func (s *MemoryStore) SaveAnswers(_ context.Context, app *form.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.apps[app.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Answers = app.Answers.Clone()
	existing.UpdatedAt = app.UpdatedAt
	s.apps[app.ID] = existing
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[id]; !ok {
		return ErrNotFound
	}
	delete(s.apps, id)
	return nil
}

func copyApplication(app form.Application) *form.Application {
	app.Answers = app.Answers.Clone()
	return &app
}
