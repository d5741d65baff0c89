package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

// FileStore keeps one JSON file per application under a state directory.
// Writes go to a temp file that is renamed over the original.
type FileStore struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, now: time.Now}
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) Create(_ context.Context, crn string) (*form.Application, error) {
	app, err := newApplication(crn, s.now())
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *FileStore) Get(_ context.Context, id string) (*form.Application, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(id)
}

func (s *FileStore) SaveAnswers(_ context.Context, app *form.Application) error {
	if err := validID(app.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.read(app.ID)
	if err != nil {
		return err
	}
	existing.Answers = app.Answers
	existing.UpdatedAt = app.UpdatedAt
	return s.write(existing)
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("removing application file: %w", err)
	}
	return nil
}

// LoadFile reads an application snapshot from any JSON file.
func LoadFile(path string) (*form.Application, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading application file: %w", err)
	}
	var app form.Application
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("parsing application file %s: %w", path, err)
	}
	if app.Answers == nil {
		app.Answers = form.Answers{}
	}
	return &app, nil
}

func (s *FileStore) read(id string) (*form.Application, error) {
	app, err := LoadFile(s.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *FileStore) write(app *form.Application) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(app, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling application: %w", err)
	}

	path := s.path(app.ID)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing temp application file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp application file: %w", err)
	}
	return nil
}
