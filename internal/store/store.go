// Package store persists applications and their answers.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

// ErrNotFound is returned when no application has the requested id.
var ErrNotFound = errors.New("store: application not found")

// Store is the backend persistence collaborator for applications.
type Store interface {
	// Create starts a new application for a case reference number.
	Create(ctx context.Context, crn string) (*form.Application, error)
	// Get loads an application by id.
	Get(ctx context.Context, id string) (*form.Application, error)
	// SaveAnswers durably stores the application's full answer map.
	SaveAnswers(ctx context.Context, app *form.Application) error
	// Delete removes an application.
	Delete(ctx context.Context, id string) error
}

// newApplication builds a fresh application with a generated id.
func newApplication(crn string, now time.Time) (*form.Application, error) {
	crn = strings.TrimSpace(crn)
	if crn == "" {
		return nil, fmt.Errorf("creating application: crn is required")
	}
	now = now.UTC()
	return &form.Application{
		ID:        uuid.NewString(),
		CRN:       crn,
		Answers:   form.Answers{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// validID guards file names and queries against ids that are not UUIDs.
func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
