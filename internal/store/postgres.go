package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

// Schema creates the applications table.
const Schema = `
CREATE TABLE IF NOT EXISTS applications (
	id         UUID PRIMARY KEY,
	crn        TEXT NOT NULL,
	answers    JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore keeps applications in PostgreSQL, with answers in a JSONB
// column.
type PostgresStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a store using the provided database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

// OpenPostgres opens a database handle for a postgres URL.
func OpenPostgres(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrating applications table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, crn string) (*form.Application, error) {
	app, err := newApplication(crn, s.now())
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO applications (id, crn, answers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, app.ID, app.CRN, "{}", app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting application: %w", err)
	}
	return app, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*form.Application, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT id, crn, answers, created_at, updated_at
		FROM applications
		WHERE id = $1
	`, id)

	var (
		app        form.Application
		answersRaw []byte
	)
	if err := row.Scan(&app.ID, &app.CRN, &answersRaw, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading application %s: %w", id, err)
	}
	app.Answers = form.Answers{}
	if len(answersRaw) > 0 {
		if err := json.Unmarshal(answersRaw, &app.Answers); err != nil {
			return nil, fmt.Errorf("decoding answers of application %s: %w", id, err)
		}
	}
	return &app, nil
}

func (s *PostgresStore) SaveAnswers(ctx context.Context, app *form.Application) error {
	if err := validID(app.ID); err != nil {
		return err
	}
	answers := app.Answers
	if answers == nil {
		answers = form.Answers{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET answers = $2, updated_at = $3
		WHERE id = $1
	`, app.ID, string(answersJSON), app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating application %s: %w", app.ID, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting application %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
