package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

func TestStores(t *testing.T) {
	t.Parallel()

	backends := map[string]func(t *testing.T) Store{
		"memory": func(*testing.T) Store { return NewMemoryStore() },
		"file":   func(t *testing.T) Store { return NewFileStore(t.TempDir()) },
	}

	for name, newStore := range backends {
		newStore := newStore
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := newStore(t)

			app, err := s.Create(ctx, " X320741 ")
			require.NoError(t, err)
			assert.Equal(t, "X320741", app.CRN)
			assert.NotEmpty(t, app.ID)
			assert.Empty(t, app.Answers)

			app.Answers = form.Answers{"needs": {"disability": form.Body{"hasDisability": "no"}}}
			app.UpdatedAt = app.CreatedAt.Add(time.Minute)
			require.NoError(t, s.SaveAnswers(ctx, app))

			// Mutating the caller's copy must not leak into the store.
			app.Answers["needs"]["disability"]["hasDisability"] = "yes"

			got, err := s.Get(ctx, app.ID)
			require.NoError(t, err)
			body, ok := got.Answers.Get("needs", "disability")
			require.True(t, ok)
			assert.Equal(t, "no", body.String("hasDisability"))
			assert.True(t, got.UpdatedAt.Equal(app.UpdatedAt))
			assert.True(t, got.CreatedAt.Equal(app.CreatedAt))

			require.NoError(t, s.Delete(ctx, app.ID))
			_, err = s.Get(ctx, app.ID)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, s.Delete(ctx, app.ID), ErrNotFound)
			assert.ErrorIs(t, s.SaveAnswers(ctx, app), ErrNotFound)
		})
	}
}

func TestCreateRequiresCRN(t *testing.T) {
	t.Parallel()

	_, err := NewMemoryStore().Create(context.Background(), "  ")
	assert.Error(t, err)
}

func TestFileStoreRejectsNonUUIDs(t *testing.T) {
	t.Parallel()

	s := NewFileStore(t.TempDir())
	_, err := s.Get(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileStore(dir)
	app, err := s.Create(context.Background(), "X1")
	require.NoError(t, err)

	loaded, err := LoadFile(s.path(app.ID))
	require.NoError(t, err)
	assert.Equal(t, app.ID, loaded.ID)
	assert.NotNil(t, loaded.Answers)

	_, err = LoadFile(dir + "/missing.json")
	assert.Error(t, err)
}
