package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/temporary-accommodation/tasklist/internal/config"
	"github.com/temporary-accommodation/tasklist/internal/reference"
	"github.com/temporary-accommodation/tasklist/internal/store"
)

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newReferenceClient uses the reference API when one is configured and an
// empty in-memory source otherwise, so every lookup degrades to its default.
func newReferenceClient(cfg *config.Configuration, log logrus.FieldLogger) reference.Client {
	if cfg.ReferenceURL == "" {
		log.Warn("no reference_url configured; reference data lookups will use defaults")
		return &reference.Static{}
	}
	return reference.NewHTTPClient(reference.HTTPClientConfig{
		BaseURL:           cfg.ReferenceURL,
		Timeout:           cfg.ReferenceTimeoutDuration(),
		RequestsPerSecond: cfg.ReferenceRate,
	})
}

// openStore returns the configured store and a function releasing it.
func openStore(ctx context.Context, cfg *config.Configuration) (store.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store {
	case "memory":
		return store.NewMemoryStore(), noop, nil
	case "file":
		return store.NewFileStore(cfg.StateDir), noop, nil
	case "postgres":
		db, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return store.NewPostgresStore(db), db.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported store %q", cfg.Store)
}
