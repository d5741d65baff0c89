package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/logging"
	"github.com/temporary-accommodation/tasklist/internal/referral"
	"github.com/temporary-accommodation/tasklist/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP service",
		GroupID: GroupService,
		Long: `Run the task list HTTP API until interrupted.

Applications are kept in the configured store (file, memory or postgres) and
reference data is fetched from reference_url when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, closeStore, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			reg, err := referral.NewRegistry(newReferenceClient(cfg, log))
			if err != nil {
				return err
			}

			metrics := server.NewMetrics()
			engine := form.NewEngine(reg,
				form.WithPersister(st),
				form.WithObserver(metrics),
				form.WithLogger(log),
			)

			log.WithField("store", cfg.Store).Info("starting tasklist")
			return server.New(engine, st, metrics, log).ListenAndServe(ctx, cfg.ListenAddr)
		},
	}
}
