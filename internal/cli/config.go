package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/temporary-accommodation/tasklist/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show the effective configuration",
		GroupID: GroupConfiguration,
		Long: `Show the configuration after applying defaults, the global config
(~/.tasklist/config.yml), the --config file, .env and TASKLIST_* variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, cfg, func(w io.Writer) error {
				printConfig(w, cfg)
				return nil
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func printConfig(w io.Writer, cfg *config.Configuration) {
	key := color.New(color.FgYellow).SprintfFunc()
	rows := []struct {
		name  string
		value any
	}{
		{"listen_addr", cfg.ListenAddr},
		{"store", cfg.Store},
		{"state_dir", cfg.StateDir},
		{"database_url", redact(cfg.DatabaseURL)},
		{"reference_url", cfg.ReferenceURL},
		{"reference_timeout", cfg.ReferenceTimeout},
		{"reference_rate", cfg.ReferenceRate},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s %v\n", key("%-18s", row.name), row.value)
	}
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
