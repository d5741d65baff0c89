// Package cli provides the Cobra commands of the tasklist binary: the HTTP
// service, database migration, and read-only views of the form and of
// saved applications.
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupService       = "service"
	GroupInspect       = "inspect"
	GroupConfiguration = "configuration"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasklist",
		Short: "Accommodation referral task list service",
		Long: `tasklist serves the accommodation referral form: a task list of sections,
tasks and pages whose answers are validated, saved and summarised for review.`,
		Example: `  # Run the HTTP service
  tasklist serve

  # Show every section, task and page
  tasklist pages

  # Print the check-your-answers summary of a saved application
  tasklist summary ~/.tasklist/state/<id>.json`,
		SilenceUsage: true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: GroupService, Title: "Service:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInspect, Title: "Inspect:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	rootCmd.PersistentFlags().StringP("config", "c", "tasklist.yml", "Path to config file")

	rootCmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newPagesCommand(),
		newSummaryCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
