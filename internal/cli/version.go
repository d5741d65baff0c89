package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func newVersionCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Display version information",
		GroupID: GroupConfiguration,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if plain {
				printPlainVersion(cmd.OutOrStdout())
				return
			}
			printPrettyVersion(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "tasklist %s\n", Version)
	fmt.Fprintf(w, "commit: %s\n", Commit)
	fmt.Fprintf(w, "built: %s\n", BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func printPrettyVersion(w io.Writer) {
	label := color.New(color.FgYellow).SprintfFunc()
	value := color.New(color.FgWhite, color.Bold).SprintFunc()

	fmt.Fprintln(w, color.New(color.FgCyan, color.Bold).Sprint("tasklist"))
	for _, item := range []struct{ label, value string }{
		{"Version", Version},
		{"Commit", truncateCommit(Commit)},
		{"Built", BuildDate},
		{"Go", runtime.Version()},
		{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
	} {
		fmt.Fprintf(w, "  %s  %s\n", label("%9s", item.label), value(item.value))
	}
}

func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
