package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/progress"
	"github.com/temporary-accommodation/tasklist/internal/reference"
	"github.com/temporary-accommodation/tasklist/internal/referral"
	"github.com/temporary-accommodation/tasklist/internal/store"
)

type summaryView struct {
	ID     string              `json:"id" yaml:"id"`
	CRN    string              `json:"crn" yaml:"crn"`
	Tasks  []form.TaskProgress `json:"tasks" yaml:"tasks"`
	Review []form.TaskSummary  `json:"review" yaml:"review"`
}

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "summary <application.json>",
		Short:   "Print the check-your-answers summary of a saved application",
		GroupID: GroupInspect,
		Example: `  tasklist summary ~/.tasklist/state/3f1c....json
  tasklist summary app.json -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			app, err := store.LoadFile(args[0])
			if err != nil {
				return err
			}
			view, err := summarize(app)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, view, func(w io.Writer) error {
				printSummary(w, view, progress.TerminalWidth())
				return nil
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

// summarize builds the review of a snapshot. Stored answers already hold
// their reference data, so no lookups are made.
func summarize(app *form.Application) (summaryView, error) {
	reg, err := referral.NewRegistry(&reference.Static{})
	if err != nil {
		return summaryView{}, err
	}
	engine := form.NewEngine(reg)

	status, err := engine.Status(app)
	if err != nil {
		return summaryView{}, err
	}
	review, err := engine.Review(app)
	if err != nil {
		return summaryView{}, err
	}
	return summaryView{ID: app.ID, CRN: app.CRN, Tasks: status, Review: review}, nil
}

func printSummary(w io.Writer, view summaryView, width int) {
	bold := color.New(color.Bold).SprintFunc()
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	rule := strings.Repeat("─", min(width, 60))

	fmt.Fprintf(w, "%s %s (CRN %s)\n\n", bold("Application"), view.ID, view.CRN)
	for _, task := range view.Tasks {
		fmt.Fprintf(w, "  %s %s\n", statusMark(task.Status), task.Title)
	}

	for _, task := range view.Review {
		fmt.Fprintln(w)
		fmt.Fprintln(w, dim(rule))
		fmt.Fprintln(w, heading(task.Title))
		for _, page := range task.Pages {
			for _, entry := range page.Response {
				writeAnswer(w, "  ", entry.Question, entry.Answer)
			}
		}
	}
}

func statusMark(status form.TaskStatus) string {
	switch status {
	case form.StatusComplete:
		return color.GreenString("[complete]   ")
	case form.StatusInProgress:
		return color.YellowString("[in progress]")
	default:
		return color.New(color.Faint).Sprint("[not started]")
	}
}

func writeAnswer(w io.Writer, indent, question string, answer any) {
	switch a := answer.(type) {
	case string:
		fmt.Fprintf(w, "%s%s: %s\n", indent, question, a)
	case []string:
		fmt.Fprintf(w, "%s%s: %s\n", indent, question, strings.Join(a, ", "))
	case []any:
		parts := make([]string, 0, len(a))
		for _, v := range a {
			parts = append(parts, fmt.Sprint(v))
		}
		fmt.Fprintf(w, "%s%s: %s\n", indent, question, strings.Join(parts, ", "))
	case []form.Response:
		fmt.Fprintf(w, "%s%s:\n", indent, question)
		for i, rec := range a {
			fmt.Fprintf(w, "%s  %d.\n", indent, i+1)
			for _, entry := range rec {
				writeAnswer(w, indent+"    ", entry.Question, entry.Answer)
			}
		}
	case map[string]any:
		fmt.Fprintf(w, "%s%s:\n", indent, question)
		keys := make([]string, 0, len(a))
		for k := range a {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeAnswer(w, indent+"  ", k, a[k])
		}
	default:
		fmt.Fprintf(w, "%s%s: %v\n", indent, question, a)
	}
}
