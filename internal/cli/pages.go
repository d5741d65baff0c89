package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/reference"
	"github.com/temporary-accommodation/tasklist/internal/referral"
)

type sectionView struct {
	Title string     `json:"title" yaml:"title"`
	Tasks []taskView `json:"tasks" yaml:"tasks"`
}

type taskView struct {
	ID         string     `json:"id" yaml:"id"`
	Title      string     `json:"title" yaml:"title"`
	ActionText string     `json:"actionText,omitempty" yaml:"action_text,omitempty"`
	Pages      []pageView `json:"pages" yaml:"pages"`
}

type pageView struct {
	ID     string   `json:"id" yaml:"id"`
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	Fields []string `json:"fields" yaml:"fields"`
}

func describeRegistry(reg *form.Registry) []sectionView {
	var out []sectionView
	for _, section := range reg.Sections() {
		sv := sectionView{Title: section.Title()}
		for _, task := range section.Tasks() {
			tv := taskView{ID: task.ID(), Title: task.Title(), ActionText: task.ActionText()}
			for _, page := range task.Pages() {
				tv.Pages = append(tv.Pages, pageView{ID: page.ID(), Title: page.Title(), Fields: page.Fields()})
			}
			sv.Tasks = append(sv.Tasks, tv)
		}
		out = append(out, sv)
	}
	return out
}

func newPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Short:   "List the form's sections, tasks and pages",
		GroupID: GroupInspect,
		Example: `  tasklist pages
  tasklist pages -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			reg, err := referral.NewRegistry(&reference.Static{})
			if err != nil {
				return err
			}
			sections := describeRegistry(reg)
			return render(cmd.OutOrStdout(), format, sections, func(w io.Writer) error {
				printSections(w, sections)
				return nil
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func printSections(w io.Writer, sections []sectionView) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	taskColor := color.New(color.FgWhite, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, heading(section.Title))
		for _, task := range section.Tasks {
			fmt.Fprintf(w, "  %s %s\n", taskColor(task.Title), dim("("+task.ID+")"))
			for _, page := range task.Pages {
				fmt.Fprintf(w, "    - %s %s\n", page.ID, dim("["+strings.Join(page.Fields, ", ")+"]"))
			}
		}
	}
}
