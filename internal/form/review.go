package form

import "fmt"

// TaskStatus is a task's progress in the table of contents.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusComplete   TaskStatus = "complete"
)

// TaskProgress pairs a task with its status.
type TaskProgress struct {
	TaskID string     `json:"taskId" yaml:"task_id"`
	Title  string     `json:"title" yaml:"title"`
	Status TaskStatus `json:"status" yaml:"status"`
}

// PageSummary is one answered page in the review.
type PageSummary struct {
	PageID   string   `json:"pageId" yaml:"page_id"`
	Title    string   `json:"title" yaml:"title"`
	Response Response `json:"response" yaml:"response"`
}

// TaskSummary is one task's answered pages in the review.
type TaskSummary struct {
	TaskID string        `json:"taskId" yaml:"task_id"`
	Title  string        `json:"title" yaml:"title"`
	Pages  []PageSummary `json:"pages" yaml:"pages"`
}

type visitedPage struct {
	def  PageDefinition
	page Page
}

// walk follows a task's navigation from its first page through stored,
// valid answers. complete is true when the walk reaches the end of the
// task.
func walk(app *Application, task TaskDefinition) (visited []visitedPage, complete bool, err error) {
	seen := make(map[string]bool)
	id := task.FirstPage()
	for id != "" {
		if seen[id] {
			return nil, false, fmt.Errorf("task %s: navigation loops back to %s", task.ID(), id)
		}
		seen[id] = true

		def, ok := task.Page(id)
		if !ok {
			return nil, false, fmt.Errorf("%w: %s is not a page of task %s", ErrInvalidTarget, id, task.ID())
		}
		stored, ok := app.Answers.Get(task.ID(), id)
		if !ok {
			return visited, false, nil
		}
		page, err := def.New(stored.Clone(), app)
		if err != nil {
			return nil, false, fmt.Errorf("building page %s/%s: %w", task.ID(), id, err)
		}
		if len(Validate(page)) > 0 {
			return visited, false, nil
		}
		visited = append(visited, visitedPage{def: def, page: page})
		id = page.Next()
	}
	return visited, true, nil
}

// Completed reports whether every page on a task's navigation path has a
// stored, valid answer.
func (e *Engine) Completed(app *Application, taskID string) (bool, error) {
	task, err := e.registry.Task(taskID)
	if err != nil {
		return false, err
	}
	_, complete, err := walk(app, task)
	return complete, err
}

// Status reports the progress of every task in display order.
func (e *Engine) Status(app *Application) ([]TaskProgress, error) {
	out := make([]TaskProgress, 0, len(e.registry.order))
	for _, taskID := range e.registry.order {
		task := e.registry.tasks[taskID]
		_, complete, err := walk(app, task)
		if err != nil {
			return nil, err
		}
		status := StatusNotStarted
		switch {
		case complete:
			status = StatusComplete
		case len(app.Answers[taskID]) > 0:
			status = StatusInProgress
		}
		out = append(out, TaskProgress{TaskID: taskID, Title: task.Title(), Status: status})
	}
	return out, nil
}

// Review projects the answers of every task except the review task, in
// display order, following each task's navigation so answers on pages the
// user has since routed around are left out.
func (e *Engine) Review(app *Application) ([]TaskSummary, error) {
	var out []TaskSummary
	for _, taskID := range e.registry.order {
		if taskID == ReviewTaskID {
			continue
		}
		task := e.registry.tasks[taskID]
		visited, _, err := walk(app, task)
		if err != nil {
			return nil, err
		}
		if len(visited) == 0 {
			continue
		}
		summary := TaskSummary{TaskID: taskID, Title: task.Title()}
		for _, v := range visited {
			resp, err := v.page.Response()
			if err != nil {
				return nil, fmt.Errorf("projecting %s/%s: %w", taskID, v.def.ID(), err)
			}
			summary.Pages = append(summary.Pages, PageSummary{PageID: v.def.ID(), Title: v.def.Title(), Response: resp})
		}
		out = append(out, summary)
	}
	return out, nil
}
