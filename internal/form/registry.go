package form

import (
	"fmt"
	"strings"
)

// TaskDefinition is an ordered group of pages.
type TaskDefinition struct {
	id         string
	title      string
	actionText string
	pages      []PageDefinition
	byID       map[string]PageDefinition
}

// DefineTask groups ordered pages into a task and stamps each page with the
// task's id. Page ids must be unique within the task.
func DefineTask(id, title, actionText string, pages ...PageDefinition) (TaskDefinition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TaskDefinition{}, fmt.Errorf("defining task: id is required")
	}
	if len(pages) == 0 {
		return TaskDefinition{}, fmt.Errorf("defining task %s: at least one page is required", id)
	}

	task := TaskDefinition{
		id:         id,
		title:      title,
		actionText: actionText,
		pages:      make([]PageDefinition, 0, len(pages)),
		byID:       make(map[string]PageDefinition, len(pages)),
	}
	for _, p := range pages {
		if p.id == "" {
			return TaskDefinition{}, fmt.Errorf("defining task %s: page was not defined with DefinePage", id)
		}
		if p.taskID != "" && p.taskID != id {
			return TaskDefinition{}, fmt.Errorf("defining task %s: page %s already belongs to task %s", id, p.id, p.taskID)
		}
		if _, exists := task.byID[p.id]; exists {
			return TaskDefinition{}, fmt.Errorf("defining task %s: %w: %s", id, ErrDuplicatePage, p.id)
		}
		p.taskID = id
		task.pages = append(task.pages, p)
		task.byID[p.id] = p
	}
	return task, nil
}

// ID returns the task's stable id.
func (t TaskDefinition) ID() string { return t.id }

// Title returns the task's display title.
func (t TaskDefinition) Title() string { return t.title }

// ActionText returns the call to action shown in the table of contents.
func (t TaskDefinition) ActionText() string { return t.actionText }

// Pages returns the task's pages in order.
func (t TaskDefinition) Pages() []PageDefinition {
	return append([]PageDefinition(nil), t.pages...)
}

// Page returns the page with the given id.
func (t TaskDefinition) Page(id string) (PageDefinition, bool) {
	p, ok := t.byID[id]
	return p, ok
}

// FirstPage returns the id of the task's first page.
func (t TaskDefinition) FirstPage() string {
	return t.pages[0].id
}

// SectionDefinition is an ordered group of tasks shown together in the
// table of contents.
type SectionDefinition struct {
	title string
	tasks []TaskDefinition
}

// DefineSection groups ordered tasks into a section.
func DefineSection(title string, tasks ...TaskDefinition) SectionDefinition {
	return SectionDefinition{title: title, tasks: append([]TaskDefinition(nil), tasks...)}
}

// Title returns the section's display title.
func (s SectionDefinition) Title() string { return s.title }

// Tasks returns the section's tasks in order.
func (s SectionDefinition) Tasks() []TaskDefinition {
	return append([]TaskDefinition(nil), s.tasks...)
}

// Flatten builds the global task id -> page id -> page lookup table. A task
// id appearing twice, in one section or across sections, is an error.
func Flatten(sections []SectionDefinition) (map[string]map[string]PageDefinition, error) {
	out := make(map[string]map[string]PageDefinition)
	for _, s := range sections {
		for _, t := range s.tasks {
			if _, exists := out[t.id]; exists {
				return nil, fmt.Errorf("flattening section %q: %w: %s", s.title, ErrDuplicateTask, t.id)
			}
			pages := make(map[string]PageDefinition, len(t.pages))
			for _, p := range t.pages {
				pages[p.id] = p
			}
			out[t.id] = pages
		}
	}
	return out, nil
}

// Registry is the immutable page/task/section metadata for one form.
type Registry struct {
	sections []SectionDefinition
	tasks    map[string]TaskDefinition
	order    []string
	pages    map[string]map[string]PageDefinition
}

// NewRegistry builds a registry from defined sections.
func NewRegistry(sections ...SectionDefinition) (*Registry, error) {
	pages, err := Flatten(sections)
	if err != nil {
		return nil, err
	}
	r := &Registry{
		sections: append([]SectionDefinition(nil), sections...),
		tasks:    make(map[string]TaskDefinition),
		pages:    pages,
	}
	for _, s := range sections {
		for _, t := range s.tasks {
			r.tasks[t.id] = t
			r.order = append(r.order, t.id)
		}
	}
	return r, nil
}

// TaskSpec declares a task and its pages.
type TaskSpec struct {
	ID         string
	Title      string
	ActionText string
	Pages      []PageSpec
}

// SectionSpec declares a section and its tasks.
type SectionSpec struct {
	Title string
	Tasks []TaskSpec
}

// Build turns declarative section descriptors into a registry.
func Build(specs ...SectionSpec) (*Registry, error) {
	sections := make([]SectionDefinition, 0, len(specs))
	for _, ss := range specs {
		tasks := make([]TaskDefinition, 0, len(ss.Tasks))
		for _, ts := range ss.Tasks {
			pages := make([]PageDefinition, 0, len(ts.Pages))
			for _, ps := range ts.Pages {
				def, err := DefinePage(ps)
				if err != nil {
					return nil, fmt.Errorf("building task %s: %w", ts.ID, err)
				}
				pages = append(pages, def)
			}
			task, err := DefineTask(ts.ID, ts.Title, ts.ActionText, pages...)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
		}
		sections = append(sections, DefineSection(ss.Title, tasks...))
	}
	return NewRegistry(sections...)
}

// Sections returns the sections in display order.
func (r *Registry) Sections() []SectionDefinition {
	return append([]SectionDefinition(nil), r.sections...)
}

// TaskIDs returns every task id in display order.
func (r *Registry) TaskIDs() []string {
	return append([]string(nil), r.order...)
}

// Task returns the task with the given id.
func (r *Registry) Task(id string) (TaskDefinition, error) {
	t, ok := r.tasks[id]
	if !ok {
		return TaskDefinition{}, fmt.Errorf("%w: %s", ErrUnknownTask, id)
	}
	return t, nil
}

// Page returns the page type to instantiate for a task id and page id.
func (r *Registry) Page(taskID, pageID string) (PageDefinition, error) {
	pages, ok := r.pages[taskID]
	if !ok {
		return PageDefinition{}, fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	p, ok := pages[pageID]
	if !ok {
		return PageDefinition{}, fmt.Errorf("%w: %s/%s", ErrUnknownPage, taskID, pageID)
	}
	return p, nil
}
