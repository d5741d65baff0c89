package form

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Persister hands the full updated answer map to durable storage.
type Persister interface {
	SaveAnswers(ctx context.Context, app *Application) error
}

// Observer is notified of submission outcomes.
type Observer interface {
	Saved(taskID, pageID string, res SaveResult)
	Rejected(taskID, pageID string, errs map[string]string)
}

// Engine serves page requests for one form: it resolves and validates
// pages, saves answers and reports where to go next.
type Engine struct {
	registry  *Registry
	persister Persister
	observer  Observer
	log       logrus.FieldLogger
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPersister sets the collaborator that stores answers after each save.
func WithPersister(p Persister) Option {
	return func(e *Engine) { e.persister = p }
}

// WithObserver sets a submission observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithLogger sets the engine's logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over a registry.
func NewEngine(registry *Registry, opts ...Option) *Engine {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	e := &Engine{
		registry: registry,
		log:      logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Page resolves the body for a page and constructs the page instance.
func (e *Engine) Page(ctx context.Context, app *Application, taskID, pageID string, submitted, override Body) (Page, error) {
	def, err := e.registry.Page(taskID, pageID)
	if err != nil {
		return nil, err
	}
	body, err := Resolve(ctx, e.log, def, app, submitted, override)
	if err != nil {
		return nil, err
	}
	page, err := def.New(body, app)
	if err != nil {
		return nil, fmt.Errorf("building page %s/%s: %w", taskID, pageID, err)
	}
	return page, nil
}

// SubmitResult describes an accepted page submission.
type SubmitResult struct {
	TaskID      string `json:"taskId"`
	PageID      string `json:"pageId"`
	Next        string `json:"next"`
	Previous    string `json:"previous"`
	Changed     bool   `json:"changed"`
	Invalidated bool   `json:"invalidated"`
}

// Submit validates the submitted body for a page and saves it.
//
// An invalid body returns a *ValidationError and leaves the application
// untouched. A valid body is saved to a copy of the answers, which is handed
// to the persister; the application only sees the new answers, and any
// review invalidation, once the persister has succeeded.
func (e *Engine) Submit(ctx context.Context, app *Application, taskID, pageID string, submitted Body) (SubmitResult, error) {
	log := e.log.WithFields(logrus.Fields{
		"application_id": app.ID,
		"task":           taskID,
		"page":           pageID,
	})

	page, err := e.Page(ctx, app, taskID, pageID, submitted, nil)
	if err != nil {
		return SubmitResult{}, err
	}

	if errs := Validate(page); len(errs) > 0 {
		log.WithField("fields", len(errs)).Debug("page submission rejected")
		if e.observer != nil {
			e.observer.Rejected(taskID, pageID, errs)
		}
		return SubmitResult{}, &ValidationError{TaskID: taskID, PageID: pageID, Errors: errs, Body: page.Body()}
	}

	task, err := e.registry.Task(taskID)
	if err != nil {
		return SubmitResult{}, err
	}
	result := SubmitResult{TaskID: taskID, PageID: pageID, Next: page.Next(), Previous: page.Previous()}
	for _, target := range []string{result.Next, result.Previous} {
		if err := checkTarget(task, target); err != nil {
			return SubmitResult{}, fmt.Errorf("page %s/%s: %w", taskID, pageID, err)
		}
	}

	def, _ := task.Page(pageID)
	staged := app.Answers.Clone()
	res := staged.Save(def, page.Body())
	result.Changed, result.Invalidated = res.Changed, res.Invalidated

	candidate := *app
	candidate.Answers = staged
	candidate.UpdatedAt = e.now().UTC()
	if e.persister != nil {
		if err := e.persister.SaveAnswers(ctx, &candidate); err != nil {
			return SubmitResult{}, fmt.Errorf("persisting application %s: %w", app.ID, err)
		}
	}
	app.Answers = candidate.Answers
	app.UpdatedAt = candidate.UpdatedAt

	if res.Invalidated {
		log.Info("review invalidated by changed answers")
	}
	log.WithField("next", result.Next).Debug("page saved")
	if e.observer != nil {
		e.observer.Saved(taskID, pageID, res)
	}
	return result, nil
}

// checkTarget accepts "" or the id of a page in the task.
func checkTarget(task TaskDefinition, target string) error {
	if target == "" {
		return nil
	}
	if _, ok := task.Page(target); !ok {
		return fmt.Errorf("%w: %s is not a page of task %s", ErrInvalidTarget, target, task.ID())
	}
	return nil
}
