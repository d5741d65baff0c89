package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownTask is returned when a task id is not registered.
	ErrUnknownTask = errors.New("form: unknown task")
	// ErrUnknownPage is returned when a page id is not registered in its task.
	ErrUnknownPage = errors.New("form: unknown page")
	// ErrDuplicateTask is returned when a task id is registered twice.
	ErrDuplicateTask = errors.New("form: duplicate task")
	// ErrDuplicatePage is returned when a page id appears twice within a task.
	ErrDuplicatePage = errors.New("form: duplicate page")
	// ErrInvalidTarget is returned when a page navigates to a page that is
	// not part of its task.
	ErrInvalidTarget = errors.New("form: invalid navigation target")
	// ErrNotFound is the "not found" condition a reference data fetch
	// reports. Enrichment degrades to its default value when it sees it.
	ErrNotFound = errors.New("form: reference data not found")
)

// ValidationError carries the field errors of a rejected page submission.
// Body is the submitted body, handed back so the page can be shown again
// with the user's input as override.
type ValidationError struct {
	TaskID string
	PageID string
	Errors map[string]string
	Body   Body
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("form: %s/%s has errors in %s", e.TaskID, e.PageID, strings.Join(fields, ", "))
}

// SessionDataError reports a broken precondition: something needed an
// answer from a task that was never completed.
type SessionDataError struct {
	Message string
}

func (e *SessionDataError) Error() string {
	return "form: session data error: " + e.Message
}

// NewSessionDataError builds a SessionDataError from a format string.
func NewSessionDataError(format string, args ...any) *SessionDataError {
	return &SessionDataError{Message: fmt.Sprintf(format, args...)}
}
