package form

import "time"

// Body holds the answer fields of a single page.
type Body map[string]any

// Answers is the persisted answer store: task id -> page id -> body.
type Answers map[string]map[string]Body

// Application is one in-progress referral being completed.
type Application struct {
	ID        string    `json:"id" yaml:"id"`
	CRN       string    `json:"crn" yaml:"crn"`
	Answers   Answers   `json:"answers" yaml:"answers"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`
}

// String returns the field as a string, or "" when absent or not a string.
func (b Body) String(field string) string {
	s, _ := b[field].(string)
	return s
}

// Strings returns the field as a string slice. A single string value is
// treated as a one-element selection, which is how single checkbox
// submissions arrive.
func (b Body) Strings(field string) []string {
	switch v := b[field].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Records returns a repeated-record field as a list of bodies.
func (b Body) Records(field string) []Body {
	switch v := b[field].(type) {
	case []Body:
		return v
	case []map[string]any:
		out := make([]Body, len(v))
		for i, r := range v {
			out[i] = Body(r)
		}
		return out
	case []any:
		out := make([]Body, 0, len(v))
		for _, item := range v {
			switch r := item.(type) {
			case map[string]any:
				out = append(out, Body(r))
			case Body:
				out = append(out, r)
			}
		}
		return out
	default:
		return nil
	}
}

// IsRecordList reports whether the field is absent or holds a list whose
// every item is a record.
func (b Body) IsRecordList(field string) bool {
	switch v := b[field].(type) {
	case nil, []Body, []map[string]any:
		return true
	case []any:
		for _, item := range v {
			switch item.(type) {
			case map[string]any, Body:
			default:
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a one-level copy of the body. Slice values are copied so a
// later write to the clone cannot change the original.
func (b Body) Clone() Body {
	if b == nil {
		return Body{}
	}
	out := make(Body, len(b))
	for k, v := range b {
		switch s := v.(type) {
		case []any:
			out[k] = append([]any(nil), s...)
		case []string:
			out[k] = append([]string(nil), s...)
		default:
			out[k] = v
		}
	}
	return out
}

// Get returns the stored body for a page, if any.
func (a Answers) Get(taskID, pageID string) (Body, bool) {
	pages, ok := a[taskID]
	if !ok {
		return nil, false
	}
	body, ok := pages[pageID]
	return body, ok
}

// Clone copies the store down to page level. Bodies are cloned as well.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for taskID, pages := range a {
		cp := make(map[string]Body, len(pages))
		for pageID, body := range pages {
			cp[pageID] = body.Clone()
		}
		out[taskID] = cp
	}
	return out
}
