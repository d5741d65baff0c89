package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Enrichment merges reference data fetched from an external collaborator
// into one field of a resolved body.
type Enrichment struct {
	Field string
	Fetch func(ctx context.Context, app *Application, body Body) (any, error)
	// Default supplies the value used when Fetch reports ErrNotFound. A nil
	// Default leaves the field unset.
	Default func() any
}

// Resolve determines the body a page instance is constructed with.
//
// A non-empty override wins over a non-empty submission, which wins over
// the persisted answer, which wins over an empty body. Date parts are then
// normalised and the page's enrichments run. An enrichment whose fetch
// reports ErrNotFound degrades to its default and is logged at info level.
// Any other error aborts resolution and nothing fetched so far is merged.
func Resolve(ctx context.Context, log logrus.FieldLogger, def PageDefinition, app *Application, submitted, override Body) (Body, error) {
	var body Body
	switch {
	case len(override) > 0:
		body = override.Clone()
	case len(submitted) > 0:
		body = submitted.Clone()
	default:
		if app != nil {
			if stored, ok := app.Answers.Get(def.taskID, def.id); ok {
				body = stored.Clone()
			}
		}
		if body == nil {
			body = Body{}
		}
	}

	body = NormalizeDates(body, def.dateFields...)

	if len(def.enrichments) == 0 {
		return body, nil
	}

	fetched := make(map[string]any, len(def.enrichments))
	for _, e := range def.enrichments {
		value, err := e.Fetch(ctx, app, body)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("enriching %s/%s field %s: %w", def.taskID, def.id, e.Field, err)
			}
			log.WithFields(logrus.Fields{
				"task":  def.taskID,
				"page":  def.id,
				"field": e.Field,
			}).WithError(err).Info("reference data not found, using default")
			if e.Default == nil {
				continue
			}
			value = e.Default()
		}
		fetched[e.Field] = value
	}
	for field, value := range fetched {
		body[field] = value
	}
	return body, nil
}

const isoDate = "2006-01-02"

func datePartFields(field string) []string {
	return []string{field + "-day", field + "-month", field + "-year"}
}

// NormalizeDates returns a copy of body where each date field's day, month
// and year parts are folded into the canonical field as YYYY-MM-DD. When
// any part is present but the parts do not make a real date the canonical
// field is removed so validation reports it. When no part is present a
// valid canonical value is split back into parts for re-display.
func NormalizeDates(body Body, fields ...string) Body {
	if len(fields) == 0 {
		return body
	}
	out := body.Clone()
	for _, f := range fields {
		parts := datePartFields(f)
		day, month, year := partString(out[parts[0]]), partString(out[parts[1]]), partString(out[parts[2]])

		if day == "" && month == "" && year == "" {
			if t, err := time.Parse(isoDate, out.String(f)); err == nil {
				out[parts[0]] = strconv.Itoa(t.Day())
				out[parts[1]] = strconv.Itoa(int(t.Month()))
				out[parts[2]] = strconv.Itoa(t.Year())
			}
			continue
		}

		if t, ok := dateFromParts(day, month, year); ok {
			out[f] = t.Format(isoDate)
		} else {
			delete(out, f)
		}
	}
	return out
}

// ValidDate reports whether the canonical date field holds a real date.
func ValidDate(body Body, field string) bool {
	_, err := time.Parse(isoDate, body.String(field))
	return err == nil
}

func dateFromParts(day, month, year string) (time.Time, bool) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, false
	}
	if len(year) != 4 {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 31 February into March.
	if t.Day() != d || int(t.Month()) != m || t.Year() != y {
		return time.Time{}, false
	}
	return t, true
}

func partString(v any) string {
	switch p := v.(type) {
	case string:
		return strings.TrimSpace(p)
	case float64:
		return strconv.Itoa(int(p))
	case int:
		return strconv.Itoa(p)
	default:
		return ""
	}
}
