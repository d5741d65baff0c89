package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ResponseEntry is one question and its human-readable answer. Answer is a
// string, a []Response for repeated records, or collaborator-shaped data
// passed through verbatim.
type ResponseEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   any    `json:"answer" yaml:"answer"`
}

// Response is an ordered question -> answer map.
type Response []ResponseEntry

// Set adds an entry, replacing the answer in place when the question is
// already present.
func (r *Response) Set(question string, answer any) {
	for i := range *r {
		if (*r)[i].Question == question {
			(*r)[i].Answer = answer
			return
		}
	}
	*r = append(*r, ResponseEntry{Question: question, Answer: answer})
}

// Get returns the answer for a question.
func (r Response) Get(question string) (any, bool) {
	for _, e := range r {
		if e.Question == question {
			return e.Answer, true
		}
	}
	return nil, false
}

// Questions returns the questions in order.
func (r Response) Questions() []string {
	out := make([]string, len(r))
	for i, e := range r {
		out[i] = e.Question
	}
	return out
}

// MarshalJSON encodes the response as a JSON object whose keys keep their
// order.
func (r Response) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Question)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Answer)
		if err != nil {
			return nil, fmt.Errorf("encoding answer to %q: %w", e.Question, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Text adds a plain string or number answer.
func (r *Response) Text(question string, body Body, field string) {
	r.Set(question, scalarText(body[field]))
}

// YesNo adds a yes/no answer. A "yes" with a non-empty detail field is
// shown as "Yes - <detail>".
func (r *Response) YesNo(question string, body Body, field, detailField string) {
	switch body.String(field) {
	case "yes":
		if detail := body.String(detailField); detailField != "" && detail != "" {
			r.Set(question, "Yes - "+detail)
			return
		}
		r.Set(question, "Yes")
	case "no":
		r.Set(question, "No")
	default:
		r.Set(question, "")
	}
}

// YesNoUnknown adds a yes/no/don't know answer.
func (r *Response) YesNoUnknown(question string, body Body, field string) {
	switch body.String(field) {
	case "yes":
		r.Set(question, "Yes")
	case "no":
		r.Set(question, "No")
	case "dontKnow":
		r.Set(question, "Don't know")
	default:
		r.Set(question, "")
	}
}

// Choice is one choice of a multi-select field.
type Choice struct {
	Value string
	Label string
	// DetailField optionally names the body field holding details for the
	// option.
	DetailField string
}

// MultiSelect adds one entry per selected option, in option table order.
// The entry's answer is the option's detail, or "Yes" when the option has
// no detail field.
func (r *Response) MultiSelect(body Body, field string, options []Choice) {
	selected := make(map[string]bool)
	for _, v := range body.Strings(field) {
		selected[v] = true
	}
	for _, o := range options {
		if !selected[o.Value] {
			continue
		}
		if o.DetailField == "" {
			r.Set(o.Label, "Yes")
			continue
		}
		r.Set(o.Label, body.String(o.DetailField))
	}
}

// Records adds a repeated-record field as an ordered list of sub-responses.
func (r *Response) Records(question string, records []Body, project func(Body) Response) {
	out := make([]Response, 0, len(records))
	for _, rec := range records {
		out = append(out, project(rec))
	}
	r.Set(question, out)
}

// Block adds already-shaped data under a fixed heading, unchanged.
func (r *Response) Block(heading string, data any) {
	r.Set(heading, data)
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}
