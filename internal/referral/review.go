package referral

import (
	"github.com/temporary-accommodation/tasklist/internal/form"
)

type review struct {
	body form.Body
}

func reviewSpec() form.PageSpec {
	return form.PageSpec{
		ID:     form.ReviewPageID,
		Title:  "Check your answers",
		Fields: []string{"reviewed"},
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &review{body: body}, nil
		},
	}
}

func (p *review) Body() form.Body { return p.body }

func (p *review) Errors() map[string]string {
	return form.CheckRules(p.body, form.Rules{"reviewed": "required,eq=1"}, map[string]string{
		"reviewed": "You must confirm the information provided is complete, accurate and up to date",
	})
}

func (p *review) Previous() string { return "" }

func (p *review) Next() string { return "" }

// Response is empty: the review page summarises the other tasks rather
// than contributing answers of its own.
func (p *review) Response() (form.Response, error) {
	return form.Response{}, nil
}
