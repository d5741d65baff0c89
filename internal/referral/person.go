package referral

import (
	"context"
	"strings"
	"time"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/reference"
)

// personName returns the name confirmed on the personal details page.
// Questions that mention the person cannot be built without it.
func personName(app *form.Application) (string, error) {
	if app != nil {
		if body, ok := app.Answers.Get(TaskPersonalDetails, PagePersonalDetails); ok {
			if name := strings.TrimSpace(body.String("name")); name != "" {
				return name, nil
			}
		}
	}
	return "", form.NewSessionDataError("name not found: %s/%s has not been completed", TaskPersonalDetails, PagePersonalDetails)
}

// crnOf returns the application's case reference number. An application
// without one has no reference data to look up.
func crnOf(app *form.Application) (string, error) {
	if app == nil || app.CRN == "" {
		return "", form.ErrNotFound
	}
	return app.CRN, nil
}

type personalDetails struct {
	body form.Body
}

func personalDetailsSpec(ref reference.Client) form.PageSpec {
	return form.PageSpec{
		ID:         PagePersonalDetails,
		Title:      "Confirm the person's details",
		Fields:     []string{"name", "referenceName"},
		DateFields: []string{"dateOfBirth"},
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &personalDetails{body: body}, nil
		},
		Enrichments: []form.Enrichment{
			{
				Field: "referenceName",
				Fetch: func(ctx context.Context, app *form.Application, _ form.Body) (any, error) {
					crn, err := crnOf(app)
					if err != nil {
						return nil, err
					}
					p, err := ref.Person(ctx, crn)
					if err != nil {
						return nil, err
					}
					return p.Name, nil
				},
				Default: func() any { return "" },
			},
		},
	}
}

func (p *personalDetails) Body() form.Body { return p.body }

func (p *personalDetails) Errors() map[string]string {
	errs := form.CheckRules(p.body, form.Rules{"name": "required"}, map[string]string{
		"name": "Enter the person's name",
	})
	if !form.ValidDate(p.body, "dateOfBirth") {
		errs["dateOfBirth"] = "Enter a valid date of birth"
	} else if dob := p.body.String("dateOfBirth"); dob >= time.Now().UTC().Format("2006-01-02") {
		errs["dateOfBirth"] = "Date of birth must be in the past"
	}
	return errs
}

func (p *personalDetails) Previous() string { return "" }

func (p *personalDetails) Next() string { return "" }

func (p *personalDetails) Response() (form.Response, error) {
	var r form.Response
	r.Text("Name", p.body, "name")
	r.Text("Date of birth", p.body, "dateOfBirth")
	return r, nil
}
