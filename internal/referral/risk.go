package referral

import (
	"context"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/reference"
)

const (
	riskHeading  = "Risk information"
	flagsHeading = "Risk flags"
)

type riskSummary struct {
	body form.Body
}

func riskSummarySpec(ref reference.Client) form.PageSpec {
	return form.PageSpec{
		ID:     PageRiskSummary,
		Title:  "Risk information",
		Fields: []string{"roshSummary", "riskFlags", "confirmation"},
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &riskSummary{body: body}, nil
		},
		Enrichments: []form.Enrichment{
			{
				Field: "roshSummary",
				Fetch: func(ctx context.Context, app *form.Application, _ form.Body) (any, error) {
					crn, err := crnOf(app)
					if err != nil {
						return nil, err
					}
					s, err := ref.RoshSummary(ctx, crn)
					if err != nil {
						return nil, err
					}
					return s.Fields(), nil
				},
				Default: func() any { return map[string]any{} },
			},
			{
				Field: "riskFlags",
				Fetch: func(ctx context.Context, app *form.Application, _ form.Body) (any, error) {
					crn, err := crnOf(app)
					if err != nil {
						return nil, err
					}
					return ref.RiskFlags(ctx, crn)
				},
				Default: func() any { return []string{} },
			},
		},
	}
}

func (p *riskSummary) Body() form.Body { return p.body }

func (p *riskSummary) Errors() map[string]string {
	return form.CheckRules(p.body, form.Rules{"confirmation": "required,eq=confirmed"}, map[string]string{
		"confirmation": "Confirm that you have reviewed the risk information",
	})
}

func (p *riskSummary) Previous() string { return "" }

func (p *riskSummary) Next() string { return "" }

func (p *riskSummary) Response() (form.Response, error) {
	var r form.Response
	r.Block(riskHeading, p.body["roshSummary"])
	r.Block(flagsHeading, p.body["riskFlags"])
	return r, nil
}
