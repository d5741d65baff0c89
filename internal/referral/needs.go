package referral

import (
	"strings"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

type disability struct {
	body form.Body
	app  *form.Application
}

func disabilitySpec() form.PageSpec {
	return form.PageSpec{
		ID:     PageDisability,
		Title:  "Disability",
		Fields: []string{"hasDisability", "disabilityDetail"},
		New: func(body form.Body, app *form.Application) (form.Page, error) {
			return &disability{body: body, app: app}, nil
		},
	}
}

func (p *disability) Body() form.Body { return p.body }

func (p *disability) Errors() map[string]string {
	errs := form.CheckRules(p.body, form.Rules{"hasDisability": "required,oneof=yes no"}, map[string]string{
		"hasDisability": "Select whether they have a disability",
	})
	if p.body.String("hasDisability") == "yes" && strings.TrimSpace(p.body.String("disabilityDetail")) == "" {
		errs["disabilityDetail"] = "Enter details of the disability"
	}
	return errs
}

func (p *disability) Previous() string { return "" }

func (p *disability) Next() string {
	if p.body.String("hasDisability") == "yes" {
		return PageDisabilityAdjustments
	}
	return PageSubstanceMisuse
}

func (p *disability) Response() (form.Response, error) {
	name, err := personName(p.app)
	if err != nil {
		return nil, err
	}
	var r form.Response
	r.YesNo("Does "+name+" have a disability?", p.body, "hasDisability", "disabilityDetail")
	return r, nil
}

type disabilityAdjustments struct {
	body form.Body
}

func disabilityAdjustmentsSpec() form.PageSpec {
	return form.PageSpec{
		ID:     PageDisabilityAdjustments,
		Title:  "Adjustments needed for a disability",
		Fields: []string{"adjustments"},
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &disabilityAdjustments{body: body}, nil
		},
	}
}

func (p *disabilityAdjustments) Body() form.Body { return p.body }

func (p *disabilityAdjustments) Errors() map[string]string {
	return form.CheckRules(p.body, form.Rules{"adjustments": "required"}, map[string]string{
		"adjustments": "Describe the adjustments needed",
	})
}

func (p *disabilityAdjustments) Previous() string { return PageDisability }

func (p *disabilityAdjustments) Next() string { return PageSubstanceMisuse }

func (p *disabilityAdjustments) Response() (form.Response, error) {
	var r form.Response
	r.Text("Adjustments needed", p.body, "adjustments")
	return r, nil
}

type substanceMisuse struct {
	body form.Body
	app  *form.Application
}

func substanceMisuseSpec() form.PageSpec {
	return form.PageSpec{
		ID:     PageSubstanceMisuse,
		Title:  "Substance misuse",
		Fields: []string{"substanceMisuse"},
		New: func(body form.Body, app *form.Application) (form.Page, error) {
			return &substanceMisuse{body: body, app: app}, nil
		},
	}
}

func (p *substanceMisuse) Body() form.Body { return p.body }

func (p *substanceMisuse) Errors() map[string]string {
	return form.CheckRules(p.body, form.Rules{"substanceMisuse": "required,oneof=yes no dontKnow"}, map[string]string{
		"substanceMisuse": "Select whether they have a history of substance misuse",
	})
}

// Previous depends on the stored disability answer: the adjustments page
// is only part of the route when a disability was disclosed.
func (p *substanceMisuse) Previous() string {
	if p.app != nil {
		if body, ok := p.app.Answers.Get(TaskNeeds, PageDisability); ok && body.String("hasDisability") == "yes" {
			return PageDisabilityAdjustments
		}
	}
	return PageDisability
}

func (p *substanceMisuse) Next() string { return "" }

func (p *substanceMisuse) Response() (form.Response, error) {
	var r form.Response
	r.YesNoUnknown("Do they have a history of substance misuse?", p.body, "substanceMisuse")
	return r, nil
}
