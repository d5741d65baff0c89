package referral

import (
	"github.com/temporary-accommodation/tasklist/internal/form"
)

type previousStays struct {
	body form.Body
	app  *form.Application
}

func previousStaysSpec() form.PageSpec {
	return form.PageSpec{
		ID:     PagePreviousStays,
		Title:  "Previous stays in temporary accommodation",
		Fields: []string{"previousStays"},
		New: func(body form.Body, app *form.Application) (form.Page, error) {
			return &previousStays{body: body, app: app}, nil
		},
	}
}

func (p *previousStays) Body() form.Body { return p.body }

func (p *previousStays) Errors() map[string]string {
	return form.CheckRules(p.body, form.Rules{"previousStays": "required,oneof=yes no"}, map[string]string{
		"previousStays": "Select whether they have stayed in temporary accommodation before",
	})
}

func (p *previousStays) Previous() string { return "" }

func (p *previousStays) Next() string {
	if p.body.String("previousStays") == "yes" {
		return PagePreviousStaysDetails
	}
	return ""
}

func (p *previousStays) Response() (form.Response, error) {
	name, err := personName(p.app)
	if err != nil {
		return nil, err
	}
	var r form.Response
	r.YesNo("Has "+name+" stayed in temporary accommodation before?", p.body, "previousStays", "")
	return r, nil
}

// Accommodation types offered for previous stays.
var accommodationTypes = []form.Choice{
	{Value: "sharedProperty", Label: "Shared property"},
	{Value: "singleOccupancy", Label: "Single occupancy"},
	{Value: "approvedPremises", Label: "Approved premises"},
}

type previousStaysDetails struct {
	body form.Body
}

func previousStaysDetailsSpec() form.PageSpec {
	return form.PageSpec{
		ID:         PagePreviousStaysDetails,
		Title:      "Previous stay details",
		Fields:     []string{"accommodationTypes", "details"},
		DateFields: []string{"lastStay"},
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &previousStaysDetails{body: body}, nil
		},
	}
}

func (p *previousStaysDetails) Body() form.Body { return p.body }

func (p *previousStaysDetails) Errors() map[string]string {
	errs := form.CheckRules(p.body, form.Rules{"details": "required"}, map[string]string{
		"details": "Enter details of their previous stays",
	})
	if !validSelection(p.body.Strings("accommodationTypes"), accommodationTypes) {
		errs["accommodationTypes"] = "Select the types of accommodation they stayed in"
	}
	if !form.ValidDate(p.body, "lastStay") {
		errs["lastStay"] = "Enter a valid date for their last stay"
	}
	return errs
}

func (p *previousStaysDetails) Previous() string { return PagePreviousStays }

func (p *previousStaysDetails) Next() string { return "" }

func (p *previousStaysDetails) Response() (form.Response, error) {
	var r form.Response
	r.MultiSelect(p.body, "accommodationTypes", accommodationTypes)
	r.Text("Date of last stay", p.body, "lastStay")
	r.Text("Details of previous stays", p.body, "details")
	return r, nil
}

// validSelection reports whether at least one value is selected and every
// selected value is one of the options.
func validSelection(selected []string, options []form.Choice) bool {
	if len(selected) == 0 {
		return false
	}
	known := make(map[string]bool, len(options))
	for _, o := range options {
		known[o.Value] = true
	}
	for _, v := range selected {
		if !known[v] {
			return false
		}
	}
	return true
}
