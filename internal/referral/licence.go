package referral

import (
	"strings"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

// LicenceConditionOptions are the additional licence conditions a referral
// can record, each with its own details field.
var LicenceConditionOptions = []form.Choice{
	{Value: "curfew", Label: "Curfew", DetailField: "curfewDetail"},
	{Value: "exclusionZone", Label: "Exclusion zone", DetailField: "exclusionZoneDetail"},
	{Value: "nonAssociation", Label: "Non-association", DetailField: "nonAssociationDetail"},
	{Value: "residencyRequirement", Label: "Residency requirement", DetailField: "residencyRequirementDetail"},
}

type licenceConditions struct {
	body form.Body
}

func licenceConditionsSpec() form.PageSpec {
	fields := []string{"conditions"}
	for _, o := range LicenceConditionOptions {
		fields = append(fields, o.DetailField)
	}
	return form.PageSpec{
		ID:     PageLicenceConditions,
		Title:  "Additional licence conditions",
		Fields: fields,
		New: func(body form.Body, _ *form.Application) (form.Page, error) {
			return &licenceConditions{body: body}, nil
		},
	}
}

func (p *licenceConditions) Body() form.Body { return p.body }

func (p *licenceConditions) Errors() map[string]string {
	errs := map[string]string{}
	selected := p.body.Strings("conditions")
	if !validSelection(selected, LicenceConditionOptions) {
		errs["conditions"] = "Select the additional licence conditions"
		return errs
	}
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}
	for _, o := range LicenceConditionOptions {
		if chosen[o.Value] && strings.TrimSpace(p.body.String(o.DetailField)) == "" {
			errs[o.DetailField] = "Enter details of the " + strings.ToLower(o.Label) + " condition"
		}
	}
	return errs
}

func (p *licenceConditions) Previous() string { return "" }

func (p *licenceConditions) Next() string { return "" }

func (p *licenceConditions) Response() (form.Response, error) {
	var r form.Response
	r.MultiSelect(p.body, "conditions", LicenceConditionOptions)
	return r, nil
}
