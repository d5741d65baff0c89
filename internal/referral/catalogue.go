// Package referral defines the accommodation referral form: its sections,
// tasks and pages, built on the form engine.
package referral

import (
	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/reference"
)

// Task ids.
const (
	TaskPersonalDetails      = "personal-details"
	TaskContactDetails       = "contact-details"
	TaskNeeds                = "needs"
	TaskAccommodationHistory = "accommodation-history"
	TaskLicenceConditions    = "licence-conditions"
	TaskRiskInformation      = "risk-information"
)

// Page ids.
const (
	PagePersonalDetails       = "personal-details"
	PageProbationPractitioner = "probation-practitioner"
	PageBackupContact         = "backup-contact"
	PageOtherContacts         = "other-contacts"
	PageDisability            = "disability"
	PageDisabilityAdjustments = "disability-adjustments"
	PageSubstanceMisuse       = "substance-misuse"
	PagePreviousStays         = "previous-stays"
	PagePreviousStaysDetails  = "previous-stays-details"
	PageLicenceConditions     = "additional-licence-conditions"
	PageRiskSummary           = "risk-summary"
)

// Sections declares the referral form. Enrichment steps look reference
// data up through ref.
func Sections(ref reference.Client) []form.SectionSpec {
	return []form.SectionSpec{
		{
			Title: "Confirm details",
			Tasks: []form.TaskSpec{
				{
					ID:         TaskPersonalDetails,
					Title:      "Confirm the person's details",
					ActionText: "Confirm details",
					Pages:      []form.PageSpec{personalDetailsSpec(ref)},
				},
			},
		},
		{
			Title: "About the person",
			Tasks: []form.TaskSpec{
				{
					ID:         TaskContactDetails,
					Title:      "Add contact details",
					ActionText: "Add contact details",
					Pages: []form.PageSpec{
						contactSpec(contactConfig{
							id:       PageProbationPractitioner,
							title:    "Probation practitioner details",
							next:     PageBackupContact,
							question: "Probation practitioner",
						}),
						contactSpec(contactConfig{
							id:       PageBackupContact,
							title:    "Backup contact details",
							previous: PageProbationPractitioner,
							next:     PageOtherContacts,
							question: "Backup contact",
						}),
						otherContactsSpec(),
					},
				},
				{
					ID:         TaskNeeds,
					Title:      "Add health and support needs",
					ActionText: "Add needs",
					Pages:      []form.PageSpec{disabilitySpec(), disabilityAdjustmentsSpec(), substanceMisuseSpec()},
				},
				{
					ID:         TaskAccommodationHistory,
					Title:      "Add accommodation history",
					ActionText: "Add history",
					Pages:      []form.PageSpec{previousStaysSpec(), previousStaysDetailsSpec()},
				},
				{
					ID:         TaskLicenceConditions,
					Title:      "Add licence conditions",
					ActionText: "Add licence conditions",
					Pages:      []form.PageSpec{licenceConditionsSpec()},
				},
				{
					ID:         TaskRiskInformation,
					Title:      "Review risk information",
					ActionText: "Review risk",
					Pages:      []form.PageSpec{riskSummarySpec(ref)},
				},
			},
		},
		{
			Title: "Check your answers",
			Tasks: []form.TaskSpec{
				{
					ID:         form.ReviewTaskID,
					Title:      "Check your answers",
					ActionText: "Check answers",
					Pages:      []form.PageSpec{reviewSpec()},
				},
			},
		},
	}
}

// NewRegistry builds the referral form registry.
func NewRegistry(ref reference.Client) (*form.Registry, error) {
	return form.Build(Sections(ref)...)
}
