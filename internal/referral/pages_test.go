package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

func TestEveryPageReportsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		valid    form.Body
		required []string
	}{
		PagePersonalDetails: {
			valid:    form.Body{"name": "Ann Smith", "dateOfBirth": "1990-03-07"},
			required: []string{"name", "dateOfBirth"},
		},
		PageProbationPractitioner: {
			valid:    form.Body{"name": "Jo", "email": "jo@example.com", "phone": "0100"},
			required: []string{"name", "email", "phone"},
		},
		PageBackupContact: {
			valid:    form.Body{"name": "Jo", "email": "jo@example.com", "phone": "0100"},
			required: []string{"name", "email", "phone"},
		},
		PageOtherContacts: {
			valid: form.Body{"contacts": []any{map[string]any{"name": "Sam", "phone": "0300"}}},
		},
		PageDisability: {
			valid:    form.Body{"hasDisability": "yes", "disabilityDetail": "Wheelchair user"},
			required: []string{"hasDisability", "disabilityDetail"},
		},
		PageDisabilityAdjustments: {
			valid:    form.Body{"adjustments": "Step-free access"},
			required: []string{"adjustments"},
		},
		PageSubstanceMisuse: {
			valid:    form.Body{"substanceMisuse": "no"},
			required: []string{"substanceMisuse"},
		},
		PagePreviousStays: {
			valid:    form.Body{"previousStays": "no"},
			required: []string{"previousStays"},
		},
		PagePreviousStaysDetails: {
			valid:    form.Body{"accommodationTypes": []any{"sharedProperty"}, "lastStay": "2020-01-02", "details": "Two months"},
			required: []string{"accommodationTypes", "lastStay", "details"},
		},
		PageLicenceConditions: {
			valid:    form.Body{"conditions": []any{"curfew"}, "curfewDetail": "7pm to 7am"},
			required: []string{"conditions", "curfewDetail"},
		},
		PageRiskSummary: {
			valid:    form.Body{"confirmation": "confirmed"},
			required: []string{"confirmation"},
		},
		form.ReviewPageID: {
			valid:    form.Body{"reviewed": "1"},
			required: []string{"reviewed"},
		},
	}

	reg, err := NewRegistry(testReference())
	require.NoError(t, err)

	seen := 0
	for _, section := range reg.Sections() {
		for _, task := range section.Tasks() {
			for _, def := range task.Pages() {
				def := def
				tc, ok := tests[def.ID()]
				require.True(t, ok, "no cases for page %s", def.ID())
				seen++

				t.Run(def.ID(), func(t *testing.T) {
					t.Parallel()

					page, err := def.New(tc.valid.Clone(), namedApplication())
					require.NoError(t, err)
					assert.Equal(t, map[string]string{}, form.Validate(page))

					for _, field := range tc.required {
						missing := tc.valid.Clone()
						delete(missing, field)
						page, err := def.New(missing, namedApplication())
						require.NoError(t, err)
						assert.Contains(t, form.Validate(page), field, "missing %s", field)

						blank := tc.valid.Clone()
						blank[field] = "   "
						page, err = def.New(blank, namedApplication())
						require.NoError(t, err)
						assert.Contains(t, form.Validate(page), field, "blank %s", field)
					}
				})
			}
		}
	}
	assert.Equal(t, len(tests), seen)
}

func TestContactEmailFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		email   string
		wantErr bool
	}{
		"plain address":      {email: "jo@example.com"},
		"display name form":  {email: "Jo Bloggs <jo@example.com>", wantErr: true},
		"host without a dot": {email: "jo@localhost", wantErr: true},
		"missing at sign":    {email: "jo.example.com", wantErr: true},
		"surrounding spaces": {email: "  jo@example.com  "},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			page := newPage(t, TaskContactDetails, PageProbationPractitioner, form.Body{"name": "Jo", "phone": "0100", "email": tc.email}, nil)
			errs := form.Validate(page)
			if tc.wantErr {
				assert.Equal(t, map[string]string{
					"email": "Enter an email address in the correct format, like name@example.com",
				}, errs)
				return
			}
			assert.Empty(t, errs)
		})
	}
}

func TestOtherContactsRejectsNonList(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		contacts any
		wantErr  bool
	}{
		"absent":               {},
		"empty list":           {contacts: []any{}},
		"string value":         {contacts: "Sam, 0300", wantErr: true},
		"list of strings":      {contacts: []any{"Sam"}, wantErr: true},
		"record without phone": {contacts: []any{map[string]any{"name": "Sam"}}, wantErr: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			body := form.Body{}
			if tc.contacts != nil {
				body["contacts"] = tc.contacts
			}
			page := newPage(t, TaskContactDetails, PageOtherContacts, body, nil)
			errs := form.Validate(page)
			if tc.wantErr {
				assert.Contains(t, errs, "contacts")
				return
			}
			assert.Empty(t, errs)
		})
	}
}
