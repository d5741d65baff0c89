package referral

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/reference"
)

func testReference() *reference.Static {
	return &reference.Static{
		People: map[string]reference.Person{"X123": {CRN: "X123", Name: "Ann Smith"}},
		Rosh: map[string]reference.RoshSummary{"X123": {
			OverallRisk: "High", RiskToChildren: "Low", RiskToPublic: "High", RiskToKnownAdult: "Medium", RiskToStaff: "Low",
		}},
		Flags: map[string][]string{"X123": {"Hate crime"}},
	}
}

func newPage(t *testing.T, taskID, pageID string, body form.Body, app *form.Application) form.Page {
	t.Helper()
	reg, err := NewRegistry(testReference())
	require.NoError(t, err)
	def, err := reg.Page(taskID, pageID)
	require.NoError(t, err)
	page, err := def.New(body, app)
	require.NoError(t, err)
	return page
}

func namedApplication() *form.Application {
	return &form.Application{
		ID:  "app-1",
		CRN: "X123",
		Answers: form.Answers{
			TaskPersonalDetails: {PagePersonalDetails: {"name": "Ann Smith", "dateOfBirth": "1990-03-07"}},
		},
	}
}

func TestRegistryContainsEveryTask(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(testReference())
	require.NoError(t, err)

	assert.Equal(t, []string{
		TaskPersonalDetails,
		TaskContactDetails,
		TaskNeeds,
		TaskAccommodationHistory,
		TaskLicenceConditions,
		TaskRiskInformation,
		form.ReviewTaskID,
	}, reg.TaskIDs())

	_, err = reg.Page(form.ReviewTaskID, form.ReviewPageID)
	require.NoError(t, err)
}

func TestPreviousStaysNavigation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		answer   string
		wantNext string
	}{
		"yes goes to details": {answer: "yes", wantNext: PagePreviousStaysDetails},
		"no ends the task":    {answer: "no", wantNext: ""},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			page := newPage(t, TaskAccommodationHistory, PagePreviousStays, form.Body{"previousStays": tc.answer}, namedApplication())
			assert.Empty(t, form.Validate(page))
			assert.Equal(t, tc.wantNext, page.Next())
			assert.Equal(t, tc.wantNext, page.Next())
		})
	}
}

func TestSubstanceMisusePreviousDependsOnDisability(t *testing.T) {
	t.Parallel()

	app := namedApplication()
	page := newPage(t, TaskNeeds, PageSubstanceMisuse, form.Body{"substanceMisuse": "dontKnow"}, app)
	assert.Equal(t, PageDisability, page.Previous())

	app.Answers[TaskNeeds] = map[string]form.Body{PageDisability: {"hasDisability": "yes", "disabilityDetail": "Hearing"}}
	page = newPage(t, TaskNeeds, PageSubstanceMisuse, form.Body{"substanceMisuse": "dontKnow"}, app)
	assert.Equal(t, PageDisabilityAdjustments, page.Previous())

	resp, err := page.Response()
	require.NoError(t, err)
	assert.Equal(t, form.Response{{Question: "Do they have a history of substance misuse?", Answer: "Don't know"}}, resp)
}

func TestDisability(t *testing.T) {
	t.Parallel()

	page := newPage(t, TaskNeeds, PageDisability, form.Body{"hasDisability": "yes"}, namedApplication())
	assert.Equal(t, map[string]string{"disabilityDetail": "Enter details of the disability"}, form.Validate(page))
	assert.Equal(t, PageDisabilityAdjustments, page.Next())

	page = newPage(t, TaskNeeds, PageDisability, form.Body{"hasDisability": "yes", "disabilityDetail": "Wheelchair user"}, namedApplication())
	assert.Empty(t, form.Validate(page))
	resp, err := page.Response()
	require.NoError(t, err)
	assert.Equal(t, form.Response{{Question: "Does Ann Smith have a disability?", Answer: "Yes - Wheelchair user"}}, resp)

	page = newPage(t, TaskNeeds, PageDisability, form.Body{"hasDisability": "no"}, namedApplication())
	assert.Equal(t, PageSubstanceMisuse, page.Next())
}

func TestQuestionsNeedPersonName(t *testing.T) {
	t.Parallel()

	page := newPage(t, TaskNeeds, PageDisability, form.Body{"hasDisability": "no"}, &form.Application{ID: "a"})

	_, err := page.Response()
	var serr *form.SessionDataError
	require.ErrorAs(t, err, &serr)
}

func TestLicenceConditions(t *testing.T) {
	t.Parallel()

	body := form.Body{
		"conditions":          []any{"curfew", "exclusionZone"},
		"curfewDetail":        "x",
		"exclusionZoneDetail": "y",
	}
	page := newPage(t, TaskLicenceConditions, PageLicenceConditions, body, namedApplication())

	assert.Empty(t, form.Validate(page))
	resp, err := page.Response()
	require.NoError(t, err)
	assert.Equal(t, form.Response{
		{Question: "Curfew", Answer: "x"},
		{Question: "Exclusion zone", Answer: "y"},
	}, resp)

	page = newPage(t, TaskLicenceConditions, PageLicenceConditions, form.Body{"conditions": []any{"curfew", "unknown"}}, nil)
	assert.Contains(t, form.Validate(page), "conditions")

	page = newPage(t, TaskLicenceConditions, PageLicenceConditions, form.Body{"conditions": "curfew"}, nil)
	assert.Equal(t, map[string]string{"curfewDetail": "Enter details of the curfew condition"}, form.Validate(page))
}

func TestContactPagesShareValidation(t *testing.T) {
	t.Parallel()

	for _, pageID := range []string{PageProbationPractitioner, PageBackupContact} {
		page := newPage(t, TaskContactDetails, pageID, form.Body{"name": "Jo", "phone": "0100", "email": "nope"}, nil)
		assert.Equal(t, map[string]string{
			"email": "Enter an email address in the correct format, like name@example.com",
		}, form.Validate(page), pageID)

		page = newPage(t, TaskContactDetails, pageID, form.Body{}, nil)
		assert.Len(t, form.Validate(page), 3, pageID)
	}

	page := newPage(t, TaskContactDetails, PageBackupContact, form.Body{"name": "Jo", "phone": "0100", "email": "jo@example.com"}, nil)
	assert.Equal(t, PageProbationPractitioner, page.Previous())
	assert.Equal(t, PageOtherContacts, page.Next())
	resp, err := page.Response()
	require.NoError(t, err)
	assert.Equal(t, form.Response{{Question: "Backup contact", Answer: "Jo, jo@example.com, 0100"}}, resp)
}

func TestOtherContactsProjectsRecords(t *testing.T) {
	t.Parallel()

	body := form.Body{"contacts": []any{
		map[string]any{"name": "Sam", "relationship": "Sister", "phone": "0300"},
	}}
	page := newPage(t, TaskContactDetails, PageOtherContacts, body, nil)
	assert.Empty(t, form.Validate(page))

	resp, err := page.Response()
	require.NoError(t, err)
	records, ok := resp.Get("Other contacts")
	require.True(t, ok)
	assert.Equal(t, []form.Response{{
		{Question: "Name", Answer: "Sam"},
		{Question: "Relationship", Answer: "Sister"},
		{Question: "Phone number", Answer: "0300"},
	}}, records)

	page = newPage(t, TaskContactDetails, PageOtherContacts, form.Body{"contacts": []any{map[string]any{"name": "Sam"}}}, nil)
	assert.Equal(t, map[string]string{"contacts": "Enter a name and phone number for contact 1"}, form.Validate(page))
}

func TestPersonalDetailsNormalisesDateOfBirth(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(testReference())
	require.NoError(t, err)
	engine := form.NewEngine(reg)
	app := &form.Application{ID: "a", CRN: "X123"}

	_, err = engine.Submit(context.Background(), app, TaskPersonalDetails, PagePersonalDetails, form.Body{
		"name": "Ann Smith", "dateOfBirth-day": "7", "dateOfBirth-month": "3", "dateOfBirth-year": "1990",
	})
	require.NoError(t, err)

	stored := app.Answers[TaskPersonalDetails][PagePersonalDetails]
	assert.Equal(t, "1990-03-07", stored["dateOfBirth"])
	assert.Equal(t, "Ann Smith", stored["referenceName"])

	_, err = engine.Submit(context.Background(), app, TaskPersonalDetails, PagePersonalDetails, form.Body{
		"name": "Ann Smith", "dateOfBirth-day": "30", "dateOfBirth-month": "2", "dateOfBirth-year": "1990",
	})
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Enter a valid date of birth", verr.Errors["dateOfBirth"])
}

func TestBlankNameLeavesPersonalDetailsIncomplete(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(testReference())
	require.NoError(t, err)
	engine := form.NewEngine(reg)
	app := &form.Application{ID: "a", CRN: "X123"}

	_, err = engine.Submit(context.Background(), app, TaskPersonalDetails, PagePersonalDetails, form.Body{
		"name": "   ", "dateOfBirth-day": "7", "dateOfBirth-month": "3", "dateOfBirth-year": "1990",
	})
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Enter the person's name", verr.Errors["name"])

	done, err := engine.Completed(app, TaskPersonalDetails)
	require.NoError(t, err)
	assert.False(t, done)
}
