package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reviewedAnswers() Answers {
	return Answers{
		"some-task":  {"other-page": {"q": "a"}},
		ReviewTaskID: {ReviewPageID: {"reviewed": "1"}},
	}
}

func TestSaveInvalidatesReview(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	page := mustPage(reg, "some-task", "some-page")

	answers := reviewedAnswers()
	res := answers.Save(page, Body{"foo": "bar"})

	assert.True(t, res.Changed)
	assert.True(t, res.Invalidated)
	assert.NotContains(t, answers, ReviewTaskID)
	assert.Equal(t, Body{"foo": "bar"}, answers["some-task"]["some-page"])
	assert.Equal(t, Body{"q": "a"}, answers["some-task"]["other-page"])

	// Saving the same body again is a no-op write.
	res = answers.Save(page, Body{"foo": "bar"})
	assert.False(t, res.Changed)
	assert.False(t, res.Invalidated)
	assert.NotContains(t, answers, ReviewTaskID)
	assert.Equal(t, Body{"foo": "bar"}, answers["some-task"]["some-page"])
}

func TestSaveUnchangedKeepsReview(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	page := mustPage(reg, "some-task", "other-page")

	answers := reviewedAnswers()
	res := answers.Save(page, Body{"q": "a"})

	assert.False(t, res.Changed)
	assert.Equal(t, reviewedAnswers(), answers)
}

func TestSaveReviewPageNeverRemovesItself(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	review := mustPage(reg, ReviewTaskID, ReviewPageID)

	answers := reviewedAnswers()
	answers[ReviewTaskID] = map[string]Body{}
	res := answers.Save(review, Body{"reviewed": "1"})

	assert.True(t, res.Changed)
	assert.False(t, res.Invalidated)
	assert.Equal(t, Body{"reviewed": "1"}, answers[ReviewTaskID][ReviewPageID])

	res = answers.Save(review, Body{"reviewed": "2"})
	assert.True(t, res.Changed)
	assert.Equal(t, Body{"reviewed": "2"}, answers[ReviewTaskID][ReviewPageID])
}

func TestSaveDropsUndeclaredFields(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	page := mustPage(reg, "some-task", "some-page")

	answers := Answers{}
	answers.Save(page, Body{"foo": "bar", "_csrf": "token", "extra": []any{"x"}})

	assert.Equal(t, Body{"foo": "bar"}, answers["some-task"]["some-page"])
}

func TestSaveWithoutStoredReview(t *testing.T) {
	t.Parallel()

	reg := testRegistry()
	page := mustPage(reg, "some-task", "some-page")

	answers := Answers{}
	res := answers.Save(page, Body{"foo": "bar"})

	assert.True(t, res.Changed)
	assert.False(t, res.Invalidated)
}

func TestShallowEqual(t *testing.T) {
	t.Parallel()

	nested := map[string]any{"level": "high"}

	tests := map[string]struct {
		a, b Body
		want bool
	}{
		"both empty":              {a: Body{}, b: Body{}, want: true},
		"nil and empty":           {a: nil, b: Body{}, want: true},
		"same scalars":            {a: Body{"a": "x", "n": float64(1)}, b: Body{"a": "x", "n": float64(1)}, want: true},
		"different scalar":        {a: Body{"a": "x"}, b: Body{"a": "y"}, want: false},
		"different key sets":      {a: Body{"a": "x"}, b: Body{"b": "x"}, want: false},
		"extra key":               {a: Body{"a": "x"}, b: Body{"a": "x", "b": "y"}, want: false},
		"equal lists":             {a: Body{"l": []any{"a", "b"}}, b: Body{"l": []string{"a", "b"}}, want: true},
		"lists of other length":   {a: Body{"l": []any{"a"}}, b: Body{"l": []any{"a", "b"}}, want: false},
		"lists in other order":    {a: Body{"l": []any{"a", "b"}}, b: Body{"l": []any{"b", "a"}}, want: false},
		"list against scalar":     {a: Body{"l": []any{"a"}}, b: Body{"l": "a"}, want: false},
		"number against string":   {a: Body{"n": float64(1)}, b: Body{"n": "1"}, want: false},
		"same nested record":      {a: Body{"r": nested}, b: Body{"r": nested}, want: true},
		"equal but distinct maps": {a: Body{"r": map[string]any{"level": "high"}}, b: Body{"r": map[string]any{"level": "high"}}, want: false},
		"nil values":              {a: Body{"a": nil}, b: Body{"a": nil}, want: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ShallowEqual(tc.a, tc.b))
			assert.Equal(t, tc.want, ShallowEqual(tc.b, tc.a))
		})
	}
}
