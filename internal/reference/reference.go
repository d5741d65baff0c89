// Package reference fetches person and risk reference data used to enrich
// application pages.
package reference

import (
	"context"
	"fmt"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

// ErrNotFound reports that the reference service holds no record. It
// matches form.ErrNotFound so page enrichment degrades instead of failing.
var ErrNotFound = fmt.Errorf("reference: %w", form.ErrNotFound)

// Person is the reference record for a person on probation.
type Person struct {
	CRN         string `json:"crn"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Sex         string `json:"sex,omitempty"`
}

// RoshSummary is the risk of serious harm summary from the offender
// assessment system.
type RoshSummary struct {
	OverallRisk      string `json:"overallRisk"`
	RiskToChildren   string `json:"riskToChildren"`
	RiskToPublic     string `json:"riskToPublic"`
	RiskToKnownAdult string `json:"riskToKnownAdult"`
	RiskToStaff      string `json:"riskToStaff"`
	LastUpdated      string `json:"lastUpdated,omitempty"`
}

// Fields returns the summary as a JSON-compatible map so it can be stored
// in a page body and projected verbatim.
func (s RoshSummary) Fields() map[string]any {
	out := map[string]any{
		"overallRisk":      s.OverallRisk,
		"riskToChildren":   s.RiskToChildren,
		"riskToPublic":     s.RiskToPublic,
		"riskToKnownAdult": s.RiskToKnownAdult,
		"riskToStaff":      s.RiskToStaff,
	}
	if s.LastUpdated != "" {
		out["lastUpdated"] = s.LastUpdated
	}
	return out
}

// Client looks up reference data by case reference number.
type Client interface {
	Person(ctx context.Context, crn string) (Person, error)
	RoshSummary(ctx context.Context, crn string) (RoshSummary, error)
	RiskFlags(ctx context.Context, crn string) ([]string, error)
}
