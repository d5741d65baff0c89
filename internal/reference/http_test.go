package reference

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

func newTestServer(t *testing.T) *HTTPClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/people/X123/rosh", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"overallRisk":"High","riskToChildren":"Low","riskToPublic":"High","riskToKnownAdult":"Medium","riskToStaff":"Low"}`))
	})
	mux.HandleFunc("/people/X123/risk-flags", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["Hate crime","MAPPA"]`))
	})
	mux.HandleFunc("/people/X123", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"crn":"X123","name":"Ann Smith","dateOfBirth":"1990-03-07"}`))
	})
	mux.HandleFunc("/people/BROKEN", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewHTTPClient(HTTPClientConfig{BaseURL: srv.URL + "/", RequestsPerSecond: 100})
}

func TestHTTPClient(t *testing.T) {
	t.Parallel()

	client := newTestServer(t)
	ctx := context.Background()

	person, err := client.Person(ctx, "X123")
	require.NoError(t, err)
	assert.Equal(t, Person{CRN: "X123", Name: "Ann Smith", DateOfBirth: "1990-03-07"}, person)

	rosh, err := client.RoshSummary(ctx, "X123")
	require.NoError(t, err)
	assert.Equal(t, "High", rosh.OverallRisk)
	assert.Equal(t, "Medium", rosh.Fields()["riskToKnownAdult"])

	flags, err := client.RiskFlags(ctx, "X123")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hate crime", "MAPPA"}, flags)
}

func TestHTTPClientErrors(t *testing.T) {
	t.Parallel()

	client := newTestServer(t)
	ctx := context.Background()

	_, err := client.Person(ctx, "UNKNOWN")
	require.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, form.ErrNotFound)

	_, err = client.Person(ctx, "BROKEN")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.False(t, errors.Is(err, form.ErrNotFound))
}

func TestHTTPClientHonoursContext(t *testing.T) {
	t.Parallel()

	client := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.RiskFlags(ctx, "X123")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	s := &Static{Flags: map[string][]string{"X1": {"MAPPA"}}}

	flags, err := s.RiskFlags(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, []string{"MAPPA"}, flags)

	_, err = s.Person(context.Background(), "X1")
	assert.ErrorIs(t, err, form.ErrNotFound)
}
