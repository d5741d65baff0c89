package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// StatusError is returned for unexpected non-2xx responses.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reference: GET %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// HTTPClientConfig configures the HTTP reference client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond throttles outgoing calls. Zero disables throttling.
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// HTTPClient is a Client backed by the reference data REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTP reference client.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// Person fetches the person record for a CRN.
func (c *HTTPClient) Person(ctx context.Context, crn string) (Person, error) {
	var p Person
	if err := c.get(ctx, "/people/"+url.PathEscape(crn), &p); err != nil {
		return Person{}, err
	}
	return p, nil
}

// RoshSummary fetches the risk of serious harm summary for a CRN.
func (c *HTTPClient) RoshSummary(ctx context.Context, crn string) (RoshSummary, error) {
	var s RoshSummary
	if err := c.get(ctx, "/people/"+url.PathEscape(crn)+"/rosh", &s); err != nil {
		return RoshSummary{}, err
	}
	return s, nil
}

// RiskFlags fetches the active risk flags for a CRN.
func (c *HTTPClient) RiskFlags(ctx context.Context, crn string) ([]string, error) {
	var flags []string
	if err := c.get(ctx, "/people/"+url.PathEscape(crn)+"/risk-flags", &flags); err != nil {
		return nil, err
	}
	if flags == nil {
		flags = []string{}
	}
	return flags, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("reference: waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("reference: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reference: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("reference: decoding %s: %w", path, err)
	}
	return nil
}
