package config

import (
	"fmt"
	"strings"
)

// OutputFormat selects how CLI commands render structured results.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

var validOutputFormats = map[OutputFormat]bool{
	OutputText: true,
	OutputYAML: true,
	OutputJSON: true,
}

// ValidOutputFormatNames returns the accepted format names for display.
func ValidOutputFormatNames() []string {
	return []string{"text", "yaml", "json"}
}

// NormalizeOutputFormat normalizes and validates a format string, returning
// the canonical value. Returns OutputText if empty.
func NormalizeOutputFormat(format string) (OutputFormat, error) {
	if format == "" {
		return OutputText, nil
	}
	normalized := OutputFormat(strings.ToLower(strings.TrimSpace(format)))
	if !validOutputFormats[normalized] {
		return "", fmt.Errorf(
			"invalid output format %q; valid options: %s",
			format,
			strings.Join(ValidOutputFormatNames(), ", "),
		)
	}
	return normalized, nil
}

func (f OutputFormat) String() string {
	return string(f)
}
