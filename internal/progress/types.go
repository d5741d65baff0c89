// Package progress shows the progress of one-shot CLI steps: a spinner on
// interactive terminals, plain lines everywhere else.
package progress

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the output is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// Symbols defines the character set for visual indicators
type Symbols struct {
	Checkmark string
	Failure   string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
