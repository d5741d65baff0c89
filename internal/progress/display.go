package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Display reports one step at a time.
type Display struct {
	out     io.Writer
	caps    TerminalCapabilities
	symbols Symbols
	spinner *spinner.Spinner
	step    string
}

// NewDisplay creates a display writing to out.
func NewDisplay(out io.Writer, caps TerminalCapabilities) *Display {
	return &Display{out: out, caps: caps, symbols: SelectSymbols(caps)}
}

// Start begins a step. On a terminal a spinner runs until the step ends.
func (d *Display) Start(step string) {
	d.stopSpinner()
	d.step = step

	if !d.caps.IsTTY {
		fmt.Fprintf(d.out, "%s...\n", step)
		return
	}
	d.spinner = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond)
	d.spinner.Writer = d.out
	d.spinner.Suffix = " " + step
	d.spinner.Start()
}

// Complete ends the current step successfully.
func (d *Display) Complete() {
	d.stopSpinner()
	mark := d.symbols.Checkmark
	if d.caps.SupportsColor {
		mark = color.GreenString(mark)
	}
	fmt.Fprintf(d.out, "%s %s\n", mark, d.step)
}

// Fail ends the current step with err.
func (d *Display) Fail(err error) {
	d.stopSpinner()
	mark := d.symbols.Failure
	if d.caps.SupportsColor {
		mark = color.RedString(mark)
	}
	fmt.Fprintf(d.out, "%s %s: %v\n", mark, d.step, err)
}

func (d *Display) stopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
