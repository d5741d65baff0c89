package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNonInteractive(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		finish func(d *Display)
		want   string
	}{
		"completed step": {
			finish: func(d *Display) { d.Complete() },
			want:   "Migrating database...\n[OK] Migrating database\n",
		},
		"failed step": {
			finish: func(d *Display) { d.Fail(errors.New("connection refused")) },
			want:   "Migrating database...\n[FAIL] Migrating database: connection refused\n",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			d := NewDisplay(&buf, TerminalCapabilities{})
			d.Start("Migrating database")
			tc.finish(d)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps      TerminalCapabilities
		wantCheck string
		wantSet   int
	}{
		"unicode terminal": {caps: TerminalCapabilities{IsTTY: true, SupportsUnicode: true}, wantCheck: "✓", wantSet: 14},
		"pipe":             {caps: TerminalCapabilities{}, wantCheck: "[OK]", wantSet: 9},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := SelectSymbols(tc.caps)
			assert.Equal(t, tc.wantCheck, s.Checkmark)
			assert.Equal(t, tc.wantSet, s.SpinnerSet)
		})
	}
}
