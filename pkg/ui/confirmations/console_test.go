package confirmations

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ types.Prompter = (*ConsoleDialog)(nil)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default no", "\n", false, false},
		{"empty uses default yes", "\n", true, true},
		{"garbage is no", "maybe\n", true, false},
		{"no trailing newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			d := NewDialog(strings.NewReader(tt.input), &out)

			got, err := d.Confirm("Continue anyway?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Continue anyway?")
		})
	}
}

func TestConfirmClosedInput(t *testing.T) {
	d := NewDialog(strings.NewReader(""), &bytes.Buffer{})

	_, err := d.Confirm("Continue?", false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputClosed))
}

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	d := NewDialog(strings.NewReader("\n"), &out)

	require.NoError(t, d.WaitForEnter("Press Enter when done"))
	assert.Equal(t, "Press Enter when done ", out.String())
}
