package testutil

import (
	"context"
	"testing"

	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner(t *testing.T) {
	r := NewRunner()
	r.Fail["brew install fzf"] = true
	r.Outputs["pwsh -Command x"] = "present"
	var seen []string
	r.OnRun = func(cmd string) { seen = append(seen, cmd) }

	require.NoError(t, r.Run(context.Background(), "winget", "install", "x"))
	assert.Error(t, r.Run(context.Background(), "brew", "install", "fzf"))
	out, err := r.Output(context.Background(), "pwsh", "-Command", "x")
	require.NoError(t, err)

	assert.Equal(t, "present", out)
	assert.Equal(t, []string{"winget install x", "brew install fzf"}, r.Commands)
	assert.Equal(t, []string{"pwsh -Command x"}, r.Checks)
	assert.Equal(t, []string{"winget install x"}, seen)
}

func TestPrompter(t *testing.T) {
	p := &Prompter{Answer: true}

	ok, err := p.Confirm("Continue?", false)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, p.WaitForEnter("press enter"))
	assert.Equal(t, []string{"Continue?"}, p.Questions)
	assert.Equal(t, 1, p.Waits)
}

func TestFiles(t *testing.T) {
	fsys := filesystem.NewMemoryFS()

	WriteFile(t, fsys, "/a/b/c.json", "{}")
	assert.Equal(t, "{}", ReadFile(t, fsys, "/a/b/c.json"))
	AssertMissing(t, fsys, "/a/b/d.json")
}
