package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WriteFile creates path and its parents with content
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of path, failing the test when it is missing
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// AssertMissing checks that path does not exist
func AssertMissing(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	_, err := fsys.Stat(path)
	assert.True(t, os.IsNotExist(err), "%s should not exist", path)
}
