package types_test

import (
	"testing"

	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestStatusState_Succeeded(t *testing.T) {
	assert.True(t, types.StatusStateSuccess.Succeeded())
	assert.True(t, types.StatusStateSkipped.Succeeded())
	assert.True(t, types.StatusStateDryRun.Succeeded())
	assert.False(t, types.StatusStateError.Succeeded())
}

func TestStatusState_Symbol(t *testing.T) {
	assert.Equal(t, "✓", types.StatusStateSuccess.Symbol())
	assert.Equal(t, "-", types.StatusStateSkipped.Symbol())
	assert.Equal(t, "~", types.StatusStateDryRun.Symbol())
	assert.Equal(t, "✗", types.StatusStateError.Symbol())
}
