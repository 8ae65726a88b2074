package setup

import (
	"testing"
	"time"

	"github.com/arthur-debert/themeup/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestReportCounts(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &Report{StartedAt: start, FinishedAt: start.Add(3 * time.Second)}
	r.add(StepResult{Phase: PhaseInstall, Name: "fuzzy finder", Status: types.StatusStateSkipped})
	r.add(StepResult{Phase: PhaseSettings, Name: "editor", Status: types.StatusStateSuccess})
	r.add(StepResult{Phase: PhaseSettings, Name: "terminal", Status: types.StatusStateError})

	assert.Equal(t, 1, r.Count(types.StatusStateError))
	assert.True(t, r.Failed())
	assert.Len(t, r.PhaseSteps(PhaseSettings), 2)
	assert.Equal(t, 3*time.Second, r.Duration())
}
