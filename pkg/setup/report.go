package setup

import (
	"time"

	"github.com/arthur-debert/themeup/pkg/types"
)

// Phase names
const (
	PhaseInstall  = "install"
	PhaseSettings = "settings"
	PhaseProfile  = "profile"
	PhaseVerify   = "verify"
)

// StepResult is the outcome of one step of a run
type StepResult struct {
	Phase      string            `json:"phase" yaml:"phase"`
	Name       string            `json:"name" yaml:"name"`
	Status     types.StatusState `json:"status" yaml:"status"`
	Detail     string            `json:"detail,omitempty" yaml:"detail,omitempty"`
	Path       string            `json:"path,omitempty" yaml:"path,omitempty"`
	BackupPath string            `json:"backup,omitempty" yaml:"backup,omitempty"`
	Diff       string            `json:"diff,omitempty" yaml:"diff,omitempty"`
	Err        error             `json:"-" yaml:"-"`
}

// Report summarizes a run
type Report struct {
	Theme       string            `json:"theme" yaml:"theme"`
	ThemeSource string            `json:"theme_source" yaml:"theme_source"`
	Font        string            `json:"font" yaml:"font"`
	DryRun      bool              `json:"dry_run" yaml:"dry_run"`
	Aborted     bool              `json:"aborted" yaml:"aborted"`
	Steps       []StepResult      `json:"steps" yaml:"steps"`
	Warnings    []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Locations   map[string]string `json:"locations,omitempty" yaml:"locations,omitempty"`
	StartedAt   time.Time         `json:"started_at" yaml:"started_at"`
	FinishedAt  time.Time         `json:"finished_at" yaml:"finished_at"`
}

// Count returns how many steps ended in state
func (r *Report) Count(state types.StatusState) int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == state {
			n++
		}
	}
	return n
}

// Failed reports whether any step failed
func (r *Report) Failed() bool {
	return r.Count(types.StatusStateError) > 0
}

// Duration returns the wall time of the run
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// PhaseSteps returns the steps of one phase in run order
func (r *Report) PhaseSteps(phase string) []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Phase == phase {
			out = append(out, s)
		}
	}
	return out
}

func (r *Report) add(step StepResult) StepResult {
	r.Steps = append(r.Steps, step)
	return step
}

func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
