package install

import (
	"context"

	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/types"
)

// Step is one installation step
type Step interface {
	Name() string
	// Required steps stop the run when they fail and abort_on_failure is set
	Required() bool
	Run(ctx context.Context, env *Env) Outcome
}

// Env carries the collaborators a step may use
type Env struct {
	Runner    Runner
	Locations *Locations
	Prompter  types.Prompter
	FS        types.FS
	GOOS      string
	Force     bool
	DryRun    bool
}

// Outcome is the result of running a step
type Outcome struct {
	Status types.StatusState
	Detail string
	Err    error

	// Value is a step specific result, such as the installed font name
	Value string
}

// OK reports whether the step did not fail
func (o Outcome) OK() bool {
	return o.Status.Succeeded()
}

func success(detail string) Outcome {
	return Outcome{Status: types.StatusStateSuccess, Detail: detail}
}

func skipped(detail string) Outcome {
	return Outcome{Status: types.StatusStateSkipped, Detail: detail}
}

// present marks a skip because the tool is already there. Err carries
// TOOL_PRESENT for callers that inspect codes; the status is not a failure.
func present(what, detail string) Outcome {
	out := skipped(detail)
	out.Err = errors.Newf(errors.ErrToolPresent, "%s already installed", what)
	return out
}

func dryRun(detail string) Outcome {
	return Outcome{Status: types.StatusStateDryRun, Detail: detail}
}

func failed(err error) Outcome {
	return Outcome{Status: types.StatusStateError, Detail: err.Error(), Err: err}
}
