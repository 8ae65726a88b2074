package types

// StatusState represents the outcome of a single setup step
type StatusState string

const (
	// StatusStateSuccess indicates the step did its work
	StatusStateSuccess StatusState = "success"

	// StatusStateSkipped indicates there was nothing to do (tool present, mode off)
	StatusStateSkipped StatusState = "skipped"

	// StatusStateError indicates the step failed; the run may still continue
	StatusStateError StatusState = "error"

	// StatusStateDryRun indicates the step only previewed its changes
	StatusStateDryRun StatusState = "dry-run"
)

// Succeeded reports whether the state counts as a success for callers that
// only need the boolean outcome.
func (s StatusState) Succeeded() bool {
	return s != StatusStateError
}

// Symbol returns a short marker used in plain text output
func (s StatusState) Symbol() string {
	switch s {
	case StatusStateSuccess:
		return "✓"
	case StatusStateSkipped:
		return "-"
	case StatusStateDryRun:
		return "~"
	default:
		return "✗"
	}
}
