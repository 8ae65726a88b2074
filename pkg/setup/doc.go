// Package setup runs the themed terminal setup end to end.
//
// A run checks process elevation, resolves the prompt theme, installs the
// external tools, merges the font into every terminal and editor settings
// document, regenerates the shell profile and optionally verifies the
// result. Each piece reports a StepResult; failures are recorded and the run
// continues unless abort_on_failure is set and a required step failed.
//
// The run is sequential. The context is passed to every external command so
// cancelling it stops a running package manager.
package setup
