package testutil

import (
	"context"
	stderrors "errors"
	"strings"
)

// Runner records commands. Command lines listed in Fail return an error;
// Outputs maps a command line to the stdout Output returns.
type Runner struct {
	Commands []string
	Checks   []string
	Fail     map[string]bool
	Outputs  map[string]string

	// OnRun is called after a successful Run, e.g. to create the installed binary
	OnRun func(cmd string)
}

// NewRunner returns an empty recording runner
func NewRunner() *Runner {
	return &Runner{Fail: map[string]bool{}, Outputs: map[string]string{}}
}

// Run records the command line
func (r *Runner) Run(_ context.Context, name string, args ...string) error {
	cmd := CommandLine(name, args...)
	r.Commands = append(r.Commands, cmd)
	if r.Fail[cmd] {
		return stderrors.New("exit status 1")
	}
	if r.OnRun != nil {
		r.OnRun(cmd)
	}
	return nil
}

// Output records the command line as a check and returns the scripted output
func (r *Runner) Output(_ context.Context, name string, args ...string) (string, error) {
	cmd := CommandLine(name, args...)
	r.Checks = append(r.Checks, cmd)
	if r.Fail[cmd] {
		return "", stderrors.New("exit status 1")
	}
	return r.Outputs[cmd], nil
}

// CommandLine joins a command the way Runner records it
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// Prompter answers every confirmation with Answer
type Prompter struct {
	Answer    bool
	Questions []string
	Waits     int
}

// Confirm records the question and returns Answer
func (p *Prompter) Confirm(question string, _ bool) (bool, error) {
	p.Questions = append(p.Questions, question)
	return p.Answer, nil
}

// WaitForEnter counts the pause and returns immediately
func (p *Prompter) WaitForEnter(string) error {
	p.Waits++
	return nil
}
