package install

import (
	"context"
	"strings"

	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/types"
)

type call struct {
	name string
	args []string
}

func (c call) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// fakeRunner records calls and answers from canned results keyed by command line
type fakeRunner struct {
	calls   []call
	errors  map[string]error
	outputs map[string]string
	onRun   func(c call)
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{errors: map[string]error{}, outputs: map[string]string{}}
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	c := call{name: name, args: args}
	r.calls = append(r.calls, c)
	if r.onRun != nil {
		r.onRun(c)
	}
	return r.errors[c.String()]
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	c := call{name: name, args: args}
	r.calls = append(r.calls, c)
	return r.outputs[c.String()], r.errors[c.String()]
}

func (r *fakeRunner) commands() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.String()
	}
	return out
}

type fakePrompter struct {
	answer  bool
	waited  []string
	waitErr error
	onWait  func()
}

func (p *fakePrompter) Confirm(string, bool) (bool, error) {
	return p.answer, nil
}

func (p *fakePrompter) WaitForEnter(message string) error {
	p.waited = append(p.waited, message)
	if p.onWait != nil {
		p.onWait()
	}
	return p.waitErr
}

// fakeLocations resolves tools from a mutable set of installed paths
func fakeLocations(goos string, installed map[string]string) *Locations {
	return NewLocations(goos, nil).WithSearch(
		func(name string) (string, error) {
			if p, ok := installed[name]; ok {
				return p, nil
			}
			return "", errNotFound
		},
		func(string) bool { return false },
	)
}

var errNotFound = &notFoundError{}

type notFoundError struct{}

func (*notFoundError) Error() string { return "executable file not found" }

func newEnv(runner Runner, locations *Locations) *Env {
	return &Env{
		Runner:    runner,
		Locations: locations,
		Prompter:  &fakePrompter{},
		FS:        filesystem.NewMemoryFS(),
		GOOS:      "linux",
	}
}

var _ types.Prompter = (*fakePrompter)(nil)
