// Package processtest provides a scripted process.Runner for tests.
package processtest

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/process"
)

// Step scripts the outcome of one command. Output is fed to the command's watchers
// chunk by chunk, the way ExecRunner feeds lines.
type Step struct {
	Output   []string
	ExitCode int
}

// FakeRunner replays Steps in order and records every command it was given.
type FakeRunner struct {
	mu    sync.Mutex
	Steps []Step
	Calls []process.Command
	Stdin []string
}

var _ process.Runner = (*FakeRunner)(nil)

func NewFakeRunner(steps ...Step) *FakeRunner {
	return &FakeRunner{Steps: steps}
}

func (f *FakeRunner) Run(ctx context.Context, cmd process.Command) (*process.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, cmd)
	stdin := ""
	if cmd.Stdin != nil {
		b, _ := io.ReadAll(cmd.Stdin)
		stdin = string(b)
	}
	f.Stdin = append(f.Stdin, stdin)

	var step Step
	if len(f.Steps) > 0 {
		step = f.Steps[0]
		f.Steps = f.Steps[1:]
	}
	for _, chunk := range step.Output {
		for _, w := range cmd.Watchers {
			w.Submit(chunk)
		}
	}
	if step.ExitCode != 0 {
		return nil, errs.NewExitError(step.ExitCode, cmd.String(), nil)
	}
	return &process.Result{Stdout: strings.Join(step.Output, "")}, nil
}

// CommandLines returns the recorded commands rendered as strings.
func (f *FakeRunner) CommandLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}
