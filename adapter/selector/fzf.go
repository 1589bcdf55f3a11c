package selector

import (
	"context"
	"os/exec"
	"strings"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/process"
)

// fzf exits 1 when nothing matched and 130 when the operator hit ESC or Ctrl-C.
const (
	fzfNoMatch     = 1
	fzfInterrupted = 130
)

// FzfSelector runs the fzf fuzzy finder over the options.
type FzfSelector struct {
	runner process.Runner
	binary string
}

var _ domain.Selector = (*FzfSelector)(nil)

func NewFzfSelector(runner process.Runner, binary string) *FzfSelector {
	if binary == "" {
		binary = "fzf"
	}
	return &FzfSelector{runner: runner, binary: binary}
}

func (f *FzfSelector) args(opts domain.SelectOptions) []string {
	var args []string
	if opts.Query != "" {
		args = append(args, "--query", opts.Query)
	}
	if opts.Multi {
		args = append(args, "--multi")
	} else {
		args = append(args, "--no-multi")
	}
	if opts.Header != "" {
		args = append(args, "--header", opts.Header)
	}
	return args
}

func (f *FzfSelector) Select(ctx context.Context, options []string, opts domain.SelectOptions) ([]string, error) {
	res, err := f.runner.Run(ctx, process.Command{
		Name:  f.binary,
		Args:  f.args(opts),
		Stdin: strings.NewReader(strings.Join(options, "\n") + "\n"),
		Hide:  true,
	})
	if err != nil {
		if exitErr, ok := errs.IsExitError(err); ok && (exitErr.Code == fzfNoMatch || exitErr.Code == fzfInterrupted) {
			return nil, domain.ErrSelectionAborted
		}
		return nil, err
	}

	var choices []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			choices = append(choices, line)
		}
	}
	if len(choices) == 0 {
		return nil, domain.ErrSelectionAborted
	}
	return choices, nil
}

// New returns an fzf selector when the binary is on PATH and a line prompt otherwise.
func New(runner process.Runner, cfg config.SelectorConfig) domain.Selector {
	binary := cfg.Binary
	if binary == "" {
		binary = "fzf"
	}
	if _, err := exec.LookPath(binary); err == nil {
		return NewFzfSelector(runner, binary)
	}
	return NewPromptSelector()
}
