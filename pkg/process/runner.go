package process

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/logger"
)

// exitCodeNotStarted mirrors the shell's status for a command that could not be run.
const exitCodeNotStarted = 127

// Watcher receives the stdout of a running command chunk by chunk.
type Watcher interface {
	Submit(chunk string) []string
}

// Command describes a single blocking invocation of an external program.
type Command struct {
	Name     string
	Args     []string
	Dir      string
	Env      []string
	Stdin    io.Reader
	Watchers []Watcher
	// Hide keeps the command's output off the console.
	Hide bool
}

// String renders the command line for logs and errors.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the outcome of a command that exited with status zero.
type Result struct {
	Stdout   string
	ExitCode int
}

// Runner runs external commands. A non-zero exit is returned as *errs.ExitError.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive the echoed output of commands that are not hidden.
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	logger.Logger(ctx).Debug().Str("dir", cmd.Dir).Msgf("running %s", cmd)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	c.Stdin = cmd.Stdin

	var stderr bytes.Buffer
	if cmd.Hide || r.Stderr == nil {
		c.Stderr = &stderr
	} else {
		c.Stderr = io.MultiWriter(&stderr, r.Stderr)
	}

	stdoutPipe, err := c.StdoutPipe()
	if err != nil {
		return nil, errors.Wrapf(err, "stdout pipe for %s", cmd)
	}
	if err := c.Start(); err != nil {
		return nil, errs.NewExitError(exitCodeNotStarted, cmd.String(), err)
	}

	var echo io.Writer
	if !cmd.Hide {
		echo = r.Stdout
	}
	var stdout strings.Builder
	// stdout must be drained before Wait closes the pipe
	pump(stdoutPipe, &stdout, echo, cmd.Watchers)

	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, errs.NewExitError(exitErr.ExitCode(), cmd.String(), stderrCause(stderr.String()))
		}
		return nil, errs.NewExitError(-1, cmd.String(), err)
	}
	return &Result{Stdout: stdout.String(), ExitCode: 0}, nil
}

// pump copies src line by line, newline included, so watchers never see a line split in two.
func pump(src io.Reader, dst *strings.Builder, echo io.Writer, watchers []Watcher) {
	br := bufio.NewReader(src)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			dst.WriteString(line)
			if echo != nil {
				_, _ = io.WriteString(echo, line)
			}
			for _, w := range watchers {
				w.Submit(line)
			}
		}
		if err != nil {
			return
		}
	}
}

func stderrCause(stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return nil
	}
	lines := strings.Split(stderr, "\n")
	return errors.New(strings.TrimSpace(lines[len(lines)-1]))
}
