package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/process/processtest"
)

func TestToplevel(t *testing.T) {
	runner := processtest.NewFakeRunner(processtest.Step{Output: []string{"/home/dev/rhsm-subscriptions\n"}})
	g := NewGit(runner)

	root, err := g.Toplevel(context.Background(), "/home/dev/rhsm-subscriptions/swatch-tally")
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/rhsm-subscriptions", root)

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, "git rev-parse --show-toplevel", runner.Calls[0].String())
	assert.True(t, runner.Calls[0].Hide)
	assert.Equal(t, "/home/dev/rhsm-subscriptions/swatch-tally", runner.Calls[0].Dir)
}

func TestToplevelOutsideRepository(t *testing.T) {
	runner := processtest.NewFakeRunner(processtest.Step{ExitCode: 128})
	g := NewGit(runner)

	_, err := g.Toplevel(context.Background(), "/tmp")
	require.Error(t, err)
	assert.Equal(t, 128, errs.ExitCode(err))
}

func TestToplevelEmptyOutput(t *testing.T) {
	runner := processtest.NewFakeRunner(processtest.Step{Output: []string{"\n"}})
	g := NewGit(runner)

	_, err := g.Toplevel(context.Background(), "/tmp")
	require.Error(t, err)
}
