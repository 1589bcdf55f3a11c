package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
)

func TestDiscoverProjectsInjectsRoot(t *testing.T) {
	svc, m := newTestService(t)
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").Return(nil, nil).Once()

	set, err := svc.DiscoverProjects(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RootProjectLabel}, set.DisplayNames())

	project, ok := set.Lookup(domain.RootProjectLabel)
	require.True(t, ok)
	assert.Equal(t, "", project.BuildIdentifier)
}

func TestDiscoverProjectsTrimsMatches(t *testing.T) {
	svc, m := newTestService(t)
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").
		Return([]string{":swatch-tally", "':swatch-contracts' ", " "}, nil).
		Once()

	set, err := svc.DiscoverProjects(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{": <root project>", ":swatch-contracts", ":swatch-tally"}, set.DisplayNames())
}

func TestDiscoverProjectsBuildToolError(t *testing.T) {
	svc, m := newTestService(t)
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").
		Return(nil, errs.NewExitError(1, "./gradlew projects", nil)).
		Once()

	_, err := svc.DiscoverProjects(context.Background(), "/repo")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildToolError)
	assert.Equal(t, 1, errs.ExitCode(err))
}

func TestChooseProject(t *testing.T) {
	svc, m := newTestService(t)
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").Return([]string{":swatch-tally"}, nil).Once()
	m.selector.EXPECT().Select(mock.Anything, []string{": <root project>", ":swatch-tally"}, domain.SelectOptions{Query: "tally"}).
		Return([]string{":swatch-tally"}, nil).
		Once()

	project, err := svc.ChooseProject(context.Background(), "/repo", "tally")
	require.NoError(t, err)
	assert.Equal(t, domain.Project{DisplayName: ":swatch-tally", BuildIdentifier: ":swatch-tally"}, project)
}

func TestChooseRootProject(t *testing.T) {
	svc, m := newTestService(t)
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").Return(nil, nil).Once()
	m.selector.EXPECT().Select(mock.Anything, mock.Anything, mock.Anything).Return([]string{domain.RootProjectLabel}, nil).Once()

	project, err := svc.ChooseProject(context.Background(), "/repo", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RootProjectID, project.BuildIdentifier)
}

func TestChooseProjectAborted(t *testing.T) {
	svc, m := newTestService(t)
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").Return(nil, nil).Twice()
	m.selector.EXPECT().Select(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrSelectionAborted).Once()
	m.selector.EXPECT().Select(mock.Anything, mock.Anything, mock.Anything).Return([]string{}, nil).Once()

	_, err := svc.ChooseProject(context.Background(), "/repo", "")
	assert.ErrorIs(t, err, domain.ErrSelectionAborted)

	_, err = svc.ChooseProject(context.Background(), "/repo", "")
	assert.ErrorIs(t, err, domain.ErrSelectionAborted)
	assert.Equal(t, errs.ExitCodeAborted, errs.ExitCode(err))
}

func TestChooseProjectUnknownSelection(t *testing.T) {
	svc, m := newTestService(t)
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").Return(nil, nil).Once()
	m.selector.EXPECT().Select(mock.Anything, mock.Anything, mock.Anything).Return([]string{":nope"}, nil).Once()

	_, err := svc.ChooseProject(context.Background(), "/repo", "")
	assert.ErrorIs(t, err, domain.ErrUnknownSelection)
}

func TestResolveProjectRoot(t *testing.T) {
	svc, m := newTestService(t)
	m.repo.EXPECT().Toplevel(mock.Anything, mock.Anything).Return("/repo", nil).Once()

	root, err := svc.ResolveProjectRoot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/repo", root)
}

func TestResolveProjectRootOutsideRepository(t *testing.T) {
	svc, m := newTestService(t)
	m.repo.EXPECT().Toplevel(mock.Anything, mock.Anything).
		Return("", errs.NewExitError(128, "git rev-parse --show-toplevel", errors.New("not a git repository"))).
		Once()

	_, err := svc.ResolveProjectRoot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectRootUnresolved)
	assert.Equal(t, 128, errs.ExitCode(err))
}
