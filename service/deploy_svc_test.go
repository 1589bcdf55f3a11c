package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
)

var webContainer = domain.Container{Name: "swatch-tally", Ports: []string{"web"}}

func TestSyncCodeStopsAtFirstFailure(t *testing.T) {
	svc, m := newTestService(t)
	selector := &domain.TargetSelector{QualifiedNames: []string{"pod/p1", "pod/p2", "pod/p3"}}
	m.cluster.EXPECT().GetPod(mock.Anything, "pod/p1").Return(pod("p1", webContainer), nil).Once()
	m.cluster.EXPECT().GetPod(mock.Anything, "pod/p2").Return(pod("p2", webContainer), nil).Once()

	var synced []string
	m.syncer.EXPECT().Sync(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.SyncRequest) error {
			synced = append(synced, req.Pod)
			if req.Pod == "p2" {
				return errs.WithKind(errs.NewExitError(12, "oc rsync", nil), domain.ErrSyncFailed)
			}
			return nil
		}).
		Twice()

	err := svc.SyncCode(context.Background(), "/a/b/classes/java/main/", selector, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSyncFailed)
	assert.Equal(t, 12, errs.ExitCode(err))
	assert.Equal(t, []string{"p1", "p2"}, synced, "p3 must never be attempted")
}

func TestSyncCodeRequest(t *testing.T) {
	svc, m := newTestService(t)
	selector := &domain.TargetSelector{QualifiedNames: []string{"pod/p1"}}
	m.cluster.EXPECT().GetPod(mock.Anything, "pod/p1").Return(pod("p1", webContainer), nil).Once()
	m.syncer.EXPECT().Sync(mock.Anything, domain.SyncRequest{
		Source:     "/src/",
		Pod:        "p1",
		Container:  "override",
		RemotePath: "/deployments/",
	}).Return(nil).Once()

	require.NoError(t, svc.SyncCode(context.Background(), "/src/", selector, "override"))
}

func TestSyncCodeAmbiguousContainer(t *testing.T) {
	svc, m := newTestService(t)
	selector := &domain.TargetSelector{QualifiedNames: []string{"pod/p1"}}
	m.cluster.EXPECT().GetPod(mock.Anything, "pod/p1").
		Return(pod("p1", webContainer, domain.Container{Name: "sidecar", Ports: []string{"web"}}), nil).
		Once()

	err := svc.SyncCode(context.Background(), "/src/", selector, "")
	assert.ErrorIs(t, err, domain.ErrAmbiguousContainer)
}

func TestDeployClusterUnreachableStopsBeforeBuild(t *testing.T) {
	svc, m := newTestService(t)
	m.cluster.EXPECT().Verify(mock.Anything).Return(errors.Join(domain.ErrClusterUnreachable, errors.New("Unauthorized"))).Once()

	err := svc.Deploy(context.Background(), DeployOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClusterUnreachable)
	m.build.AssertNotCalled(t, "Compile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeployFullPipeline(t *testing.T) {
	svc, m := newTestService(t)
	require.NoError(t, m.fs.MkdirAll("/repo/swatch-tally/build/classes/java/main", 0o755))
	dir := filepath.FromSlash("/repo/swatch-tally/build/classes/java/main/")

	m.cluster.EXPECT().Verify(mock.Anything).Return(nil).Once()
	m.repo.EXPECT().Toplevel(mock.Anything, mock.Anything).Return("/repo", nil).Once()
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").Return([]string{":swatch-tally"}, nil).Once()
	m.selector.EXPECT().Select(mock.Anything, []string{": <root project>", ":swatch-tally"}, domain.SelectOptions{}).
		Return([]string{":swatch-tally"}, nil).
		Once()
	m.build.EXPECT().Compile(mock.Anything, "/repo", ":swatch-tally", true).Return(nil).Once()
	m.build.EXPECT().ResolveBuildDirs(mock.Anything, "/repo", ":swatch-tally").
		Return([]string{"/repo/swatch-tally/build"}, nil).
		Once()
	m.cluster.EXPECT().ListPods(mock.Anything).Return([]*domain.CandidatePod{pod("p1", webContainer)}, nil).Once()
	m.selector.EXPECT().Select(mock.Anything, []string{"p1"}, mock.Anything).Return([]string{"p1"}, nil).Once()
	m.cluster.EXPECT().GetPod(mock.Anything, "pod/p1").Return(pod("p1", webContainer), nil).Once()
	m.syncer.EXPECT().Sync(mock.Anything, domain.SyncRequest{
		Source:     dir,
		Pod:        "p1",
		Container:  "swatch-tally",
		RemotePath: "/deployments/",
	}).Return(nil).Once()

	require.NoError(t, svc.Deploy(context.Background(), DeployOptions{Clean: true, PodPrefix: "p"}))
}

func TestDeployExplicitRootProjectSkipsDiscovery(t *testing.T) {
	svc, m := newTestService(t)
	m.cluster.EXPECT().Verify(mock.Anything).Return(nil).Once()
	m.repo.EXPECT().Toplevel(mock.Anything, mock.Anything).Return("/repo", nil).Once()
	m.build.EXPECT().Compile(mock.Anything, "/repo", "", false).
		Return(errs.NewExitError(1, "./gradlew :classes", nil)).
		Once()

	err := svc.Deploy(context.Background(), DeployOptions{Project: ":"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	m.build.AssertNotCalled(t, "ListProjects", mock.Anything, mock.Anything)
	m.selector.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeploySeedsProjectSelector(t *testing.T) {
	svc, m := newTestService(t)
	m.cluster.EXPECT().Verify(mock.Anything).Return(nil).Once()
	m.repo.EXPECT().Toplevel(mock.Anything, mock.Anything).Return("/repo", nil).Once()
	m.build.EXPECT().ListProjects(mock.Anything, "/repo").Return([]string{":swatch-tally"}, nil).Once()
	m.selector.EXPECT().Select(mock.Anything, mock.Anything, domain.SelectOptions{Query: "tally"}).
		Return(nil, domain.ErrSelectionAborted).
		Once()

	err := svc.Deploy(context.Background(), DeployOptions{ProjectQuery: "tally"})
	assert.ErrorIs(t, err, domain.ErrSelectionAborted)
	m.build.AssertNotCalled(t, "Compile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
