package service

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/metrics"
)

type mocks struct {
	repo     *domain.MockRepoLocator
	build    *domain.MockBuildTool
	cluster  *domain.MockClusterAdapter
	syncer   *domain.MockSyncer
	selector *domain.MockSelector
	fs       afero.Fs
}

func newTestService(t *testing.T) (*Service, *mocks) {
	m := &mocks{
		repo:     domain.NewMockRepoLocator(t),
		build:    domain.NewMockBuildTool(t),
		cluster:  domain.NewMockClusterAdapter(t),
		syncer:   domain.NewMockSyncer(t),
		selector: domain.NewMockSelector(t),
		fs:       afero.NewMemMapFs(),
	}
	svc := NewService(Params{
		RepoLocator:    m.repo,
		BuildTool:      m.build,
		ClusterAdapter: m.cluster,
		Syncer:         m.syncer,
		Selector:       m.selector,
		BuildConfig:    config.BuildConfig{},
		SyncConfig:     config.SyncConfig{},
		Fs:             m.fs,
		Metrics:        metrics.NewDeployMetrics(),
	})
	return svc, m
}

func pod(name string, containers ...domain.Container) *domain.CandidatePod {
	return &domain.CandidatePod{
		ShortName:     name,
		QualifiedName: "pod/" + name,
		Namespace:     "rhsm",
		Containers:    containers,
	}
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(Params{})
	assert.Equal(t, "classes/java/main", svc.artifactSubdir)
	assert.Equal(t, "/deployments/", svc.remotePath)
	assert.NotNil(t, svc.Fs)
}
