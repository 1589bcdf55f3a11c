package service

import (
	"github.com/spf13/afero"
	"go.uber.org/fx"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/metrics"
)

const (
	defaultArtifactSubdir = "classes/java/main"
	defaultRemotePath     = "/deployments/"
)

type Params struct {
	fx.In
	RepoLocator    domain.RepoLocator
	BuildTool      domain.BuildTool
	ClusterAdapter domain.ClusterAdapter
	Syncer         domain.Syncer
	Selector       domain.Selector
	BuildConfig    config.BuildConfig
	SyncConfig     config.SyncConfig
	Fs             afero.Fs
	Metrics        *metrics.DeployMetrics `optional:"true"`
}

func NewService(params Params) *Service {
	artifactSubdir := params.BuildConfig.ArtifactSubdir
	if artifactSubdir == "" {
		artifactSubdir = defaultArtifactSubdir
	}
	remotePath := params.SyncConfig.RemotePath
	if remotePath == "" {
		remotePath = defaultRemotePath
	}
	fs := params.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Service{
		RepoLocator:    params.RepoLocator,
		BuildTool:      params.BuildTool,
		ClusterAdapter: params.ClusterAdapter,
		Syncer:         params.Syncer,
		Selector:       params.Selector,
		Fs:             fs,
		Metrics:        params.Metrics,
		artifactSubdir: artifactSubdir,
		remotePath:     remotePath,
	}
}

// Service runs the deploy pipeline stages. Stages run one after another on the
// caller's goroutine.
type Service struct {
	RepoLocator    domain.RepoLocator
	BuildTool      domain.BuildTool
	ClusterAdapter domain.ClusterAdapter
	Syncer         domain.Syncer
	Selector       domain.Selector
	Fs             afero.Fs
	Metrics        *metrics.DeployMetrics

	artifactSubdir string
	remotePath     string
}
