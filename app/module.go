package app

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/fx"

	"github.com/swatchdog/swatchdog/adapter/git"
	"github.com/swatchdog/swatchdog/adapter/gradle"
	"github.com/swatchdog/swatchdog/adapter/openshift"
	"github.com/swatchdog/swatchdog/adapter/selector"
	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/logger"
	"github.com/swatchdog/swatchdog/pkg/metrics"
	"github.com/swatchdog/swatchdog/pkg/process"
	"github.com/swatchdog/swatchdog/service"
)

func ConfigModule(cfg config.DeployConfig) fx.Option {
	return fx.Options(
		fx.Provide(func() config.DeployConfig {
			return cfg
		}),
		fx.Provide(func(deployCfg config.DeployConfig) config.ClusterConfig {
			return deployCfg.Cluster
		}),
		fx.Provide(func(deployCfg config.DeployConfig) config.BuildConfig {
			return deployCfg.Build
		}),
		fx.Provide(func(deployCfg config.DeployConfig) config.SyncConfig {
			return deployCfg.Sync
		}),
		fx.Provide(func(deployCfg config.DeployConfig) config.SelectorConfig {
			return deployCfg.Selector
		}),
		fx.Provide(func(deployCfg config.DeployConfig) config.MetricsConfig {
			return deployCfg.Metrics
		}),
		fx.Provide(func(deployCfg config.DeployConfig) config.StateConfig {
			return deployCfg.State
		}),
	)
}

// AdapterModule provides the external tool and cluster adapters behind their domain interfaces.
func AdapterModule() fx.Option {
	return fx.Options(
		fx.Provide(fx.Annotate(process.NewExecRunner, fx.As(new(process.Runner)))),
		fx.Provide(fx.Annotate(git.NewGit, fx.As(new(domain.RepoLocator)))),
		fx.Provide(fx.Annotate(gradle.NewGradle, fx.As(new(domain.BuildTool)))),
		fx.Provide(openshift.NewOC),
		fx.Provide(func(oc *openshift.OC) domain.Syncer { return oc }),
		fx.Provide(func(oc *openshift.OC) domain.TokenSource { return oc }),
		fx.Provide(selector.New),
		fx.Provide(NewTokenStore),
		fx.Provide(NewCredentials),
		fx.Provide(NewClusterAdapter),
		fx.Provide(func() afero.Fs { return afero.NewOsFs() }),
		fx.Provide(NewMetrics),
	)
}

// ServiceModule creates an Fx module that provides the service layer, return *service.Service
func ServiceModule(adapterModule fx.Option) fx.Option {
	return fx.Options(
		adapterModule,
		fx.Provide(service.NewService),
	)
}

// NewMetrics provides the run's collectors and pushes them on stop when a pushgateway is configured.
func NewMetrics(lc fx.Lifecycle, cfg config.MetricsConfig) *metrics.DeployMetrics {
	m := metrics.NewDeployMetrics()
	if cfg.PushgatewayURL == "" {
		return m
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := m.Push(ctx, cfg.PushgatewayURL, cfg.Job); err != nil {
				logger.Logger(ctx).Warn().Err(err).Msg("metrics push failed")
			}
			return nil
		},
	})
	return m
}
