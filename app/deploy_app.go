package app

import (
	"context"

	"go.uber.org/dig"
	"go.uber.org/fx"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/pkg/logger"
	"github.com/swatchdog/swatchdog/service"
)

// Options carries the command line settings that are not part of the config file.
type Options struct {
	ConfigName string
	ConfigDir  string
	LogLevel   string
	Token      config.SecretValue
}

// DeployApp is the wired application for one deploy run.
type DeployApp struct {
	ctx   context.Context
	runID string
	app   *fx.App
	svc   *service.Service
}

func NewDeployApp(ctx context.Context, opts Options) (*DeployApp, error) {
	cfg, err := config.InitDeployConfig(opts.ConfigName, opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger.InitLogger(level)

	deployApp := &DeployApp{}
	deployApp.ctx, deployApp.runID = logger.WithRunID(ctx)
	deployApp.app = fx.New(
		fx.NopLogger,
		fx.Supply(opts),
		fx.Provide(func() context.Context { return deployApp.ctx }),
		ConfigModule(cfg),
		ServiceModule(AdapterModule()),
		fx.Populate(&deployApp.svc),
	)
	if err := deployApp.app.Err(); err != nil {
		return nil, dig.RootCause(err)
	}
	return deployApp, nil
}

func (d *DeployApp) RunID() string {
	return d.runID
}

// Run starts the app, deploys, and stops the app. Stop hooks run even when the deploy fails.
func (d *DeployApp) Run(opts service.DeployOptions) error {
	ctx := d.ctx
	if err := d.app.Start(ctx); err != nil {
		return err
	}
	deployErr := d.svc.Deploy(ctx, opts)
	if err := d.app.Stop(context.WithoutCancel(ctx)); err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("shutdown failed")
	}
	return deployErr
}
