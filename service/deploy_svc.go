package service

import (
	"context"
	"time"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/logger"
	"github.com/swatchdog/swatchdog/pkg/metrics"
)

// DeployOptions are the operator's choices for one deploy.
type DeployOptions struct {
	Clean     bool
	PodPrefix string
	// Project skips discovery when set. ":" names the root project.
	Project string
	// ProjectQuery seeds the project selector when Project is empty.
	ProjectQuery string
	Container    string
}

// SyncCode pushes dir into each selected pod in selection order. The first failure
// stops the loop; pods after it are never attempted.
func (svc *Service) SyncCode(ctx context.Context, dir string, selector *domain.TargetSelector, container string) error {
	for _, qualified := range selector.QualifiedNames {
		pod, err := svc.ClusterAdapter.GetPod(ctx, qualified)
		if err != nil {
			svc.Metrics.PodSynced(err)
			return err
		}
		target := domain.DeploymentTarget{Pod: pod}
		target.ResolvedContainer, err = svc.ResolveContainer(pod, container)
		if err != nil {
			svc.Metrics.PodSynced(err)
			return err
		}

		err = svc.Syncer.Sync(ctx, domain.SyncRequest{
			Source:     dir,
			Pod:        target.Pod.ShortName,
			Container:  target.ResolvedContainer,
			RemotePath: svc.remotePath,
		})
		svc.Metrics.PodSynced(err)
		if err != nil {
			return err
		}
	}
	return nil
}

// Deploy runs the whole pipeline: verify the cluster, pick and build a project,
// pick pods, push the compiled classes.
func (svc *Service) Deploy(ctx context.Context, opts DeployOptions) error {
	log := logger.Logger(ctx)

	start := time.Now()
	if err := svc.ClusterAdapter.Verify(ctx); err != nil {
		return err
	}
	svc.Metrics.ObserveStage(metrics.StageVerify, start)

	start = time.Now()
	root, err := svc.ResolveProjectRoot(ctx)
	if err != nil {
		return err
	}
	var project string
	if opts.Project != "" {
		project = domain.NormalizeProjectID(opts.Project)
	} else {
		chosen, err := svc.ChooseProject(ctx, root, opts.ProjectQuery)
		if err != nil {
			return err
		}
		project = chosen.BuildIdentifier
	}
	svc.Metrics.ObserveStage(metrics.StageProject, start)
	log.Debug().Msgf("deploying project %q from %s", project, root)

	start = time.Now()
	dir, err := svc.BuildProject(ctx, project, root, opts.Clean)
	if err != nil {
		return err
	}
	svc.Metrics.ObserveStage(metrics.StageBuild, start)

	start = time.Now()
	selector, err := svc.ChoosePods(ctx, opts.PodPrefix)
	if err != nil {
		return err
	}
	svc.Metrics.ObserveStage(metrics.StageSelect, start)

	start = time.Now()
	if err := svc.SyncCode(ctx, dir, selector, opts.Container); err != nil {
		return err
	}
	svc.Metrics.ObserveStage(metrics.StageSync, start)

	log.Info().Msgf("Deployed %s to %d pod(s)", dir, len(selector.QualifiedNames))
	return nil
}
