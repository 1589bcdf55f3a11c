package openshift

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/logger"
	"github.com/swatchdog/swatchdog/pkg/process"
)

// OC wraps the oc CLI for the operations client-go has no equivalent for.
type OC struct {
	runner    process.Runner
	binary    string
	namespace string
	strategy  string
}

var (
	_ domain.Syncer      = (*OC)(nil)
	_ domain.TokenSource = (*OC)(nil)
)

func NewOC(runner process.Runner, clusterCfg config.ClusterConfig, syncCfg config.SyncConfig) *OC {
	binary := clusterCfg.CLI
	if binary == "" {
		binary = "oc"
	}
	strategy := syncCfg.Strategy
	if strategy == "" {
		strategy = "rsync"
	}
	return &OC{
		runner:    runner,
		binary:    binary,
		namespace: clusterCfg.Namespace,
		strategy:  strategy,
	}
}

// WhoAmIToken returns the token of the session the CLI is logged in with.
func (o *OC) WhoAmIToken(ctx context.Context) (string, error) {
	res, err := o.runner.Run(ctx, process.Command{
		Name: o.binary,
		Args: []string{"whoami", "-t"},
		Hide: true,
	})
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(res.Stdout)
	if token == "" {
		return "", errors.New("oc whoami -t returned no token")
	}
	return token, nil
}

// rsyncArgs builds the oc rsync argument list. Permissions are never copied and
// --delete is never passed.
func (o *OC) rsyncArgs(req domain.SyncRequest) []string {
	args := []string{"rsync"}
	if o.namespace != "" {
		args = append(args, "--namespace="+o.namespace)
	}
	args = append(args,
		"--no-perms=true",
		"--strategy="+o.strategy,
		"--container="+req.Container,
		req.Source,
		req.Pod+":"+req.RemotePath,
	)
	return args
}

// Sync pushes req.Source into the container. A non-zero exit fails immediately.
func (o *OC) Sync(ctx context.Context, req domain.SyncRequest) error {
	logger.Logger(ctx).Info().Msgf("Syncing code to %s in %s", req.Container, req.Pod)
	_, err := o.runner.Run(ctx, process.Command{
		Name: o.binary,
		Args: o.rsyncArgs(req),
	})
	if err != nil {
		return errs.WithKind(err, domain.ErrSyncFailed)
	}
	return nil
}
