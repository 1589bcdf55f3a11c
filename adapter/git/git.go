package git

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/process"
)

// Git locates repository roots with the git CLI.
type Git struct {
	runner  process.Runner
	gitPath string
}

var _ domain.RepoLocator = (*Git)(nil)

func NewGit(runner process.Runner) *Git {
	return &Git{runner: runner, gitPath: "git"}
}

func (g *Git) Toplevel(ctx context.Context, dir string) (string, error) {
	res, err := g.runner.Run(ctx, process.Command{
		Name: g.gitPath,
		Args: []string{"rev-parse", "--show-toplevel"},
		Dir:  dir,
		Hide: true,
	})
	if err != nil {
		return "", err
	}
	root := strings.TrimRight(res.Stdout, "\r\n")
	if root == "" {
		return "", errors.New("git rev-parse returned an empty toplevel")
	}
	return root, nil
}
