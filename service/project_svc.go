package service

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/logger"
)

// ResolveProjectRoot returns the repository root enclosing the working directory.
func (svc *Service) ResolveProjectRoot(ctx context.Context) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(domain.ErrProjectRootUnresolved, "get working directory: %v", err)
	}
	root, err := svc.RepoLocator.Toplevel(ctx, wd)
	if err != nil {
		return "", errs.WithKind(err, domain.ErrProjectRootUnresolved)
	}
	logger.Logger(ctx).Debug().Msgf("project root is %s", root)
	return root, nil
}

// DiscoverProjects lists the subprojects of root. The root project is always part of the set,
// even when the build tool reports none.
func (svc *Service) DiscoverProjects(ctx context.Context, root string) (domain.ProjectSet, error) {
	raw, err := svc.BuildTool.ListProjects(ctx, root)
	if err != nil {
		return nil, errs.WithKind(err, domain.ErrBuildToolError)
	}

	ids := make([]string, 0, len(raw))
	for _, match := range raw {
		id := strings.Trim(match, "' ")
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	logger.Logger(ctx).Debug().Msgf("discovered %d projects under %s", len(ids), root)
	return domain.NewProjectSet(ids), nil
}

// ChooseProject lets the operator pick a project, seeding the selector with query.
func (svc *Service) ChooseProject(ctx context.Context, root string, query string) (domain.Project, error) {
	set, err := svc.DiscoverProjects(ctx, root)
	if err != nil {
		return domain.Project{}, err
	}

	choices, err := svc.Selector.Select(ctx, set.DisplayNames(), domain.SelectOptions{Query: query})
	if err != nil {
		return domain.Project{}, err
	}
	if len(choices) == 0 {
		return domain.Project{}, domain.ErrSelectionAborted
	}

	project, ok := set.Lookup(choices[0])
	if !ok {
		return domain.Project{}, errors.Wrapf(domain.ErrUnknownSelection, "project %q", choices[0])
	}
	return project, nil
}
