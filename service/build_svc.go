package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/errs"
	"github.com/swatchdog/swatchdog/pkg/logger"
)

// BuildProject compiles project and returns the separator-terminated directory holding
// its compiled classes. The trailing separator makes the sync copy the directory's
// contents rather than the directory itself.
func (svc *Service) BuildProject(ctx context.Context, project string, root string, clean bool) (string, error) {
	log := logger.Logger(ctx)
	log.Info().Msg("Running build")
	if err := svc.BuildTool.Compile(ctx, root, project, clean); err != nil {
		return "", errs.WithKind(err, domain.ErrBuildFailed)
	}

	matches, err := svc.BuildTool.ResolveBuildDirs(ctx, root, project)
	if err != nil {
		return "", errs.WithKind(err, domain.ErrBuildDirUnresolved)
	}
	if len(matches) != 1 {
		return "", errs.NewValidationError(domain.ErrBuildDirUnresolved, matches,
			"expected exactly one build directory for project %q, found %d", project, len(matches))
	}

	dir := artifactDir(matches[0], svc.artifactSubdir)
	exists, err := afero.DirExists(svc.Fs, dir)
	if err != nil {
		return "", errs.NewValidationError(domain.ErrArtifactDirMissing, []string{dir}, "%v", err)
	}
	if !exists {
		return "", errs.NewValidationError(domain.ErrArtifactDirMissing, []string{dir}, "compiled classes not found")
	}
	log.Debug().Msgf("artifact directory is %s", dir)
	return dir, nil
}

func artifactDir(buildDir string, subdir string) string {
	dir := filepath.Join(buildDir, filepath.FromSlash(subdir))
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return dir
}
