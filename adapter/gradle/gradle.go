package gradle

import (
	"context"
	"regexp"

	"github.com/swatchdog/swatchdog/config"
	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/process"
	"github.com/swatchdog/swatchdog/pkg/watcher"
)

// ProjectPattern pulls the quoted identifier out of lines such as "+--- Project ':swatch-tally'".
// The "Project " marker is matched but only the group is reported.
const ProjectPattern = `Project '([:\w\-]+)'`

// Gradle drives a Gradle wrapper in the project root.
type Gradle struct {
	runner process.Runner
	cfg    config.BuildConfig
}

var _ domain.BuildTool = (*Gradle)(nil)

func NewGradle(runner process.Runner, cfg config.BuildConfig) *Gradle {
	if cfg.Wrapper == "" {
		cfg.Wrapper = "./gradlew"
	}
	if cfg.BuildDirProperty == "" {
		cfg.BuildDirProperty = "buildDir"
	}
	return &Gradle{runner: runner, cfg: cfg}
}

// BuildDirPattern returns the pattern that captures the value of a property in "gradle properties" output.
func BuildDirPattern(property string) string {
	return regexp.QuoteMeta(property) + `: (\S+)`
}

func (g *Gradle) ListProjects(ctx context.Context, root string) ([]string, error) {
	w := watcher.MustNew(ProjectPattern)
	_, err := g.runner.Run(ctx, process.Command{
		Name:     g.cfg.Wrapper,
		Args:     []string{"projects"},
		Dir:      root,
		Watchers: []process.Watcher{w},
	})
	if err != nil {
		return nil, err
	}
	return w.Matches(), nil
}

func (g *Gradle) Compile(ctx context.Context, root string, project string, clean bool) error {
	var args []string
	if clean {
		args = append(args, "clean")
	}
	args = append(args, task(project, "classes"))

	_, err := g.runner.Run(ctx, process.Command{
		Name: g.cfg.Wrapper,
		Args: args,
		Dir:  root,
	})
	return err
}

func (g *Gradle) ResolveBuildDirs(ctx context.Context, root string, project string) ([]string, error) {
	w, err := watcher.New(BuildDirPattern(g.cfg.BuildDirProperty))
	if err != nil {
		return nil, err
	}
	_, err = g.runner.Run(ctx, process.Command{
		Name:     g.cfg.Wrapper,
		Args:     []string{task(project, "properties"), "--property", g.cfg.BuildDirProperty},
		Dir:      root,
		Watchers: []process.Watcher{w},
	})
	if err != nil {
		return nil, err
	}
	return w.Matches(), nil
}

// task qualifies a task name with a project path. The root project's path is empty,
// which yields ":classes".
func task(project string, name string) string {
	return project + ":" + name
}
