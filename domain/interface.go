package domain

import (
	"context"
)

// RepoLocator finds the source control root enclosing a directory
type RepoLocator interface {
	// Toplevel returns the root of the repository that contains dir
	Toplevel(ctx context.Context, dir string) (string, error)
}

// BuildTool drives the external build tool. Errors carry the tool's exit code.
type BuildTool interface {
	// ListProjects returns the raw project identifiers scraped from the project listing
	ListProjects(ctx context.Context, root string) ([]string, error)
	// Compile compiles the project, running the clean task first when clean is set
	Compile(ctx context.Context, root string, project string, clean bool) error
	// ResolveBuildDirs returns every build directory value scraped from the property listing
	ResolveBuildDirs(ctx context.Context, root string, project string) ([]string, error)
}

// ClusterAdapter enumerates deployment targets
type ClusterAdapter interface {
	// Verify checks that the cluster is reachable with the current credentials
	Verify(ctx context.Context) error
	// ListPods returns every pod currently reachable in the namespace
	ListPods(ctx context.Context) ([]*CandidatePod, error)
	// GetPod returns the pod with the given qualified name
	GetPod(ctx context.Context, qualifiedName string) (*CandidatePod, error)
}

// Syncer pushes a local directory into a running container
type Syncer interface {
	Sync(ctx context.Context, req SyncRequest) error
}

// TokenSource queries the cluster CLI for the current session token
type TokenSource interface {
	WhoAmIToken(ctx context.Context) (string, error)
}

// SelectOptions tunes an interactive selection
type SelectOptions struct {
	Query  string
	Multi  bool
	Header string
}

// Selector lets the operator pick from a list of options.
// It returns ErrSelectionAborted when the operator makes no choice.
type Selector interface {
	Select(ctx context.Context, options []string, opts SelectOptions) ([]string, error)
}
