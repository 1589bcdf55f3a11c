package domain

import "errors"

var (
	// environment
	ErrClusterUnreachable    = errors.New("could not communicate with the cluster, are you logged in?")
	ErrProjectRootUnresolved = errors.New("could not determine project root")
	ErrNoKubeConfig          = errors.New("kubernetes configuration not provided")

	// external processes
	ErrBuildToolError = errors.New("build tool project listing failed")
	ErrBuildFailed    = errors.New("build failed")
	ErrSyncFailed     = errors.New("sync to pod failed")

	// validation
	ErrBuildDirUnresolved = errors.New("ambiguous build location")
	ErrArtifactDirMissing = errors.New("no directory to sync class files from")
	ErrAmbiguousContainer = errors.New("could not determine container to deploy to")
	ErrPodNotFound        = errors.New("pod not found")

	// operator
	ErrSelectionAborted = errors.New("selection aborted")
	ErrUnknownSelection = errors.New("selection is not one of the offered options")
)
