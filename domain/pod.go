package domain

import "slices"

// WebPortName is the container port name that marks the deployable container of a pod
const WebPortName = "web"

// Container represents a container within a candidate pod
type Container struct {
	Name  string   `json:"name"`
	Ports []string `json:"ports"`
}

// HasPort reports whether the container exposes a port with the given name
func (c Container) HasPort(name string) bool {
	return slices.Contains(c.Ports, name)
}

// CandidatePod represents a running pod the operator may deploy to
type CandidatePod struct {
	ShortName     string      `json:"short_name"`
	QualifiedName string      `json:"qualified_name"`
	Namespace     string      `json:"namespace"`
	Containers    []Container `json:"containers"`
}

// TargetSelector groups the qualified names of the pods chosen for a deploy, in selection order
type TargetSelector struct {
	QualifiedNames []string `json:"qualified_names"`
}

// DeploymentTarget is a pod together with the container that receives the sync
type DeploymentTarget struct {
	Pod               *CandidatePod
	ResolvedContainer string
}

// SyncRequest describes a single push of the artifact directory into a pod
type SyncRequest struct {
	Source     string
	Pod        string
	Container  string
	RemotePath string
}
