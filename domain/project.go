package domain

import (
	"sort"
	"strings"
)

const (
	// RootProjectLabel is the display name of the synthetic entry for the top level project
	RootProjectLabel = ": <root project>"
	// RootProjectID is the build tool's identifier for the top level project
	RootProjectID = ""
)

// Project is a build tool subproject the operator can deploy
type Project struct {
	DisplayName     string
	BuildIdentifier string
}

// ProjectSet maps display names to build identifiers. It always contains the root project.
type ProjectSet map[string]string

// NewProjectSet builds a set from discovered identifiers and injects the root project.
func NewProjectSet(identifiers []string) ProjectSet {
	set := make(ProjectSet, len(identifiers)+1)
	for _, id := range identifiers {
		set[id] = id
	}
	set[RootProjectLabel] = RootProjectID
	return set
}

// DisplayNames returns the display names in sorted order
func (s ProjectSet) DisplayNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the project for a display name
func (s ProjectSet) Lookup(displayName string) (Project, bool) {
	id, ok := s[displayName]
	if !ok {
		return Project{}, false
	}
	return Project{DisplayName: displayName, BuildIdentifier: id}, true
}

// NormalizeProjectID maps an operator supplied project identifier to the build tool's form.
// A lone ":" names the root project.
func NormalizeProjectID(id string) string {
	id = strings.TrimSpace(id)
	if id == ":" {
		return RootProjectID
	}
	return id
}
