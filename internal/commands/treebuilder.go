package commands

import (
	"github.com/temirov/ftg/internal/exclusion"
	"github.com/temirov/ftg/internal/filesystem"
)

// TreeRenderer renders directory trees using the configured lister and exclusions.
type TreeRenderer struct {
	Lister     filesystem.Lister
	Exclusions *exclusion.Set
}

// NewTreeRenderer constructs a TreeRenderer.
func NewTreeRenderer(lister filesystem.Lister, exclusions *exclusion.Set) *TreeRenderer {
	return &TreeRenderer{Lister: lister, Exclusions: exclusions}
}
