// Package exclusion holds the set of exact entry names skipped while rendering a tree.
package exclusion

import (
	"sort"
	"strings"

	"github.com/maruel/natural"
)

const patternSeparator = ","

// defaultNames lists common build and version-control artifacts that are never rendered.
var defaultNames = []string{
	"node_modules",
	".next",
	".vscode",
	".idea",
	".git",
	"target",
	"Cargo.lock",
	"zig-cache",
	"zig-out",
	"vendor",
	"go.sum",
	"DerivedData",
	".svelte-kit",
}

// Set is a collection of exact, case-sensitive entry names.
// Matching compares base names only; there is no glob or path semantics.
type Set struct {
	names map[string]struct{}
}

// New returns a set holding the provided names.
func New(names ...string) *Set {
	set := &Set{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Default returns a fresh set populated with the built-in artifact names.
func Default() *Set {
	return New(defaultNames...)
}

// AddFromCSV splits patterns on commas and inserts every segment verbatim.
// Segments are not trimmed, so an empty segment inserts the empty name.
func (set *Set) AddFromCSV(patterns string) {
	for _, pattern := range strings.Split(patterns, patternSeparator) {
		set.Add(pattern)
	}
}

// Add inserts name into the set.
func (set *Set) Add(name string) {
	if set.names == nil {
		set.names = make(map[string]struct{})
	}
	set.names[name] = struct{}{}
}

// Remove deletes name from the set. Removing an absent name is a no-op.
func (set *Set) Remove(name string) {
	delete(set.names, name)
}

// Clear removes every name.
func (set *Set) Clear() {
	set.names = make(map[string]struct{})
}

// Merge inserts every name of other.
func (set *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for name := range other.names {
		set.Add(name)
	}
}

// Contains reports whether name is excluded.
func (set *Set) Contains(name string) bool {
	if set == nil {
		return false
	}
	_, present := set.names[name]
	return present
}

// Len returns the number of names in the set.
func (set *Set) Len() int {
	if set == nil {
		return 0
	}
	return len(set.names)
}

// Names returns the members in natural order.
func (set *Set) Names() []string {
	if set == nil {
		return nil
	}
	names := make([]string, 0, len(set.names))
	for name := range set.names {
		names = append(names, name)
	}
	sort.Slice(names, func(left, right int) bool {
		return natural.Less(names[left], names[right])
	})
	return names
}
