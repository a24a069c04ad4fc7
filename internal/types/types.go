// Package types defines every cross‑package data structure used by the ftg CLI.
package types

// EntryKind classifies a directory listing item.
type EntryKind int

const (
	// EntryKindFile marks anything that is not a directory, including symbolic links.
	EntryKindFile EntryKind = iota
	// EntryKindDirectory marks a directory that the renderer descends into.
	EntryKindDirectory
)

const (
	entryKindFileLabel      = "File"
	entryKindDirectoryLabel = "Directory"
)

// String returns the label written inside the brackets of a rendered line.
func (kind EntryKind) String() string {
	if kind == EntryKindDirectory {
		return entryKindDirectoryLabel
	}
	return entryKindFileLabel
}

// DirectoryEntry is one item of a directory listing.
type DirectoryEntry struct {
	Name string
	Kind EntryKind
}

// IsDir reports whether the entry is a directory.
func (entry DirectoryEntry) IsDir() bool {
	return entry.Kind == EntryKindDirectory
}
