// Package filesystem lists directory entries for the tree renderer and the interactive loop.
package filesystem

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/afero"

	"github.com/temirov/ftg/internal/types"
)

const (
	// errorOpenDirectoryFormat is used when a directory cannot be opened.
	errorOpenDirectoryFormat = "opening directory %s: %w"
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorCloseDirectoryFormat is used when a directory handle cannot be closed.
	errorCloseDirectoryFormat = "closing directory %s: %w"

	readAllEntries = -1
)

// Ordering selects how listed entries are arranged.
type Ordering int

const (
	// OrderingListing keeps whatever order the filesystem yields.
	OrderingListing Ordering = iota
	// OrderingNatural sorts entries by name using natural number ordering.
	OrderingNatural
)

// Lister returns the immediate entries of a directory.
type Lister interface {
	List(directoryPath string) ([]types.DirectoryEntry, error)
}

// AferoLister implements Lister on top of an afero filesystem.
type AferoLister struct {
	fileSystem afero.Fs
	ordering   Ordering
}

// NewAferoLister constructs a lister for the provided filesystem.
func NewAferoLister(fileSystem afero.Fs, ordering Ordering) *AferoLister {
	return &AferoLister{fileSystem: fileSystem, ordering: ordering}
}

// NewOSLister constructs a lister backed by the operating system filesystem.
func NewOSLister(ordering Ordering) *AferoLister {
	return NewAferoLister(afero.NewOsFs(), ordering)
}

// List reads every entry under directoryPath. Entry kinds come from lstat, so symbolic
// links are reported as files and never followed. Entries removed between reading the
// directory and inspecting them are dropped by the underlying Readdir.
func (lister *AferoLister) List(directoryPath string) (entries []types.DirectoryEntry, err error) {
	directoryHandle, openError := lister.fileSystem.Open(directoryPath)
	if openError != nil {
		return nil, fmt.Errorf(errorOpenDirectoryFormat, directoryPath, openError)
	}
	defer func() {
		if closeError := directoryHandle.Close(); closeError != nil && err == nil {
			err = fmt.Errorf(errorCloseDirectoryFormat, directoryPath, closeError)
		}
	}()

	fileInformationList, readError := directoryHandle.Readdir(readAllEntries)
	if readError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readError)
	}

	entries = make([]types.DirectoryEntry, 0, len(fileInformationList))
	for _, fileInformation := range fileInformationList {
		entries = append(entries, newDirectoryEntry(fileInformation))
	}

	if lister.ordering == OrderingNatural {
		sort.SliceStable(entries, func(left, right int) bool {
			return natural.Less(entries[left].Name, entries[right].Name)
		})
	}
	return entries, nil
}

func newDirectoryEntry(fileInformation os.FileInfo) types.DirectoryEntry {
	kind := types.EntryKindFile
	if fileInformation.Mode().IsDir() {
		kind = types.EntryKindDirectory
	}
	return types.DirectoryEntry{Name: fileInformation.Name(), Kind: kind}
}

var _ Lister = (*AferoLister)(nil)
