// Package commands contains the tree rendering logic behind the ftg command.
package commands

import (
	"fmt"
	"io"

	"github.com/temirov/ftg/internal/output"
	"github.com/temirov/ftg/internal/types"
)

const (
	// childPathSeparator joins a directory path and an entry name.
	childPathSeparator = "/"

	// errorListDirectoryFormat is used when a directory cannot be listed.
	errorListDirectoryFormat = "listing %s: %w"
)

// Render writes one line per visible entry below rootPath, depth-first with each
// directory before its children. The last-sibling decision is made against the raw
// listing, so an excluded trailing entry leaves its predecessors on the open-branch
// connector. Any listing or write failure aborts the traversal.
func (treeRenderer *TreeRenderer) Render(writer io.Writer, rootPath string, indentation string) error {
	directoryEntries, listError := treeRenderer.Lister.List(rootPath)
	if listError != nil {
		return fmt.Errorf(errorListDirectoryFormat, rootPath, listError)
	}

	entryCount := len(directoryEntries)
	for entryIndex, directoryEntry := range directoryEntries {
		isLast := entryIndex == entryCount-1
		if renderError := treeRenderer.renderEntry(writer, directoryEntry, rootPath, indentation, isLast); renderError != nil {
			return renderError
		}
	}
	return nil
}

// renderEntry emits the line for a single entry and descends into directories.
func (treeRenderer *TreeRenderer) renderEntry(writer io.Writer, directoryEntry types.DirectoryEntry, parentPath string, indentation string, isLast bool) error {
	if treeRenderer.Exclusions.Contains(directoryEntry.Name) {
		return nil
	}

	if writeError := output.WriteEntryLine(writer, indentation, directoryEntry, isLast); writeError != nil {
		return writeError
	}

	if !directoryEntry.IsDir() {
		return nil
	}
	childPath := parentPath + childPathSeparator + directoryEntry.Name
	return treeRenderer.Render(writer, childPath, output.ChildIndentation(indentation, isLast))
}
