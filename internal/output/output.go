// Package output formats rendered tree lines and the optional markdown frame around them.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/ftg/internal/types"
)

const (
	treeBranchConnector = "├──"
	treeLastConnector   = "└──"
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	entryLineFormat = "%s%s [%s] %s\n"

	markdownHeaderFormat = "# File Tree\n\nPath to Directory: %s\n\n```sh\n"
	markdownFooter       = "```\n"

	// errorWriteEntryFormat is used when a tree line cannot be written.
	errorWriteEntryFormat = "writing entry %s: %w"
	// errorWriteMarkdownFormat is used when the markdown frame cannot be written.
	errorWriteMarkdownFormat = "writing markdown frame: %w"
)

// EntryConnector returns the box-drawing connector for an entry.
// The last entry of a raw directory listing closes the branch.
func EntryConnector(isLast bool) string {
	if isLast {
		return treeLastConnector
	}
	return treeBranchConnector
}

// ChildIndentation returns the prefix used for the children of an entry rendered at indentation.
func ChildIndentation(indentation string, isLast bool) string {
	if isLast {
		return indentation + treeLastPadding
	}
	return indentation + treeBranchPadding
}

// FormatEntryLine returns the rendered line for entry, including the trailing newline.
func FormatEntryLine(indentation string, entry types.DirectoryEntry, isLast bool) string {
	return fmt.Sprintf(entryLineFormat, indentation, EntryConnector(isLast), entry.Kind, entry.Name)
}

// WriteEntryLine writes the rendered line for entry to writer.
func WriteEntryLine(writer io.Writer, indentation string, entry types.DirectoryEntry, isLast bool) error {
	if _, writeError := io.WriteString(writer, FormatEntryLine(indentation, entry, isLast)); writeError != nil {
		return fmt.Errorf(errorWriteEntryFormat, entry.Name, writeError)
	}
	return nil
}

// WriteMarkdownHeader opens the markdown frame naming directoryPath as the listed location.
func WriteMarkdownHeader(writer io.Writer, directoryPath string) error {
	if _, writeError := fmt.Fprintf(writer, markdownHeaderFormat, directoryPath); writeError != nil {
		return fmt.Errorf(errorWriteMarkdownFormat, writeError)
	}
	return nil
}

// WriteMarkdownFooter closes the fenced block opened by WriteMarkdownHeader.
func WriteMarkdownFooter(writer io.Writer) error {
	if _, writeError := io.WriteString(writer, markdownFooter); writeError != nil {
		return fmt.Errorf(errorWriteMarkdownFormat, writeError)
	}
	return nil
}
