// Package interactive implements the prompt loop that edits the exclusion set
// from the immediate children of the root directory before a tree is rendered.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/temirov/ftg/internal/exclusion"
	"github.com/temirov/ftg/internal/filesystem"
	"github.com/temirov/ftg/internal/types"
)

const (
	listingHeader      = "List of files and directories in the current directory:"
	listingLineFormat  = "[%d] %s\n"
	identifierPrompt   = "Enter space-separated numbers of items to exclude, type 'clear' to clear the exclusion list, or '-<ID>' to remove an item from the exclusion list:"
	exclusionHeader    = "Current exclusion list:"
	actionPrompt       = "Do you want to add more items (m), generate the file tree (y), or clear the exclusion list (c)?"
	clearedMessage     = "Exclusion list cleared."
	addedMessageFormat = "Added %s to exclusion list.\n"
	removedFormat      = "Removed %s from exclusion list.\n"
	invalidIDFormat    = "Invalid ID: %s\n"
	invalidChoice      = "Invalid choice."

	clearCommand    = "clear"
	removalPrefix   = "-"
	choiceGenerate  = "y"
	choiceClear     = "c"
	choiceAddMore   = "m"
	lineTerminator  = '\n'
	firstIdentifier = 1

	// errorListRootFormat is used when the root directory cannot be listed.
	errorListRootFormat = "listing %s: %w"
	// errorReadLineFormat is used when standard input cannot be read.
	errorReadLineFormat = "reading interactive input: %w"
	// errorWriteFormat is used when a prompt cannot be written.
	errorWriteFormat = "writing interactive output: %w"
)

// State identifies the step the session performs next.
type State int

const (
	// StateListing re-lists the root directory and numbers its entries.
	StateListing State = iota
	// StateAwaitingIdentifiers reads the identifiers to add or remove.
	StateAwaitingIdentifiers
	// StateAwaitingAction reads the menu choice.
	StateAwaitingAction
	// StateDone means the user asked to generate the tree.
	StateDone
)

// ErrSessionDone is returned by Step once the session has finished.
var ErrSessionDone = errors.New("interactive session already finished")

// Options configures a Session.
type Options struct {
	Input      io.Reader
	Output     io.Writer
	Lister     filesystem.Lister
	Exclusions *exclusion.Set
	RootPath   string
	Styled     bool
}

// Session edits an exclusion set through a line-oriented dialogue.
type Session struct {
	reader     *bufio.Reader
	writer     io.Writer
	lister     filesystem.Lister
	exclusions *exclusion.Set
	rootPath   string
	styles     promptStyles
	state      State
	entries    []types.DirectoryEntry

	pendingWriteError error
}

// NewSession constructs a session positioned at StateListing.
func NewSession(options Options) *Session {
	return &Session{
		reader:     bufio.NewReader(options.Input),
		writer:     options.Output,
		lister:     options.Lister,
		exclusions: options.Exclusions,
		rootPath:   options.RootPath,
		styles:     newPromptStyles(options.Styled),
		state:      StateListing,
	}
}

// State returns the step the session performs next.
func (session *Session) State() State {
	return session.state
}

// Run performs transitions until the user chooses to generate the tree.
func (session *Session) Run() error {
	for session.state != StateDone {
		if stepError := session.Step(); stepError != nil {
			return stepError
		}
	}
	return nil
}

// Step performs exactly one transition of the state machine.
func (session *Session) Step() error {
	switch session.state {
	case StateListing:
		return session.listEntries()
	case StateAwaitingIdentifiers:
		return session.applyIdentifiers()
	case StateAwaitingAction:
		return session.applyAction()
	default:
		return ErrSessionDone
	}
}

// listEntries prints the numbered children of the root as they exist right now.
func (session *Session) listEntries() error {
	entries, listError := session.lister.List(session.rootPath)
	if listError != nil {
		return fmt.Errorf(errorListRootFormat, session.rootPath, listError)
	}
	session.entries = entries

	session.println(session.styles.header(listingHeader))
	for entryIndex, entry := range entries {
		session.printf(listingLineFormat, entryIndex+firstIdentifier, entry.Name)
	}
	session.state = StateAwaitingIdentifiers
	return session.writeError()
}

// applyIdentifiers reads one line of identifiers and edits the exclusion set.
func (session *Session) applyIdentifiers() error {
	session.println(session.styles.prompt(identifierPrompt))
	line, readError := session.readLine()
	if readError != nil {
		return readError
	}

	if line == clearCommand {
		session.exclusions.Clear()
		session.println(clearedMessage)
	} else {
		for _, token := range strings.Fields(line) {
			session.applyIdentifier(token)
		}
	}

	session.println(session.styles.header(exclusionHeader))
	for _, name := range session.exclusions.Names() {
		session.println(name)
	}
	session.state = StateAwaitingAction
	return session.writeError()
}

// applyIdentifier adds or removes the entry named by a single token.
// Tokens that do not name a listed entry are reported and skipped.
func (session *Session) applyIdentifier(token string) {
	removal := strings.HasPrefix(token, removalPrefix)
	entry, found := session.lookupEntry(strings.TrimPrefix(token, removalPrefix))
	if !found {
		session.printf(invalidIDFormat, token)
		return
	}
	if removal {
		session.exclusions.Remove(entry.Name)
		session.printf(removedFormat, entry.Name)
		return
	}
	session.exclusions.Add(entry.Name)
	session.printf(addedMessageFormat, entry.Name)
}

// lookupEntry resolves a 1-based identifier against the latest listing.
func (session *Session) lookupEntry(identifier string) (types.DirectoryEntry, bool) {
	position, parseError := strconv.Atoi(identifier)
	if parseError != nil || position < firstIdentifier || position > len(session.entries) {
		return types.DirectoryEntry{}, false
	}
	return session.entries[position-firstIdentifier], true
}

// applyAction reads the menu choice and selects the next state.
func (session *Session) applyAction() error {
	session.println(session.styles.prompt(actionPrompt))
	choice, readError := session.readLine()
	if readError != nil {
		return readError
	}

	switch choice {
	case choiceGenerate:
		session.state = StateDone
	case choiceClear:
		session.exclusions.Clear()
		session.println(clearedMessage)
		session.state = StateListing
	case choiceAddMore:
		session.state = StateListing
	default:
		session.println(invalidChoice)
		session.state = StateListing
	}
	return session.writeError()
}

// readLine returns the next trimmed input line. A final line without a terminator
// is accepted; end of input before any data is an error.
func (session *Session) readLine() (string, error) {
	line, readError := session.reader.ReadString(lineTerminator)
	if readError != nil && !(errors.Is(readError, io.EOF) && line != "") {
		return "", fmt.Errorf(errorReadLineFormat, readError)
	}
	return strings.TrimSpace(line), nil
}
