package interactive

import "fmt"

// println and printf remember the first write failure so a transition can report it once.
func (session *Session) println(text string) {
	if session.pendingWriteError != nil {
		return
	}
	_, session.pendingWriteError = fmt.Fprintln(session.writer, text)
}

func (session *Session) printf(format string, arguments ...any) {
	if session.pendingWriteError != nil {
		return
	}
	_, session.pendingWriteError = fmt.Fprintf(session.writer, format, arguments...)
}

func (session *Session) writeError() error {
	if session.pendingWriteError == nil {
		return nil
	}
	writeFailure := session.pendingWriteError
	session.pendingWriteError = nil
	return fmt.Errorf(errorWriteFormat, writeFailure)
}
