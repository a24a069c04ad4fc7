// Package clipboard copies rendered trees to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

const errorCopyFormat = "copying tree to clipboard: %w"

// ErrUnavailable reports that no clipboard utility exists on this system.
var ErrUnavailable = errors.New("clipboard is not available on this system")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	writeAll    func(text string) error
	unsupported func() bool
}

// NewService constructs a Service bound to the system clipboard.
func NewService() *Service {
	return &Service{
		writeAll:    clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if service.unsupported != nil && service.unsupported() {
		return ErrUnavailable
	}
	if writeError := service.writeAll(text); writeError != nil {
		return fmt.Errorf(errorCopyFormat, writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
