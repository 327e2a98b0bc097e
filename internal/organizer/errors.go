package organizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDirectoryUnreadable marks a root path that cannot be listed. It is
	// fatal to a run.
	ErrDirectoryUnreadable = errors.New("directory unreadable")
	// ErrCancelled marks a run the user declined at the confirmation gate.
	// It is a terminal outcome, not a failure.
	ErrCancelled = errors.New("operation cancelled")
)

// wrap tags err with marker so callers can classify it with errors.Is while
// keeping the operation and subject in the message.
func wrap(marker error, operation, subject string, err error) error {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if subject = strings.TrimSpace(subject); subject != "" {
		parts = append(parts, subject)
	}
	detail := strings.Join(parts, ": ")
	if detail == "" {
		detail = "organizer failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
