package entity

import (
	"errors"
	"fmt"

	"github.com/bnema/tilepane/internal/domain/event"
)

// Error classes. Every error produced by Layout matches exactly one of them with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrAlreadyExists      = errors.New("already exists")
)

// Specific failures, each wrapping one error class.
var (
	ErrRootNotClosable  = fmt.Errorf("root pane cannot be closed: %w", ErrInvalidState)
	ErrRootNotResizable = fmt.Errorf("root pane cannot be resized: %w", ErrInvalidState)
	ErrListenerNotFound = fmt.Errorf("pane %w: %w", event.ErrListenerNotFound, ErrNotFound)
	ErrUnknownEvent     = fmt.Errorf("unknown event kind: %w", ErrInvalidState)
	ErrInvalidSize      = fmt.Errorf("invalid pane size: %w", ErrInvalidState)
)

func paneNotFound(id PaneID) error {
	return fmt.Errorf("pane #%d does not exist: %w", id, ErrNotFound)
}

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariantViolation)
}
