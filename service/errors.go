package service

import (
	"errors"
	"fmt"
)

// Error kinds carried on every failure leaving the service layer. The HTTP
// boundary switches on these with errors.Is and never inspects message text.
// Anything not wrapping one of them is an internal failure.
var (
	// ErrInvalid marks malformed or missing caller input.
	ErrInvalid = errors.New("invalid request")

	// ErrNotFound marks a folder/document that does not exist or is not owned
	// by the caller. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a sibling-name collision, a non-empty-folder delete,
	// or a move that would create a cycle.
	ErrConflict = errors.New("conflict")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}

func notFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

func conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}
