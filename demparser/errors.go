// This file contains the error types of the parser.

package demparser

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDemoFile indicates the given input is not a valid
	// Source-engine demo file.
	ErrNotDemoFile = errors.New("not a demo file")

	// ErrParsing indicates that an unexpected error occurred, which may be
	// due to corrupt / invalid demo file, or some implementation error.
	ErrParsing = errors.New("parsing")
)

// UnknownCommandError is returned when the message framer encounters an
// undefined top-level command tag.
type UnknownCommandError struct {
	// Tag is the unknown command tag
	Tag byte
}

// Error implements error.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown demo command: %#x", e.Tag)
}

// UnknownMessageTypeError is returned when the packet decoder encounters an
// undefined message type whose size is not self-describing.
type UnknownMessageTypeError struct {
	// Tag is the unknown message type
	Tag byte
}

// Error implements error.
func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown packet message type: %#x", e.Tag)
}

// InvalidSendTableError is returned when the data tables section is
// malformed.
type InvalidSendTableError struct {
	// Table the error relates to, if known
	Table string

	// Reason of the failure
	Reason string
}

// Error implements error.
func (e *InvalidSendTableError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("invalid send table: %s", e.Reason)
	}
	return fmt.Sprintf("invalid send table %q: %s", e.Table, e.Reason)
}

// InvalidStringTableUpdateError is returned when a string table create or
// update violates the table's invariants.
type InvalidStringTableUpdateError struct {
	// Table the error relates to
	Table string

	// Reason of the failure
	Reason string
}

// Error implements error.
func (e *InvalidStringTableUpdateError) Error() string {
	return fmt.Sprintf("invalid string table update for %q: %s", e.Table, e.Reason)
}

// MalformedEntityUpdateError is returned when a packet entities message
// cannot be applied: class id out of range, unknown entity delta or
// property index beyond the flat table bounds.
type MalformedEntityUpdateError struct {
	// EntityIndex the error relates to
	EntityIndex uint16

	// Reason of the failure
	Reason string
}

// Error implements error.
func (e *MalformedEntityUpdateError) Error() string {
	return fmt.Sprintf("malformed entity update (entity %d): %s", e.EntityIndex, e.Reason)
}
