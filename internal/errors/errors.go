// Package errors provides sentinel errors and error types for the chess engine's
// outer layers. The rules engine itself never fails: illegal requests are
// no-ops. These values describe why a transport, config or diagram request
// could not be served, and support inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a square index outside 0-63.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidDiagram indicates a malformed board diagram.
	ErrInvalidDiagram = errors.New("invalid board diagram")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLegalMoves indicates the side to move has no legal move.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrEmptyHistory indicates an undo with nothing to undo.
	ErrEmptyHistory = errors.New("empty move history")

	// ErrSearchCancelled indicates a queued search that was never started.
	ErrSearchCancelled = errors.New("search cancelled")

	// ErrSearchMismatch indicates a pruned search that disagreed with
	// exhaustive minimax.
	ErrSearchMismatch = errors.New("search disagrees with minimax")
)

// MoveError wraps errors with game context: the ply at which a move request
// failed and the move itself. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // Ply number of the rejected move (0 if not applicable)
	Move string // The move that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a diagram or config parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	loc := e.File
	if e.Line > 0 {
		if loc != "" {
			loc += ":"
		} else {
			loc = "line "
		}
		loc += fmt.Sprintf("%d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context and a stack trace to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	return pkgerrors.Wrap(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return pkgerrors.Is(err, target)
}

// Cause returns the innermost error of a chain built with Wrap.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
