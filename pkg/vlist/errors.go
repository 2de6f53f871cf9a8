package vlist

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by New.
var (
	// ErrNoTheme indicates the row template could not be loaded from the theme.
	ErrNoTheme = errors.New("row theme unavailable")

	// ErrNoItemSize indicates the row template measured a non-positive height.
	ErrNoItemSize = errors.New("row template has no height")
)

// Code is the distinguishable reason a list could not be constructed.
type Code int

const (
	CodeNone Code = iota
	CodeNoTheme
	CodeNoItemSize
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "NONE"
	case CodeNoTheme:
		return "NO_THEME"
	case CodeNoItemSize:
		return "NO_ITEM_SIZE"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// ConstructionError is returned by New when the list cannot be built. The
// list is unusable and New returns a nil handle alongside it.
type ConstructionError struct {
	Op  string // Step that failed (e.g., "load_theme", "measure_item")
	Err error  // Underlying error, wraps ErrNoTheme or ErrNoItemSize
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vlist: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vlist: %s", e.Op)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// IsConstructionError checks if an error came from a failed New.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}

// ErrorCode maps an error returned by New to its code.
func ErrorCode(err error) Code {
	switch {
	case err == nil:
		return CodeNone
	case errors.Is(err, ErrNoTheme):
		return CodeNoTheme
	case errors.Is(err, ErrNoItemSize):
		return CodeNoItemSize
	default:
		return CodeNone
	}
}
