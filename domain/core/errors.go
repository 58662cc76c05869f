package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrNotFound = errors.New("file not found")
	ErrParse    = errors.New("malformed table")
	ErrFormat   = errors.New("ambiguous column format")

	// Column lookup errors
	ErrUnknownColumn = errors.New("unknown column")

	// Export errors
	ErrEmptySelection = errors.New("column selection is empty")
)

// Error constructors with context
func NewNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

func NewParseError(source string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrParse, source, reason)
}

// NewParseErrorAt reports a malformed record; line is 1-based and counts the header.
func NewParseErrorAt(source string, line int, err error) error {
	return fmt.Errorf("%w: %s line %d: %v", ErrParse, source, line, err)
}

func NewFormatError(column string, token string, row int) error {
	return fmt.Errorf("%w: column %q mostly numeric but row %d holds %q", ErrFormat, column, row, token)
}

func NewUnknownColumnError(column string, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	return fmt.Errorf("%w: %q %s", ErrUnknownColumn, column, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

func IsUnknownColumnError(err error) bool {
	return errors.Is(err, ErrUnknownColumn)
}

// IsInputError reports whether err stems from the file contents rather than caller misuse.
func IsInputError(err error) bool {
	return IsNotFoundError(err) || IsParseError(err) || IsFormatError(err)
}
