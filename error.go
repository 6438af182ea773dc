package ucr

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/token"
)

var (
	ErrMissingID      = errors.New("missing id field")
	ErrConflictingID  = errors.New("conflicting id fields")
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidAction  = errors.New("invalid action")
	ErrIDConversion   = errors.New("id conversion error")
)

// MissingIDError is returned when an object resolves to an update or remove but has no field tagged
// ActionID.
type MissingIDError struct {
	Table       string
	Index       int // position of the object in a Many table, or -1 for a Single table.
	Disposition Disposition
}

func (e *MissingIDError) Error() string {
	return fmt.Sprintf("%s: %s object without an ID field", objectLocation(e.Table, e.Index), e.Disposition)
}

func (e *MissingIDError) Is(target error) bool {
	return target == ErrMissingID
}

// ConflictingIDError is returned when more than one field of an object is tagged ActionID.
type ConflictingIDError struct {
	Table  string
	Index  int // position of the object in a Many table, or -1 for a Single table.
	Fields []string
}

func (e *ConflictingIDError) Error() string {
	return fmt.Sprintf("%s: more than one ID field: %v", objectLocation(e.Table, e.Index), e.Fields)
}

func (e *ConflictingIDError) Is(target error) bool {
	return target == ErrConflictingID
}

// MalformedInputError is returned when the input is not shaped as a [FormInput].
type MalformedInputError struct {
	Table  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("malformed input: %s", e.Reason)
	}
	return fmt.Sprintf("table '%s': malformed input: %s", e.Table, e.Reason)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// IDConversionError is returned when an [IDConverter] fails.
type IDConversionError struct {
	Table string
	Index int
	Field string
	Err   error
}

func (e *IDConversionError) Error() string {
	return fmt.Sprintf("%s: error converting id field '%s': %s", objectLocation(e.Table, e.Index), e.Field, e.Err)
}

func (e *IDConversionError) Is(target error) bool {
	return target == ErrIDConversion
}

func (e *IDConversionError) Unwrap() error {
	return e.Err
}

type TokenPosition = token.Position

// ParseError is returned when a form document can't be parsed.
type ParseError struct {
	ErrorMessage string
	Path         string
	Position     *TokenPosition
	Err          error
}

func NewParseError(msg string, path string, position *TokenPosition) ParseError {
	return ParseError{
		ErrorMessage: msg,
		Path:         path,
		Position:     position,
	}
}

// NewParseErrorWrap creates a ParseError wrapping another error.
func NewParseErrorWrap(err error, path string, position *TokenPosition) ParseError {
	return ParseError{
		ErrorMessage: err.Error(),
		Path:         path,
		Position:     position,
		Err:          err,
	}
}

func (e ParseError) Error() string {
	if e.Position != nil {
		return fmt.Sprintf("%s (line %d, column %d): %s", e.Path, e.Position.Line, e.Position.Column, e.ErrorMessage)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.ErrorMessage)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

func objectLocation(table string, index int) string {
	if index < 0 {
		return fmt.Sprintf("table '%s'", table)
	}
	return fmt.Sprintf("table '%s' row %d", table, index)
}
