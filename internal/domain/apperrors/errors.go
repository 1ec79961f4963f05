// Package apperrors defines the error kinds reported to users of the scorer.
//
// Every kind has a sentinel (for errors.Is) and, where extra context helps,
// a typed error (for errors.As). None of them are fatal.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFile  = errors.New("missing file")
	ErrMissingInput = errors.New("missing input")
	ErrItemNotFound = errors.New("item not found")
	ErrParse        = errors.New("unable to read spreadsheet")
)

// MissingFileError is returned when an operation needs a dataset that was never imported.
type MissingFileError struct {
	Kinds []string // e.g. ["sales", "purchases"]
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("please import the %s file(s) first", strings.Join(e.Kinds, " and "))
}

func (e *MissingFileError) Unwrap() error { return ErrMissingFile }

// ItemNotFoundError reports an item code absent from one or both aggregates.
type ItemNotFoundError struct {
	Code        string
	InSales     bool
	InPurchases bool
}

func (e *ItemNotFoundError) Error() string {
	var missing []string
	if !e.InSales {
		missing = append(missing, "sales")
	}
	if !e.InPurchases {
		missing = append(missing, "purchases")
	}
	return fmt.Sprintf("item %q not found in %s data", e.Code, strings.Join(missing, " and "))
}

func (e *ItemNotFoundError) Unwrap() error { return ErrItemNotFound }

// ParseError is the catch-all for malformed spreadsheets, unexpected column
// layouts and I/O failures. Row is 1-based and zero when not row specific.
type ParseError struct {
	Source string
	Row    int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// MissingInput builds the error returned for an empty item field.
func MissingInput(field string) error {
	return fmt.Errorf("%w: please enter an %s", ErrMissingInput, field)
}
