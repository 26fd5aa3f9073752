package csvimport

import (
	"errors"
	"fmt"
)

// File level failures. Nothing is imported when one of these is returned.
var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
	ErrMissingHeader   = errors.New("file has no header row")
	ErrTooManyRows     = errors.New("file exceeds the maximum number of rows")
)

// Row error codes
const (
	CodeRequired  = "REQUIRED"
	CodeType      = "INVALID_TYPE"
	CodeLength    = "INVALID_LENGTH"
	CodeRange     = "OUT_OF_RANGE"
	CodeReference = "NOT_FOUND"
	CodeMalformed = "MALFORMED_ROW"
)

// RowError is a problem with one cell. Row is the 1-based line number in
// the file, so the header is row 1.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (e RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return fmt.Sprintf("row %d, column %q: %s", e.Row, e.Column, e.Message)
}

// Errors collects row errors up to a limit and keeps counting past it
type Errors struct {
	items []RowError
	max   int
	total int
}

// NewErrors keeps at most max errors. Zero or less means 100.
func NewErrors(max int) *Errors {
	if max <= 0 {
		max = 100
	}
	return &Errors{max: max}
}

// Add records err
func (e *Errors) Add(err RowError) {
	e.total++
	if len(e.items) < e.max {
		e.items = append(e.items, err)
	}
}

// Items returns the kept errors in the order they were added
func (e *Errors) Items() []RowError {
	return e.items
}

// Total counts every error, including those past the limit
func (e *Errors) Total() int {
	return e.total
}

// Empty reports whether nothing was added
func (e *Errors) Empty() bool {
	return e.total == 0
}

// Truncated reports whether errors were dropped
func (e *Errors) Truncated() bool {
	return e.total > len(e.items)
}
