package question

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the data file does not exist.
var ErrFileNotFound = errors.New("data file not found")

// ErrEmptyDataset indicates the data file parsed to zero records.
var ErrEmptyDataset = errors.New("data file contains no questions")

// ErrInvalidEncoding indicates the data file is not UTF-8 (or BOM-marked UTF-16).
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// ParseError reports a data file that could not be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// Error returns a readable message including the line when known.
func (err *ParseError) Error() string {
	if err == nil {
		return ""
	}
	prefix := "parse data file"
	if err.Path != "" {
		prefix += " " + err.Path
	}
	if err.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", prefix, err.Line, err.Err)
	}
	return fmt.Sprintf("%s: %v", prefix, err.Err)
}

// Unwrap exposes the underlying cause.
func (err *ParseError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}
