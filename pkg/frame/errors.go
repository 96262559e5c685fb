package frame

import (
	"errors"
	"fmt"
)

// ErrMissingFilename is returned when a table is saved without a file name.
var ErrMissingFilename = errors.New("frame: save requested without a filename")

// ColumnNotFoundError is returned when an index or drop column does not exist.
type ColumnNotFoundError struct {
	Column string
	Op     string // "index" or "drop"
}

func (e *ColumnNotFoundError) Error() string {
	if e.Op == "index" {
		return fmt.Sprintf("couldn't find %s in data columns", e.Column)
	}
	return fmt.Sprintf("%s: column %q not found", e.Op, e.Column)
}

// UnsupportedFormatError is returned by the persister for unknown datatypes.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported datatype %q: use one of csv, xlsx, html", e.Format)
}

// DateParseError is returned when a value in a date index cannot be parsed.
type DateParseError struct {
	Column string
	Value  any
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("column %q: cannot parse %v as a date", e.Column, e.Value)
}

// NumberFormatError is returned for an unknown numeric rescaling mode.
type NumberFormatError struct {
	Format string
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("unsupported number format %q: use one of M, mil, B, bil", e.Format)
}
