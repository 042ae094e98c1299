// Package source reads uploaded itinerary files into normalized delimited text.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies how an uploaded file is decoded.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV            // delimited text, passed through
	FormatXLSX           // Office Open XML workbook
	FormatXLS            // legacy BIFF workbook
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	default:
		return "unknown"
	}
}

// Binary reports whether the format needs a spreadsheet decoder.
func (f Format) Binary() bool {
	return f == FormatXLSX || f == FormatXLS
}

// Extensions are the accepted file extensions, for file pickers and help text.
var Extensions = []string{".csv", ".xlsx", ".xls"}

// FormatFor returns the format implied by a file name's extension.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	default:
		return FormatUnknown
	}
}

// Document is a decoded upload ready to be sent for interpretation.
type Document struct {
	Name   string // base file name, for display
	Format Format
	Text   string // normalized delimited text
}

// Preview returns at most limit runes of the document text.
func (d Document) Preview(limit int) string {
	runes := []rune(d.Text)
	if len(runes) <= limit {
		return d.Text
	}
	return string(runes[:limit]) + "..."
}

var (
	// ErrUnsupportedFormat means the file extension is not one of Extensions.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrFileTooLarge means the upload exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file too large")
	// ErrNoSheets means a workbook contained no worksheets.
	ErrNoSheets = errors.New("workbook has no sheets")
)

// FileDecodeError reports a failure to turn an uploaded file into text.
type FileDecodeError struct {
	Name   string
	Format Format
	Err    error
}

func (e *FileDecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s file %q: %v", e.Format, e.Name, e.Err)
}

func (e *FileDecodeError) Unwrap() error { return e.Err }
