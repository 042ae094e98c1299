package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/tripbook/internal/logging"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxFileSize caps how much of an upload is read.
const MaxFileSize = 10 << 20 // 10 MiB

// LoadFile reads, decodes and normalizes the file at path.
func LoadFile(path string) (Document, error) {
	name := filepath.Base(path)
	format := FormatFor(name)
	if format == FormatUnknown {
		return Document{}, &FileDecodeError{Name: name, Format: format, Err: ErrUnsupportedFormat}
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, &FileDecodeError{Name: name, Format: format, Err: err}
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return Document{}, &FileDecodeError{Name: name, Format: format, Err: err}
	}
	if len(data) > MaxFileSize {
		return Document{}, &FileDecodeError{Name: name, Format: format, Err: ErrFileTooLarge}
	}

	return Decode(name, data)
}

// Decode turns raw upload bytes into a normalized Document. Workbooks
// contribute only their first sheet, rendered as comma-separated rows.
func Decode(name string, data []byte) (Document, error) {
	format := FormatFor(name)

	var (
		text string
		err  error
	)
	switch format {
	case FormatCSV:
		text, err = decodeText(data)
	case FormatXLSX:
		text, err = decodeXLSX(data)
	case FormatXLS:
		text, err = decodeXLS(data)
	default:
		err = ErrUnsupportedFormat
	}
	log := logging.For(logging.ComponentSource)
	if err != nil {
		log.Warn("decode failed", "file", name, "format", format.String(), "error", err)
		return Document{}, &FileDecodeError{Name: name, Format: format, Err: err}
	}

	doc := Document{
		Name:   name,
		Format: format,
		Text:   Normalize(text),
	}
	log.Debug("decoded", "file", name, "format", format.String(), "bytes", len(data), "chars", len(doc.Text))
	return doc, nil
}

// decodeText honors a UTF-8 or UTF-16 byte order mark and unifies line endings.
func decodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return strings.ReplaceAll(string(out), "\r\n", "\n"), nil
}

func decodeXLSX(data []byte) (string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return rowsToCSV(rows)
}

func decodeXLS(data []byte) (string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return "", ErrNoSheets
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return "", ErrNoSheets
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for c := 0; c <= row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}
	return rowsToCSV(rows)
}

// rowsToCSV writes rows padded to a common width, so blank rows come out as
// bare delimiters the same way a spreadsheet's own CSV export does.
func rowsToCSV(rows [][]string) (string, error) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, r := range rows {
		padded := make([]string, width)
		copy(padded, r)
		if err := w.Write(padded); err != nil {
			return "", fmt.Errorf("writing csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing csv: %w", err)
	}
	return buf.String(), nil
}
