package question

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// decodeText strips a leading byte order mark and returns UTF-8 text. Files
// marked as UTF-16 are transcoded; anything else must already be valid UTF-8.
func decodeText(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, utf16BEBOM) || bytes.HasPrefix(data, utf16LEBOM) {
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, fmt.Errorf("decode utf-16: %w", err)
		}
		return decoded, nil
	}
	text := bytes.TrimPrefix(data, utf8BOM)
	if offset := invalidUTF8Offset(text); offset >= 0 {
		return nil, &ParseError{
			Line: bytes.Count(text[:offset], []byte("\n")) + 1,
			Err:  fmt.Errorf("%w at byte %d", ErrInvalidEncoding, offset+len(data)-len(text)),
		}
	}
	return text, nil
}

// invalidUTF8Offset returns the offset of the first invalid byte, or -1.
func invalidUTF8Offset(text []byte) int {
	if utf8.Valid(text) {
		return -1
	}
	for offset := 0; offset < len(text); {
		r, size := utf8.DecodeRune(text[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return -1
}

func parseCSV(text []byte) ([]Record, error) {
	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, csvError(err)
	}
	columns, err := indexColumns(header)
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		if isBlankRow(row) {
			continue
		}
		line, _ := reader.FieldPos(0)
		if len(row) < len(header) {
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("expected %d fields, got %d", len(header), len(row)),
			}
		}
		records = append(records, Record{
			Question:        row[columns[ColumnQuestion]],
			Answer:          row[columns[ColumnAnswer]],
			CorrectFeedback: row[columns[ColumnCorrectFeedback]],
			WrongFeedback:   row[columns[ColumnWrongFeedback]],
			Hint:            row[columns[ColumnHint]],
		})
	}
	return records, nil
}

// indexColumns maps each required column to its position in the header.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := positions[name]; exists {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		positions[name] = i
	}
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := positions[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return positions, nil
}

func isBlankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func csvError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return fmt.Errorf("read csv: %w", err)
}
