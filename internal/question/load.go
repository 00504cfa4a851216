package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRecords reads a data file into an ordered record set.
// Any failure aborts the whole load; there is no partial result.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, &ParseError{Path: path, Err: fmt.Errorf("read data file: %w", err)}
	}
	records, err := parseRecords(data, path)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}
	if err := ValidateRecords(records); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return records, nil
}

// Format reports which decoder a path is read with.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yml", ".yaml":
		return "yaml"
	default:
		return "csv"
	}
}

func parseRecords(data []byte, path string) ([]Record, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	switch Format(path) {
	case "json":
		return parseJSONDocument(text)
	case "yaml":
		return parseYAMLDocument(text)
	default:
		return parseCSV(text)
	}
}

func parseJSONDocument(text []byte) ([]Record, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var raw rawDocument
	if err := json.Unmarshal(text, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := validateDocument(doc, raw); err != nil {
		return nil, err
	}
	return doc.Questions, nil
}

func parseYAMLDocument(text []byte) ([]Record, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(text))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var raw rawDocument
	if err := yaml.Unmarshal(text, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateDocument(doc, raw); err != nil {
		return nil, err
	}
	return doc.Questions, nil
}
