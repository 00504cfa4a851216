package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a loaded record set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// ValidateRecords checks that every record can be asked and answered.
func ValidateRecords(records []Record) error {
	collector := &issueCollector{}
	for i, record := range records {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(record.Question) == "" {
			collector.add(prefix+".question", "is required")
		}
		switch {
		case strings.TrimSpace(record.Answer) == "":
			collector.add(prefix+".answer", "is required")
		case NormalizeInput(record.Answer) != record.Answer:
			// Input is trimmed before comparison, so this answer could never match.
			collector.add(prefix+".answer", fmt.Sprintf("has surrounding whitespace %q; remove the spaces around the answer (for example after the comma in a CSV row)", record.Answer))
		}
	}
	return collector.result()
}

func validateDocument(doc Document, raw rawDocument) error {
	collector := &issueCollector{}
	if doc.Version == 0 {
		collector.add("version", "is required")
	} else if doc.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", doc.Version))
	}
	for i, fields := range raw.Questions {
		for _, column := range RequiredColumns {
			if _, ok := fields[column]; !ok {
				collector.add(fmt.Sprintf("questions[%d].%s", i, column), "is required")
			}
		}
	}
	return collector.result()
}
