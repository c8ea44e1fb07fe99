// Package validation provides the quality gate that every assembled result
// must pass before it may leave the pipeline.
package validation

import (
	"fmt"
	"strings"
)

// FieldError describes a single contract violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// Failure represents a quality-gate rejection. The pipeline never returns a
// partially-filled result silently; callers receive this typed failure with
// the specific missing or invalid fields and must retry or surface it.
type Failure struct {
	Errors []FieldError
}

func (f *Failure) Error() string {
	var sb strings.Builder
	sb.WriteString("quality gate failed:\n")
	for i, e := range f.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, e.Field, e.Message))
	}
	return sb.String()
}

// Fields returns the offending field names for audit records.
func (f *Failure) Fields() []string {
	fields := make([]string, 0, len(f.Errors))
	for _, e := range f.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}
