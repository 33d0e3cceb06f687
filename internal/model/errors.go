package model

import (
	"sort"
	"strings"
)

// NonFieldErrors is the FieldErrors key for problems not tied to one field.
const NonFieldErrors = "non_field_errors"

// FieldErrors maps a wire field name to its human readable errors.
type FieldErrors map[string][]string

// Add appends msg to field's errors.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Fields returns the offending field names, sorted.
func (fe FieldErrors) Fields() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidationError is returned when a submission fails validation.
// Nothing has been stored when it is returned.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}
