package forms

import (
	"fmt"
	"sort"
	"strings"
)

// Messages attached to field errors
const (
	MsgRequired      = "This field is required."
	MsgInvalidChoice = "Select a valid choice."
	MsgInvalidValue  = "Enter a valid value."
)

// Errors maps a (namespaced) field name to its validation messages
type Errors map[string][]string

// Add records msg against field
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Any reports whether at least one error was recorded
func (e Errors) Any() bool {
	return len(e) > 0
}

// Merge copies other into e. Fields already failing in e keep only their own
// messages, so a value that could not be decoded is not also reported as missing.
func (e Errors) Merge(other Errors) Errors {
	for field, msgs := range other {
		if _, ok := e[field]; ok {
			continue
		}
		e[field] = append([]string(nil), msgs...)
	}
	return e
}

// Prefixed returns a copy of e with every field name namespaced by prefix
func (e Errors) Prefixed(prefix string) Errors {
	out := make(Errors, len(e))
	for field, msgs := range e {
		out[Key(prefix, field)] = msgs
	}
	return out
}

// Fields returns the failing field names in sorted order
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// ValidationError carries field errors across layers
type ValidationError struct {
	Errors Errors
}

// NewValidationError wraps errs
func NewValidationError(errs Errors) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, field := range e.Errors.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Errors[field], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
