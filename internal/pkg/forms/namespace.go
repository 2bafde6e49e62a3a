package forms

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnmatchedField is returned when a submitted key matches no declared prefix
var ErrUnmatchedField = errors.New("field matches no declared prefix")

// Namespace declares the prefixes of a composite form and the names that are
// derived server side and therefore never taken from the submission.
type Namespace struct {
	Prefixes []string
	Excluded []string
}

// Split partitions values into one mapping per declared prefix, keyed by the
// prefix, with the prefix stripped from every key. A key belongs to the
// longest prefix it starts with; excluded keys are dropped before matching.
func (n Namespace) Split(values map[string]string) (map[string]map[string]string, error) {
	parts := make(map[string]map[string]string, len(n.Prefixes))
	for _, prefix := range n.Prefixes {
		parts[prefix] = make(map[string]string)
	}

	var errs []error
	for key, value := range values {
		if n.excluded(key) {
			continue
		}

		prefix, ok := n.match(key)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnmatchedField, key))
			continue
		}
		parts[prefix][strings.TrimPrefix(key, prefix)] = value
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return parts, nil
}

// Key returns the namespaced name of field under prefix
func Key(prefix, field string) string {
	return prefix + field
}

func (n Namespace) match(key string) (string, bool) {
	best, found := "", false
	for _, prefix := range n.Prefixes {
		if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
			continue
		}
		if !found || len(prefix) > len(best) {
			best, found = prefix, true
		}
	}
	return best, found
}

func (n Namespace) excluded(key string) bool {
	for _, name := range n.Excluded {
		if name == key {
			return true
		}
	}
	return false
}
