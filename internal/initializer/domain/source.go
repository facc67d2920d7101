package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSource = errors.New("invalid data files source")

// Source selects which configured directory tree data files are read from.
type Source string

const (
	SourceOdoo    Source = "odoo"
	SourceOpenMRS Source = "openmrs"
)

// ParseSource normalizes a source identifier. Matching is case-insensitive.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceOdoo:
		return SourceOdoo, nil
	case SourceOpenMRS:
		return SourceOpenMRS, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidSource, s, SourceOdoo, SourceOpenMRS)
	}
}

func (s Source) String() string {
	return string(s)
}
