package query

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
)

// OpEqual is the only supported comparison.
const OpEqual = "="

var (
	// ErrUnknownField is returned for conditions on fields that have no index.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned when a value cannot be compared with the field,
	// for example a non-numeric airport_ref.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldQuery represents a single field-based query condition
type FieldQuery struct {
	Field    string // Field name to query (e.g., "iso_country", "ident")
	Operator string // Comparison operator; only "=" is supported
	Value    string // Value to compare against, matched ignoring ASCII case
}

// Eq builds an equality condition.
func Eq(field, value string) FieldQuery {
	return FieldQuery{Field: field, Operator: OpEqual, Value: value}
}

// Validate checks if the query is properly formed
func (q *FieldQuery) Validate() error {
	if q.Field == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if q.Operator == "" {
		return fmt.Errorf("operator cannot be empty")
	}
	if q.Operator != OpEqual {
		return fmt.Errorf("invalid operator: %s", q.Operator)
	}
	return nil
}

func (q FieldQuery) String() string {
	return q.Field + q.Operator + q.Value
}

// FromValues turns URL query parameters into equality conditions, keeping
// only the names in fields. Conditions come out sorted by field so results
// and logs are stable.
func FromValues(values url.Values, fields []string) []FieldQuery {
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}

	names := make([]string, 0, len(values))
	for name := range values {
		if allowed[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var conds []FieldQuery
	for _, name := range names {
		for _, v := range values[name] {
			conds = append(conds, Eq(name, v))
		}
	}
	return conds
}
