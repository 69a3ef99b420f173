package core

// validation.go checks a CSV source against a schema before any row is built.
//
// Validation happens at two levels:
//  1. Header validation: required columns and the key column must be present
//  2. Cell validation: reports whether a cell parses under its FieldSpec type
//
// Cell validation never rejects a row. It only feeds the coercion counters so
// a load can report how much of the source fell back to defaults.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// ValidateCell validates a single cell value against a field specification.
// Returns nil if valid, or an error describing the problem.
func ValidateCell(value string, spec FieldSpec) error {
	if value == "" {
		return nil
	}

	switch spec.Type {
	case FieldNumeric:
		if !ToPgFloat8(value).Valid {
			return fmt.Errorf("invalid number format")
		}
	case FieldInteger:
		if !ToPgInt4(value).Valid {
			return fmt.Errorf("invalid integer format")
		}
	case FieldFlag:
		if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("flag must be 1 or 0")
		}
	}
	return nil
}

// ValidateHeaders validates that all required columns, and the key column,
// exist in the CSV headers. Returns the header index, or an error listing
// every missing column.
func ValidateHeaders(headers []string, keyColumn string, specs []FieldSpec) (HeaderIndex, error) {
	idx := MakeHeaderIndex(headers)
	var missing []string

	keyDeclared := false
	for _, spec := range specs {
		isKey := keyColumn != "" && strings.EqualFold(spec.Name, keyColumn)
		keyDeclared = keyDeclared || isKey
		if (spec.Required || isKey) && !idx.Has(spec.Names()...) {
			missing = append(missing, spec.Name)
		}
	}
	if keyColumn != "" && !keyDeclared && !idx.Has(keyColumn) {
		missing = append(missing, keyColumn)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	idx.resolveAliases(specs)
	return idx, nil
}

// resolveAliases makes every declared field reachable under its primary
// name. When the primary column is absent, the first present alias stands
// in for it; a present primary column always wins.
func (h HeaderIndex) resolveAliases(specs []FieldSpec) {
	for _, spec := range specs {
		primary := strings.ToLower(spec.Name)
		if _, ok := h[primary]; ok {
			continue
		}
		for _, alias := range spec.Aliases {
			if pos, ok := h[strings.ToLower(alias)]; ok {
				h[primary] = pos
				break
			}
		}
	}
}

// Has reports whether any of the named columns is present.
func (h HeaderIndex) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := h[strings.ToLower(name)]; ok {
			return true
		}
	}
	return false
}

// fieldTypeName returns a human-readable name for a field type.
func fieldTypeName(ft FieldType) string {
	switch ft {
	case FieldText:
		return "text"
	case FieldNumeric:
		return "numeric"
	case FieldInteger:
		return "integer"
	case FieldFlag:
		return "flag"
	default:
		return "value"
	}
}

// String implements fmt.Stringer.
func (ft FieldType) String() string {
	return fieldTypeName(ft)
}
