package core

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Row gives named access to the cells of one CSV record. Lookups go through
// the header index, so source column order never matters.
type Row struct {
	cells []string
	idx   HeaderIndex
	line  int
}

// NewRow wraps a raw record read at the given 1-based line.
func NewRow(cells []string, idx HeaderIndex, line int) Row {
	return Row{cells: cells, idx: idx, line: line}
}

// Line returns the source line number of the row.
func (r Row) Line() int {
	return r.line
}

// Cell returns the cleaned value of the first listed column present in the
// header. Declared aliases are already folded into their field's primary
// name, so schemas read by primary name only. ok is false when none of the
// columns exist.
func (r Row) Cell(names ...string) (value string, ok bool) {
	for _, name := range names {
		pos, found := r.idx[strings.ToLower(name)]
		if !found {
			continue
		}
		if pos >= len(r.cells) {
			return "", true
		}
		return CleanCell(r.cells[pos]), true
	}
	return "", false
}

func (r Row) get(names ...string) string {
	v, _ := r.Cell(names...)
	return v
}

// Text coerces the named column as FieldText.
func (r Row) Text(names ...string) pgtype.Text {
	return ToPgText(r.get(names...))
}

// Float coerces the named column as FieldNumeric.
func (r Row) Float(names ...string) pgtype.Float8 {
	return ToPgFloat8(r.get(names...))
}

// Int coerces the named column as FieldInteger.
func (r Row) Int(names ...string) pgtype.Int4 {
	return ToPgInt4(r.get(names...))
}

// Flag coerces the named column as FieldFlag.
func (r Row) Flag(names ...string) bool {
	return FlagToBool(r.get(names...))
}

// coercedCells counts cells that hold something but did not survive their
// field's coercion rule.
func (r Row) coercedCells(specs []FieldSpec) []string {
	var fields []string
	for _, spec := range specs {
		raw, ok := r.Cell(spec.Names()...)
		if !ok || raw == "" {
			continue
		}
		if err := ValidateCell(raw, spec); err != nil {
			fields = append(fields, spec.Name)
		}
	}
	return fields
}
