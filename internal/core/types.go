package core

// FieldType represents the coercion rule applied to a CSV cell.
type FieldType int

const (
	FieldText    FieldType = iota // trimmed string, absent when empty
	FieldNumeric                  // float, absent when empty or unparsable
	FieldInteger                  // integral number, absent when empty, unparsable or fractional
	FieldFlag                     // 1 is true, anything else is false
)

// FieldSpec declares one source column of a row schema.
type FieldSpec struct {
	Name     string    // Column header name, matched case-insensitively
	Aliases  []string  // Alternative header names accepted for the same field
	Type     FieldType // Coercion rule
	Required bool      // Column must exist in the CSV header
}

// Names returns the primary name followed by any aliases.
func (f FieldSpec) Names() []string {
	return append([]string{f.Name}, f.Aliases...)
}

// HeaderIndex maps column names (lowercase) to their position in the CSV row.
type HeaderIndex map[string]int

// Keyed is implemented by any record that can report the identity it is
// stored under in a table.
type Keyed interface {
	Key() string
}

// BuildFunc turns one row into a typed record. It never fails: cell problems
// are absorbed by the coercion rules.
type BuildFunc[T Keyed] func(row Row) T

// Schema describes how rows of one CSV source become records of type T.
type Schema[T Keyed] struct {
	Name      string      // Table name used in logs and errors
	KeyColumn string      // Column whose cell is the record key
	Fields    []FieldSpec // Declared columns, in source order
	Build     BuildFunc[T]
}

// TableInfo contains display information about a registered table.
type TableInfo struct {
	Key   string // Unique identifier: "buildings"
	Label string // Display name: "Buildings"
	File  string // Default file name under the data directory
}

// LoadStats summarises one table load.
type LoadStats struct {
	Rows     int // Data rows read from the source
	Records  int // Records in the resulting table
	Replaced int // Rows that overwrote an earlier row with the same key
	Dropped  int // Rows discarded for a missing key (lenient mode only)
	Coerced  int // Non-empty cells that did not parse and fell back to their default
}
