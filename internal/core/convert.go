package core

// convert.go provides the cell coercion rules for game data CSVs.
//
// These functions absorb the messy reality of hand-maintained spreadsheets:
//   - Numbers written as "12", "12.5", " 7,5 " or left blank
//   - Flags written as 1/0, or anything else at all
//   - Excel formula prefixes (="value") and stray quotes
//
// All ToPg* functions return pgtype values with Valid=false for empty/invalid input,
// so a caller can always tell a real zero from a missing value.

import (
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ToPgText converts a string to pgtype.Text.
// Returns invalid if the string is empty or only whitespace.
func ToPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgFloat8 converts a string to pgtype.Float8.
// A decimal comma is accepted when it is the only separator ("7,5").
// NaN and infinities are rejected.
func ToPgFloat8(s string) pgtype.Float8 {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Float8{Valid: false}
	}

	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: f, Valid: true}
}

// ToPgInt4 converts a string to pgtype.Int4.
// Integral floats such as "30.0" are accepted; fractional or out-of-range
// values are invalid.
func ToPgInt4(s string) pgtype.Int4 {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Int4{Valid: false}
	}

	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return pgtype.Int4{Int32: int32(i), Valid: true}
	}

	f := ToPgFloat8(s)
	if !f.Valid || f.Float64 != math.Trunc(f.Float64) {
		return pgtype.Int4{Valid: false}
	}
	if f.Float64 > math.MaxInt32 || f.Float64 < math.MinInt32 {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(f.Float64), Valid: true}
}

// FlagToBool reports whether a cell holds the integer 1.
// Every other value, including "1.0", empty and unparsable cells, is false.
func FlagToBool(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n == 1
}

// Float64Or returns the value of f, or def when f is absent.
func Float64Or(f pgtype.Float8, def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Float64
}

// Int32Or returns the value of i, or def when i is absent.
func Int32Or(i pgtype.Int4, def int32) int32 {
	if !i.Valid {
		return def
	}
	return i.Int32
}

// TextOr returns the value of t, or def when t is absent.
func TextOr(t pgtype.Text, def string) string {
	if !t.Valid {
		return def
	}
	return t.String
}

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are lowercased for case-insensitive matching. When a header name
// repeats, the first occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = i
	}
	return idx
}

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes one pair of matching surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}

	return strings.TrimSpace(s)
}
