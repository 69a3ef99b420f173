package core

import (
	"testing"
)

// ----------------------------------------------------------------------------
// ToPgFloat8 Tests
// ----------------------------------------------------------------------------

func TestToPgFloat8(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue float64
	}{
		// Valid
		{name: "integer", input: "30", wantValid: true, wantValue: 30},
		{name: "zero", input: "0", wantValid: true, wantValue: 0},
		{name: "negative", input: "-4", wantValid: true, wantValue: -4},
		{name: "decimal", input: "7.5", wantValid: true, wantValue: 7.5},
		{name: "decimal comma", input: "7,5", wantValid: true, wantValue: 7.5},
		{name: "surrounded by whitespace", input: "  12.25  ", wantValid: true, wantValue: 12.25},
		{name: "scientific notation", input: "1.5e3", wantValid: true, wantValue: 1500},

		// Invalid -> absent
		{name: "empty string", input: "", wantValid: false},
		{name: "only whitespace", input: "   ", wantValid: false},
		{name: "alphabetic", input: "abc", wantValid: false},
		{name: "mixed alphanumeric", input: "12abc", wantValid: false},
		{name: "multiple decimal points", input: "1.2.3", wantValid: false},
		{name: "comma and point", input: "1,234.5", wantValid: false},
		{name: "NaN", input: "NaN", wantValid: false},
		{name: "Infinity", input: "Inf", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToPgFloat8(tt.input)

			if result.Valid != tt.wantValid {
				t.Fatalf("ToPgFloat8(%q).Valid = %v, want %v", tt.input, result.Valid, tt.wantValid)
			}
			if tt.wantValid && result.Float64 != tt.wantValue {
				t.Errorf("ToPgFloat8(%q) = %v, want %v", tt.input, result.Float64, tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToPgInt4 Tests
// ----------------------------------------------------------------------------

func TestToPgInt4(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue int32
	}{
		{name: "integer", input: "42", wantValid: true, wantValue: 42},
		{name: "negative", input: "-3", wantValid: true, wantValue: -3},
		{name: "integral float", input: "30.0", wantValid: true, wantValue: 30},
		{name: "whitespace", input: " 8 ", wantValid: true, wantValue: 8},
		{name: "fractional", input: "2.5", wantValid: false},
		{name: "overflow", input: "3000000000", wantValid: false},
		{name: "empty", input: "", wantValid: false},
		{name: "text", input: "lots", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToPgInt4(tt.input)

			if result.Valid != tt.wantValid {
				t.Fatalf("ToPgInt4(%q).Valid = %v, want %v", tt.input, result.Valid, tt.wantValid)
			}
			if tt.wantValid && result.Int32 != tt.wantValue {
				t.Errorf("ToPgInt4(%q) = %d, want %d", tt.input, result.Int32, tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// FlagToBool Tests
// ----------------------------------------------------------------------------

func TestFlagToBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{" 1 ", true},
		{"1.0", false},
		{"01", true},
		{"0", false},
		{"2", false},
		{"-1", false},
		{"true", false},
		{"yes", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FlagToBool(tt.input); got != tt.want {
				t.Errorf("FlagToBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToPgText / defaults
// ----------------------------------------------------------------------------

func TestToPgText(t *testing.T) {
	if got := ToPgText("  Smelter "); !got.Valid || got.String != "Smelter" {
		t.Errorf("ToPgText trimmed = %+v, want Smelter", got)
	}
	if got := ToPgText("   "); got.Valid {
		t.Errorf("ToPgText(blank).Valid = true, want false")
	}
}

func TestOrDefaults(t *testing.T) {
	if got := Float64Or(ToPgFloat8("x"), 0); got != 0 {
		t.Errorf("Float64Or(absent, 0) = %v, want 0", got)
	}
	if got := Float64Or(ToPgFloat8("4"), 0); got != 4 {
		t.Errorf("Float64Or(4, 0) = %v, want 4", got)
	}
	if got := Int32Or(ToPgInt4(""), -1); got != -1 {
		t.Errorf("Int32Or(absent, -1) = %v, want -1", got)
	}
	if got := TextOr(ToPgText(""), "-"); got != "-" {
		t.Errorf("TextOr(absent, -) = %q, want -", got)
	}
}

// ----------------------------------------------------------------------------
// CleanCell / MakeHeaderIndex Tests
// ----------------------------------------------------------------------------

func TestCleanCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`  Iron Ore  `, "Iron Ore"},
		{`="Iron Ore"`, "Iron Ore"},
		{`=30`, "30"},
		{`"quoted"`, "quoted"},
		{`'single'`, "single"},
		{`D''`, "D''"},
		{`"open`, `"open`},
		{`'mixed"`, `'mixed"`},
		{`"`, `"`},
		{`=""`, ""},
		{``, ""},
	}

	for _, tt := range tests {
		if got := CleanCell(tt.input); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{" Name ", "powerUsage", "name"})

	if idx["name"] != 0 {
		t.Errorf("idx[name] = %d, want 0 (first occurrence wins)", idx["name"])
	}
	if idx["powerusage"] != 1 {
		t.Errorf("idx[powerusage] = %d, want 1", idx["powerusage"])
	}
	if !idx.Has("POWERUSAGE") {
		t.Error("Has(POWERUSAGE) = false, want case-insensitive match")
	}
}
