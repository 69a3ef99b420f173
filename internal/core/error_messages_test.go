package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "missing file maps correctly",
			err:         &LoadError{Path: "data/buildings.csv", Err: fmt.Errorf("open: %w", fs.ErrNotExist)},
			wantCode:    "FILE001",
			wantMessage: "Data file not found",
		},
		{
			name:        "field count maps correctly",
			err:         &LoadError{Path: "data/recipes.csv", Err: &csv.ParseError{Line: 3, Err: csv.ErrFieldCount}},
			wantCode:    "FILE002",
			wantMessage: "Data file is not a valid semicolon-separated table",
		},
		{
			name:        "permission maps correctly",
			err:         fmt.Errorf("open: %w", fs.ErrPermission),
			wantCode:    "FILE003",
			wantMessage: "Data file cannot be read",
		},
		{
			name:        "missing key maps correctly",
			err:         &LoadError{Path: "x.csv", Err: &RowError{Line: 4, Column: "name", Err: ErrMissingKey}},
			wantCode:    "VAL003",
			wantMessage: "A row has no value in its key column",
		},
		{
			name:        "missing column maps correctly",
			err:         fmt.Errorf("%w: recipeName", ErrMissingColumn),
			wantCode:    "VAL004",
			wantMessage: "Required column is missing from the header",
		},
		{
			name:        "untyped empty file text maps by pattern",
			err:         errors.New("read x.csv: EMPTY FILE: missing header row"),
			wantCode:    "FILE005",
			wantMessage: "Data file has no header row",
		},
		{
			name:        "unknown error falls back",
			err:         errors.New("something odd"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("MapError().Code = %q, want %q", msg.Code, tt.wantCode)
			}
			if msg.Message != tt.wantMessage {
				t.Errorf("MapError().Message = %q, want %q", msg.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(fs.ErrNotExist)
	want := "Data file not found (Code: FILE001). Check DATA_DIR or run from the directory next to data/"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("IsUserFacing(nil) = true")
	}
	if !IsUserFacing(ErrMissingKey) {
		t.Error("IsUserFacing(ErrMissingKey) = false")
	}
	if IsUserFacing(errors.New("boom")) {
		t.Error("IsUserFacing(boom) = true")
	}
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Table: "recipes", Path: "/data/recipes.csv", Err: errors.New("bad")}
	if got, want := err.Error(), "load recipes from /data/recipes.csv: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	rowErr := &RowError{Line: 7, Column: "name", Err: ErrMissingKey}
	if got, want := rowErr.Error(), `line 7: missing key (column "name")`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
