// Package core provides the lenient ingestion layer for game data tables.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes, so a failed
// load prints something a player can act on instead of a raw parse error.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File not found: The data file does not exist
//	          Action: Check DATA_DIR or run from the directory next to data/
//	          Matches: fs.ErrNotExist, "no such file"
//
//	FILE002 - Invalid CSV: The data file is not a valid semicolon-separated table
//	          Action: Ensure every row has as many columns as the header
//	          Matches: csv.ErrFieldCount, *csv.ParseError, "invalid csv"
//
//	FILE003 - Permission denied: The data file cannot be read
//	          Action: Check the file permissions
//	          Matches: fs.ErrPermission
//
//	FILE005 - Empty file: The data file has no header row
//	          Action: Restore the header line of the file
//	          Matches: "empty file"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL003 - Missing key: A row has no value in its key column
//	         Action: Fill in the name column or set STRICT_KEYS=false to skip such rows
//	         Matches: ErrMissingKey
//
//	VAL004 - Missing column: Required column is missing from the header
//	         Action: Check that the header matches the expected columns
//	         Matches: ErrMissingColumn
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Run with LOG_LEVEL=debug and check the log
package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgNotFound = UserMessage{
		Message: "Data file not found",
		Action:  "Check DATA_DIR or run from the directory next to data/",
		Code:    "FILE001",
	}
	msgInvalidCSV = UserMessage{
		Message: "Data file is not a valid semicolon-separated table",
		Action:  "Ensure every row has as many columns as the header",
		Code:    "FILE002",
	}
	msgPermission = UserMessage{
		Message: "Data file cannot be read",
		Action:  "Check the file permissions",
		Code:    "FILE003",
	}
	msgEmptyFile = UserMessage{
		Message: "Data file has no header row",
		Action:  "Restore the header line of the file",
		Code:    "FILE005",
	}
	msgMissingKey = UserMessage{
		Message: "A row has no value in its key column",
		Action:  "Fill in the name column or set STRICT_KEYS=false to skip such rows",
		Code:    "VAL003",
	}
	msgMissingColumn = UserMessage{
		Message: "Required column is missing from the header",
		Action:  "Check that the header matches the expected columns",
		Code:    "VAL004",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns is the fallback for errors that lost their type on the way up.
// The first matching pattern wins.
var errorPatterns = []errorPattern{
	{pattern: "no such file", msg: msgNotFound},
	{pattern: "invalid csv", msg: msgInvalidCSV},
	{pattern: "wrong number of fields", msg: msgInvalidCSV},
	{pattern: "permission denied", msg: msgPermission},
	{pattern: "empty file", msg: msgEmptyFile},
	{pattern: "missing key", msg: msgMissingKey},
	{pattern: "missing required column", msg: msgMissingColumn},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run with LOG_LEVEL=debug and check the log",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Wrapped sentinel errors are checked first, then the error text is matched
// case-insensitively against known patterns.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var parseErr *csv.ParseError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return msgNotFound
	case errors.Is(err, fs.ErrPermission):
		return msgPermission
	case errors.Is(err, ErrMissingKey):
		return msgMissingKey
	case errors.Is(err, ErrMissingColumn):
		return msgMissingColumn
	case errors.Is(err, csv.ErrFieldCount), errors.As(err, &parseErr):
		return msgInvalidCSV
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
