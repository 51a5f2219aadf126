package schema

import (
	"errors"
	"fmt"
)

// Error codes. Every failure in the convert pipeline carries exactly one of
// these, so callers can branch without string-matching messages.
const (
	CodeSourceUnavailable    = "source_unavailable"
	CodeParseFailure         = "parse_failure"
	CodeMissingRequiredField = "missing_required_field"
	CodeTypeMismatch         = "type_mismatch"
	CodeInvalidEnumValue     = "invalid_enum_value"
	CodeInvalidNumericValue  = "invalid_numeric_value"
	CodeEncodingFailure      = "encoding_failure"
	CodeSinkWriteFailure     = "sink_write_failure"
)

// FieldError is a single diagnostic tied to a dotted field path
// (for example "proficiencyLevels.novice.damageMultiplier"). The path is
// empty for failures that are not about one particular field, such as an
// unreadable source file.
type FieldError struct {
	Code    string
	Path    string
	Message string
	Cause   error
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

func (e *FieldError) Unwrap() error { return e.Cause }

// Errf builds a FieldError with a formatted message.
func Errf(code, path, format string, args ...any) *FieldError {
	return &FieldError{Code: code, Path: path, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and path to an underlying error.
func Wrap(code, path string, cause error) *FieldError {
	return &FieldError{Code: code, Path: path, Message: cause.Error(), Cause: cause}
}

// CodeOf extracts the error code from err, or "" when err carries none.
func CodeOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// PathOf extracts the field path from err, or "" when err carries none.
func PathOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Path
	}
	return ""
}
