package domain

import (
	"errors"
	"fmt"
)

// Error is a domain error with a stable code used to pick a user-facing message.
type Error struct {
	code string
	msg  string
}

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the machine-readable code of the error.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrParse               = newError("malformed_catalog", "malformed translation catalog")
	ErrFormat              = newError("argument_mismatch", "placeholder and argument counts differ")
	ErrPlaceholderMismatch = newError("placeholder_mismatch", "translation placeholders differ from source")
	ErrCatalogNotFound     = newError("catalog_not_found", "translation catalog not found")
	ErrContextNotFound     = newError("context_not_found", "translation context not found")
	ErrUnsupportedFormat   = newError("unsupported_format", "unsupported export format")
	ErrNoRepository        = newError("no_repository", "no catalog store configured")
	ErrDuplicateMessageID  = newError("duplicate_message_id", "two entries export to the same message ID")
)

// Causes wrapped by ParseError.
var (
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	ErrMissingAttribute   = errors.New("missing required attribute")
)

// ParseError reports a catalog that could not be decoded.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", ErrParse.msg, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", ErrParse.msg, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Code() string { return ErrParse.code }

// FormatError reports a placeholder/argument count mismatch during formatting.
type FormatError struct {
	Text         string
	Placeholders int
	Args         int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q has %d placeholder(s), got %d argument(s)", ErrFormat.msg, e.Text, e.Placeholders, e.Args)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func (e *FormatError) Code() string { return ErrFormat.code }

// Code extracts the domain error code from err, or "" when err is not a domain error.
func Code(err error) string {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}
