package importer

import "fmt"

// ParseError means the raw input could not be parsed into the expected
// document shape at all (malformed JSON, missing required field, wrong
// type). It is distinct from ValidationError so callers can tell a broken
// file apart from a well-formed but semantically invalid one.
type ParseError struct {
	Reason string
	Err    error // Underlying decoder error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse document: %s: %v", e.Reason, e.Err)
	}
	return "parse document: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError means the document parsed cleanly but violates a semantic
// rule (blank title, non-positive duration, duplicate day index, ...).
// The first violation found aborts the whole import.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid program document: " + e.Reason
}
