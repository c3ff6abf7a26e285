package domain

import (
	"strings"

	"enrollment-report/internal/apperr"
)

// Kind names one of the three record collections.
type Kind string

const (
	KindCourse     Kind = "course"
	KindUser       Kind = "user"
	KindEnrollment Kind = "enrollment"
)

// Raw is one undecoded JSON object from an input array.
type Raw map[string]any

// WarnFunc receives advisory diagnostics emitted during normalization.
// Normalization never logs on its own; the caller decides where warnings go.
// A nil WarnFunc discards them.
type WarnFunc func(format string, args ...any)

func (w WarnFunc) emit(format string, args ...any) {
	if w != nil {
		w(format, args...)
	}
}

// stringField extracts a required string field, trimmed.
// Missing or null fails; an empty string is accepted.
func stringField(r Raw, kind Kind, name string) (string, error) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", apperr.Newf(apperr.CodeMissingField, "%s record is missing required field %q", kind, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", apperr.Newf(apperr.CodeInvalidShape, "%s record field %q must be a string", kind, name)
	}
	return strings.TrimSpace(s), nil
}

// optionalString extracts an optional string field, trimmed. Missing or null
// yields the empty string.
func optionalString(r Raw, kind Kind, name string) (string, error) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", apperr.Newf(apperr.CodeInvalidShape, "%s record field %q must be a string", kind, name)
	}
	return strings.TrimSpace(s), nil
}

// object extracts a required nested object field.
func object(r Raw, kind Kind, name string) (Raw, error) {
	v, ok := r[name]
	if !ok || v == nil {
		return nil, apperr.Newf(apperr.CodeMissingField, "%s record is missing required field %q", kind, name)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, apperr.Newf(apperr.CodeInvalidShape, "%s record field %q must be an object", kind, name)
	}
	return Raw(m), nil
}
