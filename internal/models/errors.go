package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error constants for attestation operations
var (
	ErrInvalidSex      = errors.New("invalid sex")
	ErrUnknownReason   = errors.New("unknown reason code")
	ErrInvalidReasons  = errors.New("invalid reason table")
	ErrRenderBusy      = errors.New("render capacity unavailable")
	ErrFontUnavailable = errors.New("font unavailable")
)

// FieldError describes a single rejected form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a submission is rejected. It is a client fault.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasField reports whether the given field was rejected
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// RenderError is returned when the attestation file cannot be produced. It is a server fault.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
