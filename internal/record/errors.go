package record

import (
	"errors"
	"strings"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrRelationField = errors.New("relation field cannot be set from text")
)

// MsgRequired is reported for every required field without a value.
const MsgRequired = "required but missing"

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	MissingRequiredField ErrorKind = iota + 1
	StructuralConstraintViolation
)

func (k ErrorKind) String() string {
	switch k {
	case MissingRequiredField:
		return "missing_required_field"
	case StructuralConstraintViolation:
		return "structural_constraint_violation"
	default:
		return "unknown"
	}
}

func (k ErrorKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// FieldError ties a validation message to the field it concerns.
type FieldError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
}

func (e FieldError) Error() string { return e.Field + " - " + e.Message }

// ValidationErrors is the complete, ordered result of validating a record.
// A non-empty value is also usable as an error.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the field name of each error, in order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Field
	}
	return out
}
