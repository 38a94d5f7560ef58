// Package record implements schema-described records: ordered field sets with
// required flags, a persistence marker, and required-field validation.
package record

import (
	"fmt"
	"sort"
	"strings"
)

// Linked is implemented by anything that can be stored in a relation field.
type Linked interface {
	Base() *Record
}

// Record is an instance of a Schema. Scalar fields hold non-empty strings,
// relation fields hold a shared reference to another record. Absent fields
// have no entry.
type Record struct {
	schema *Schema
	id     ID
	values map[string]any
}

func New(s *Schema) *Record {
	return &Record{schema: s, values: make(map[string]any, len(s.fields))}
}

// Base returns r itself so that types embedding *Record satisfy Linked.
func (r *Record) Base() *Record { return r }

func (r *Record) Schema() *Schema { return r.schema }

func (r *Record) ID() ID { return r.id }

func (r *Record) SetID(id ID) *Record {
	r.id = id
	return r
}

// Get returns the current value of field, or nil when it is absent. For the
// id field it returns the ID.
func (r *Record) Get(field string) any {
	if field == FieldID {
		return r.id
	}
	return r.values[field]
}

// Has reports whether field holds a value. A new id counts as absent.
func (r *Record) Has(field string) bool {
	if field == FieldID {
		return !r.id.IsNew()
	}
	_, ok := r.values[field]
	return ok
}

// Str returns a scalar field's value, or "" when it is absent.
func (r *Record) Str(field string) string {
	s, _ := r.values[field].(string)
	return s
}

// Set assigns a value and returns r for chaining. A nil value or an empty
// string clears the field. Set panics when field is not part of the schema or
// the value does not fit the field.
func (r *Record) Set(field string, v any) *Record {
	f, ok := r.schema.Field(field)
	if !ok {
		panic(fmt.Sprintf("record: %s has no field %s", r.schema.name, field))
	}
	if field == FieldID {
		switch id := v.(type) {
		case nil:
			r.id = NewID()
		case ID:
			r.id = id
		case string:
			r.id = Persisted(id)
		default:
			panic(fmt.Sprintf("record: %s.id cannot hold %T", r.schema.name, v))
		}
		return r
	}
	if v == nil {
		delete(r.values, field)
		return r
	}
	if f.Relation {
		if _, ok := v.(Linked); !ok {
			panic(fmt.Sprintf("record: relation %s.%s cannot hold %T", r.schema.name, field, v))
		}
		r.values[field] = v
		return r
	}
	s, ok := v.(string)
	if !ok {
		panic(fmt.Sprintf("record: %s.%s cannot hold %T", r.schema.name, field, v))
	}
	if s == "" {
		delete(r.values, field)
		return r
	}
	r.values[field] = s
	return r
}

// Load copies the non-empty entries of values into r. Fields missing from
// values, or given as "", keep their current value. An "id" entry marks the
// record as persisted. Nothing is copied when values names a field outside
// the schema or a relation field.
func (r *Record) Load(values map[string]string) error {
	var unknown, relations []string
	for k := range values {
		f, ok := r.schema.Field(k)
		switch {
		case !ok:
			unknown = append(unknown, k)
		case f.Relation:
			relations = append(relations, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%s: %w: %s", r.schema.name, ErrUnknownField, strings.Join(unknown, ", "))
	}
	if len(relations) > 0 {
		sort.Strings(relations)
		return fmt.Errorf("%s: %w: %s", r.schema.name, ErrRelationField, strings.Join(relations, ", "))
	}
	for k, v := range values {
		if v == "" {
			continue
		}
		r.Set(k, v)
	}
	return nil
}

// Validate runs the required-field check. Variants with extra constraints
// call ValidateRequired first and append their own errors.
func (r *Record) Validate() ValidationErrors {
	return ValidateRequired(r)
}

// ValidateRequired reports every required field without a value, in schema
// order. It never mutates r.
func ValidateRequired(r *Record) ValidationErrors {
	var errs ValidationErrors
	for _, f := range r.schema.fields {
		if f.Required && !r.Has(f.Name) {
			errs = append(errs, FieldError{Field: f.Name, Message: MsgRequired, Kind: MissingRequiredField})
		}
	}
	return errs
}
