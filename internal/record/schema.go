package record

import "fmt"

// FieldID is the persistence marker carried by every schema.
const FieldID = "id"

// Field declares a single schema field.
type Field struct {
	Name     string
	Required bool
	// Relation fields hold a linked record instead of text.
	Relation bool
}

// Schema is the ordered field set of one record type.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema from fields in declaration order and appends the
// implicit, not-required id field. It panics on empty or duplicate names.
func NewSchema(name string, fields ...Field) *Schema {
	all := make([]Field, 0, len(fields)+1)
	all = append(all, fields...)
	all = append(all, Field{Name: FieldID})

	s := &Schema{name: name, index: make(map[string]int, len(all))}
	for _, f := range all {
		if f.Name == "" {
			panic(fmt.Sprintf("record: schema %s declares an empty field name", name))
		}
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("record: schema %s declares field %s twice", name, f.Name))
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the fields in declaration order, id last.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in declaration order, id last.
func (s *Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Field looks up a field declaration by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}
