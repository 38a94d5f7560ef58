package record

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON writes present fields in schema order followed by id. Linked
// records are embedded.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, f := range r.schema.fields {
		var v any
		if f.Name == FieldID {
			v = r.id
		} else if val, ok := r.values[f.Name]; ok {
			v = val
		} else {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, _ := json.Marshal(f.Name)
		buf.Write(key)
		buf.WriteByte(':')
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
