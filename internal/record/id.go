package record

import (
	"encoding/json"
	"fmt"
)

// ID records whether a record has been reconciled with a persisted entity.
// The zero value is a new, unsaved record.
type ID struct {
	value string
}

// NewID returns the identity of a record that has not been persisted.
func NewID() ID { return ID{} }

// Persisted returns the identity of a stored entity. An empty value yields a
// new identity.
func Persisted(value string) ID { return ID{value: value} }

func (i ID) IsNew() bool { return i.value == "" }

// Value returns the persisted identifier, if any.
func (i ID) Value() (string, bool) { return i.value, i.value != "" }

func (i ID) String() string {
	if i.IsNew() {
		return "new"
	}
	return i.value
}

// MarshalJSON encodes a new identity as false and a persisted one as its
// identifier string.
func (i ID) MarshalJSON() ([]byte, error) {
	if i.IsNew() {
		return []byte("false"), nil
	}
	return json.Marshal(i.value)
}

func (i *ID) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "false", "null":
		*i = NewID()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("record id must be false or a string: %w", err)
	}
	*i = Persisted(s)
	return nil
}
