package record_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containermap/internal/record"
)

var (
	shelfSchema = record.NewSchema("shelf",
		record.Field{Name: "label", Required: true},
		record.Field{Name: "room"},
	)
	boxSchema = record.NewSchema("box",
		record.Field{Name: "name", Required: true},
		record.Field{Name: "note"},
		record.Field{Name: "size", Required: true},
		record.Field{Name: "shelf", Relation: true},
	)
)

func TestSchemaAppendsID(t *testing.T) {
	assert.Equal(t, []string{"name", "note", "size", "shelf", "id"}, boxSchema.Names())

	f, ok := boxSchema.Field(record.FieldID)
	require.True(t, ok)
	assert.False(t, f.Required)
	assert.False(t, boxSchema.Has("colour"))
}

func TestSchemaRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		record.NewSchema("dup", record.Field{Name: "a"}, record.Field{Name: "a"})
	})
	assert.Panics(t, func() {
		record.NewSchema("explicit_id", record.Field{Name: record.FieldID})
	})
}

func TestSetGetChaining(t *testing.T) {
	r := record.New(boxSchema).Set("name", "B1").Set("note", "fragile")

	assert.Equal(t, "B1", r.Get("name"))
	assert.Equal(t, "fragile", r.Str("note"))
	assert.Nil(t, r.Get("size"))
	assert.Equal(t, "", r.Str("size"))

	r.Set("note", "")
	assert.False(t, r.Has("note"))

	assert.Panics(t, func() { r.Set("colour", "red") })
	assert.Panics(t, func() { r.Set("name", 3) })
	assert.Panics(t, func() { r.Set("shelf", "S1") })
}

func TestRelationSharesReference(t *testing.T) {
	shelf := record.New(shelfSchema).Set("label", "A")
	box := record.New(boxSchema).Set("shelf", shelf)

	linked, ok := box.Get("shelf").(record.Linked)
	require.True(t, ok)
	assert.Same(t, shelf, linked.Base())

	shelf.Set("room", "basement")
	assert.Equal(t, "basement", linked.Base().Str("room"))

	box.Set("shelf", nil)
	assert.False(t, box.Has("shelf"))
}

func TestIDStates(t *testing.T) {
	r := record.New(boxSchema)
	assert.True(t, r.ID().IsNew())
	assert.False(t, r.Has(record.FieldID))

	r.SetID(record.Persisted("B-7"))
	v, ok := r.ID().Value()
	assert.True(t, ok)
	assert.Equal(t, "B-7", v)
	assert.True(t, r.Has(record.FieldID))

	assert.True(t, record.Persisted("").IsNew())

	r.Set(record.FieldID, nil)
	assert.True(t, r.ID().IsNew())
}

func TestLoadSkipsEmptyValues(t *testing.T) {
	r := record.New(boxSchema).Set("name", "B1").Set("note", "keep me")

	err := r.Load(map[string]string{"note": "", "size": "large", "id": "B-1"})
	require.NoError(t, err)

	assert.Equal(t, "B1", r.Str("name"))
	assert.Equal(t, "keep me", r.Str("note"))
	assert.Equal(t, "large", r.Str("size"))
	assert.Equal(t, record.Persisted("B-1"), r.ID())
}

func TestLoadRejectsUnknownAndRelationFields(t *testing.T) {
	r := record.New(boxSchema)

	err := r.Load(map[string]string{"name": "B1", "colour": "red", "alpha": "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, record.ErrUnknownField))
	assert.Contains(t, err.Error(), "alpha, colour")
	assert.False(t, r.Has("name"), "nothing is copied on error")

	err = r.Load(map[string]string{"shelf": "S1"})
	assert.True(t, errors.Is(err, record.ErrRelationField))
}

func TestValidateRequiredInSchemaOrder(t *testing.T) {
	r := record.New(boxSchema).Set("note", "x")

	errs := r.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"name", "size"}, errs.Fields())
	for _, e := range errs {
		assert.Equal(t, record.MsgRequired, e.Message)
		assert.Equal(t, record.MissingRequiredField, e.Kind)
	}

	assert.Equal(t, errs, r.Validate(), "validation is repeatable")

	r.Set("name", "B1").Set("size", "large")
	assert.Empty(t, r.Validate())
}

func TestValidationErrorsAsError(t *testing.T) {
	errs := record.ValidationErrors{
		{Field: "name", Message: record.MsgRequired, Kind: record.MissingRequiredField},
	}
	var err error = errs
	assert.Equal(t, "validation failed: name - required but missing", err.Error())

	var target record.ValidationErrors
	require.True(t, errors.As(err, &target))
	assert.Equal(t, errs, target)
}

func TestEqual(t *testing.T) {
	build := func(room string) *record.Record {
		shelf := record.New(shelfSchema).Set("label", "A").Set("room", room)
		return record.New(boxSchema).Set("name", "B1").Set("shelf", shelf)
	}

	assert.True(t, record.Equal(build("attic"), build("attic")))
	assert.False(t, record.Equal(build("attic"), build("cellar")))
	assert.False(t, record.Equal(build("attic"), build("attic").SetID(record.Persisted("x"))))
	assert.False(t, record.Equal(build("attic"), record.New(boxSchema).Set("name", "B1")))
	assert.True(t, record.Equal(nil, nil))
	assert.False(t, record.Equal(build("attic"), nil))
}

func TestMarshalJSON(t *testing.T) {
	shelf := record.New(shelfSchema).Set("label", "A").SetID(record.Persisted("S1"))
	box := record.New(boxSchema).Set("size", "large").Set("name", "B1").Set("shelf", shelf)

	data, err := json.Marshal(box)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"B1","size":"large","shelf":{"label":"A","id":"S1"},"id":false}`, string(data))
}

func TestIDJSONRoundTrip(t *testing.T) {
	var id record.ID
	require.NoError(t, json.Unmarshal([]byte(`"T1"`), &id))
	assert.Equal(t, record.Persisted("T1"), id)

	require.NoError(t, json.Unmarshal([]byte(`false`), &id))
	assert.True(t, id.IsNew())

	assert.Error(t, json.Unmarshal([]byte(`12`), &id))
}

func TestErrorKindText(t *testing.T) {
	data, err := json.Marshal(record.FieldError{Field: "a", Message: "m", Kind: record.StructuralConstraintViolation})
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"a","message":"m","kind":"structural_constraint_violation"}`, string(data))
}
