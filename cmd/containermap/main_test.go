package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containermap/internal/config"
	"containermap/internal/db"
	"containermap/internal/domain"
	"containermap/internal/events"
	"containermap/internal/record"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestRejectedJSONKeepsStdoutClean(t *testing.T) {
	var stderr bytes.Buffer
	var code int
	out := captureStdout(t, func() {
		code = execute([]string{"validate", "--json", "--workspace", t.TempDir(), "--field", "type_1=Box"}, &stderr)
	})

	assert.Equal(t, 1, code)
	assert.True(t, json.Valid([]byte(out)), "stdout holds only the JSON document: %q", out)
	assert.NotContains(t, out, "error:")
	assert.Contains(t, stderr.String(), "error: "+errRejected.Error())
}

func TestMapRecordsEvents(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	var code int
	captureStdout(t, func() {
		code = execute([]string{"map", "--json", "--events", "--workspace", dir, "--sample", "existing-barcode"}, &stderr)
	})
	require.Equal(t, 0, code, stderr.String())

	conn, err := db.Open(db.Path(dir))
	require.NoError(t, err)
	defer conn.Close()
	evts, err := events.Writer{DB: conn}.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, "mapping.accepted", evts[0].Type)
	assert.Equal(t, "12345", evts[0].EntityID)
}

func TestSourceInputLayers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "source.yml")
	require.NoError(t, os.WriteFile(file, []byte("type_2: Folder\nindicator_2: 41\n"), 0o644))

	in := sourceInput{
		sample: "new-barcode",
		file:   file,
		fields: map[string]string{"barcode_1": "42"},
	}
	src, err := in.source(config.Default())
	require.NoError(t, err)

	assert.Equal(t, "42", src.Barcode1(), "--field overrides the sample")
	assert.Equal(t, "41", src.Indicator2(), "the file overrides the sample")
	assert.Equal(t, "Reel", src.Type3(), "sample values are kept")
}

func TestSourceInputErrors(t *testing.T) {
	cfg := config.Default()

	_, err := (&sourceInput{}).source(cfg)
	assert.Error(t, err)

	_, err = (&sourceInput{sample: "missing"}).source(cfg)
	assert.Error(t, err)

	_, err = (&sourceInput{fields: map[string]string{"colour": "red"}}).source(cfg)
	assert.True(t, errors.Is(err, record.ErrUnknownField))
}

func TestDisplay(t *testing.T) {
	persisted := domain.NewTopContainer().SetIndicator("1").SetID(record.Persisted("T1"))
	fresh := domain.NewTopContainer().SetIndicator("1")

	assert.Equal(t, "", display(nil))
	assert.Equal(t, "abc", display("abc"))
	assert.Equal(t, "false", display(record.NewID()))
	assert.Equal(t, "T1", display(persisted.ID()))
	assert.Equal(t, "T1", display(persisted))
	assert.Equal(t, "new", display(fresh))
}
