package document

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulftech/idparse/internal/extract"
)

func sampleResult() *Result {
	return &Result{
		Document: TypeIDFront,
		Fields: extract.Result{
			extract.FieldIDNumber: "784-1985-1234567-1",
			extract.FieldFullName: "John Michael Smith",
		},
		Complete: false,
		Preview:  "ID Number: 784-1985-1234567-1",
	}
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(sampleResult())
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, TypeIDFront, decoded.Document)
	name, _ := decoded.Fields.Get(extract.FieldFullName)
	assert.Equal(t, "John Michael Smith", name)
}

func TestToYAML(t *testing.T) {
	out, err := ToYAML(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, out, "id_number: 784-1985-1234567-1")
}

func TestToText(t *testing.T) {
	out := ToText(sampleResult())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "document: id_front", lines[0])
	assert.Equal(t, "complete: false", lines[1])
	assert.Equal(t, "id_number: 784-1985-1234567-1", lines[2], "fields print in stable order")
	assert.Equal(t, "full_name: John Michael Smith", lines[3])
}

func TestFormatResults(t *testing.T) {
	results := []FileResult{
		{File: "front.txt", Result: sampleResult()},
		{File: "broken.txt", Error: "upstream OCR failure: exit code 3"},
	}

	t.Run("json", func(t *testing.T) {
		out, err := FormatResults(results, "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"front.txt"`)
		assert.Contains(t, out, `"upstream OCR failure: exit code 3"`)
	})

	t.Run("csv", func(t *testing.T) {
		out, err := FormatResults(results, "csv")
		require.NoError(t, err)
		rows := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, rows, 3, "header plus one row per file")
		assert.True(t, strings.HasPrefix(rows[0], "file,document,complete,error,id_number"))
		assert.Contains(t, rows[1], "784-1985-1234567-1")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := FormatResults(results, "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "documents:")
	})

	t.Run("text", func(t *testing.T) {
		out, err := FormatResults(results, "text")
		require.NoError(t, err)
		assert.Contains(t, out, "# front.txt")
		assert.Contains(t, out, "error: upstream OCR failure: exit code 3")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := FormatResults(results, "xml")
		assert.Error(t, err)
	})
}

func TestParseType(t *testing.T) {
	for _, typ := range AllTypes() {
		got, err := ParseType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseType("driving_license")
	assert.Error(t, err)
}
