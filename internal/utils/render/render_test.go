package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type platform struct {
	OsName  string `json:"os-name" yaml:"os-name"`
	Machine string `json:"machine" yaml:"machine"`
}

func sample() Section {
	return Section{
		Title: "Platform",
		Key:   "platform",
		Rows: []Row{
			{"os-name", "Linux"},
			{"machine", "x86_64"},
		},
		Value: platform{OsName: "Linux", Machine: "x86_64"},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "TEXT": Text, "json": JSON, "yaml": YAML, " table ": Table} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Os Release", Label("os-release"))
	assert.Equal(t, "Boot Datetime", Label("boot-datetime"))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, sample()))

	out := buf.String()
	assert.Contains(t, out, "Platform:")
	assert.Contains(t, out, "Os Name:")
	assert.Contains(t, out, "Linux")
	assert.Contains(t, out, "x86_64")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Table, sample()))

	out := buf.String()
	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "os-name")
	assert.Contains(t, out, "x86_64")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, sample()))

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Linux", got["platform"]["os-name"])
	assert.Equal(t, "x86_64", got["platform"]["machine"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, YAML, sample()))

	var got map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Linux", got["platform"]["os-name"])
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Format("xml"), sample()))
}
