package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON_Decode(t *testing.T) {
	d := JSON{}

	v, ok := d.Decode(`{"a": 1, "b": [1.5, true, "x"]}`)
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": int64(1), "b": []any{1.5, true, "x"}}, v,
		"numbers should be sanitized to plain int64/float64")

	v, ok = d.Decode("3")
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)

	v, ok = d.Decode("null")
	assert.True(t, ok)
	assert.Nil(t, v, "explicit null decodes to a nil value with ok=true")
}

func TestJSON_DecodeRejects(t *testing.T) {
	d := JSON{}

	for _, s := range []string{"x", "{broken", "1 2", `{"a":1} trailing`, ""} {
		_, ok := d.Decode(s)
		assert.False(t, ok, "input %q should not parse as a single JSON value", s)
	}
}

func TestYAML_Decode(t *testing.T) {
	d := YAML{}

	v, ok := d.Decode("a: 1")
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1}, v)

	v, ok = d.Decode("x")
	assert.True(t, ok)
	assert.Equal(t, "x", v, "a bare word is a valid YAML scalar")

	_, ok = d.Decode("{unterminated")
	assert.False(t, ok, "malformed YAML must report ok=false, not panic")
}

func TestRegistry_Priority(t *testing.T) {
	r := NewRegistry()

	// parses under both formats - JSON must win
	v, ok := r.Decode("[1, 2]")
	assert.True(t, ok)
	assert.Equal(t, []any{int64(1), int64(2)}, v, "JSON (int64 elements) should take priority over YAML")

	// JSON rejects, YAML accepts
	v, ok = r.Decode("plain")
	assert.True(t, ok)
	assert.Equal(t, "plain", v)

	_, ok = r.Decode("{broken")
	assert.False(t, ok, "a value neither format parses reports ok=false")
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	d, ok := r.Lookup("json")
	assert.True(t, ok)
	assert.Equal(t, "json", d.Name())

	d, ok = r.Lookup("yaml")
	assert.True(t, ok)
	assert.Equal(t, "yaml", d.Name())

	_, ok = r.Lookup("toml")
	assert.False(t, ok)
}

func TestRegistry_CustomOrder(t *testing.T) {
	r := NewRegistry(YAML{})

	v, ok := r.Decode("[1, 2]")
	assert.True(t, ok)
	assert.Equal(t, []any{1, 2}, v, "a YAML-only registry decodes with YAML semantics")

	_, ok = r.Lookup("json")
	assert.False(t, ok)
}
