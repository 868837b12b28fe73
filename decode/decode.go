// Package decode provides the structured-value decoders used when a
// command-line token carries a serialized value. Two interchange formats are
// supported - JSON and YAML - tried in that fixed order. Decoders never fail
// with a panic: malformed input reports ok=false and the caller decides
// whether to try the next format.
package decode

import (
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decoder parses a serialized value out of a single string.
type Decoder interface {
	// Name identifies the format ("json", "yaml").
	Name() string
	// Decode returns the decoded value and true, or ok=false when the input
	// does not parse under this format. A nil value with ok=true is a valid
	// outcome (explicit null).
	Decode(s string) (any, bool)
}

// JSON decodes strict JSON. Numbers are decoded with UseNumber and then
// normalized so callers see plain int64/float64 values instead of
// json.Number boxes.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Decode(s string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	// a second document or trailing garbage means s was not one value
	var rest any
	if err := dec.Decode(&rest); err != io.EOF {
		return nil, false
	}

	return sanitize(v), true
}

// sanitize walks a decoded value and replaces json.Number boxes with plain
// int64 or float64 values.
func sanitize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = sanitize(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = sanitize(e)
		}
		return t
	default:
		return v
	}
}

// YAML decodes a single YAML document.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Decode(s string) (any, bool) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}

	return v, true
}

// Registry holds an ordered set of decoders. A single registry is built once
// and shared across bind operations - decoders are stateless so the registry
// is safe for concurrent use.
type Registry struct {
	decoders []Decoder
}

// NewRegistry returns a registry trying the given decoders in order. With no
// arguments the default JSON-then-YAML chain is used.
func NewRegistry(decoders ...Decoder) *Registry {
	if len(decoders) == 0 {
		decoders = []Decoder{JSON{}, YAML{}}
	}

	return &Registry{decoders: decoders}
}

// Decode tries each decoder in registration order and returns the first
// successful result.
func (r *Registry) Decode(s string) (any, bool) {
	for _, d := range r.decoders {
		if v, ok := d.Decode(s); ok {
			return v, true
		}
	}

	return nil, false
}

// Lookup returns the registered decoder with the given format name.
func (r *Registry) Lookup(name string) (Decoder, bool) {
	for _, d := range r.decoders {
		if d.Name() == name {
			return d, true
		}
	}

	return nil, false
}
