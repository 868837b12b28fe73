package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Shorthand(t *testing.T) {
	tests := []struct {
		raw  string
		want *TypeDescriptor
	}{
		{"str", &TypeDescriptor{Kind: KindString}},
		{"string", &TypeDescriptor{Kind: KindString}},
		{"INT", &TypeDescriptor{Kind: KindInt}},
		{"integer", &TypeDescriptor{Kind: KindInt}},
		{"num", &TypeDescriptor{Kind: KindNumber}},
		{"double", &TypeDescriptor{Kind: KindFloat}},
		{"boolean", &TypeDescriptor{Kind: KindBool}},
		{"", &TypeDescriptor{Kind: KindAny}},
		{"hash", &TypeDescriptor{Kind: KindMap}},
		{"[]str", &TypeDescriptor{Kind: KindArray, Elem: &TypeDescriptor{Kind: KindString}}},
		{"array[int]", &TypeDescriptor{Kind: KindArray, Elem: &TypeDescriptor{Kind: KindInt}}},
		{"array", &TypeDescriptor{Kind: KindArray, Elem: &TypeDescriptor{Kind: KindAny}}},
		{"[]any", &TypeDescriptor{Kind: KindArray, Elem: &TypeDescriptor{Kind: KindAny}}},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.raw)
		assert.Nil(t, err, "shorthand '%s' should normalize", tt.raw)
		assert.Equal(t, tt.want, got, "shorthand '%s'", tt.raw)
	}
}

func TestNormalize_Descriptor(t *testing.T) {
	raw := &TypeDescriptor{Kind: "list", Elem: &TypeDescriptor{Kind: "integer"}}
	got, err := Normalize(raw)
	assert.Nil(t, err)
	assert.Equal(t, KindArray, got.Kind, "kind synonyms should canonicalize")
	assert.Equal(t, KindInt, got.Elem.Kind, "element kinds should canonicalize")

	got.Elem.Kind = KindString
	assert.Equal(t, Kind("integer"), raw.Elem.Kind, "normalization must not mutate the input")
}

func TestNormalize_Nil(t *testing.T) {
	got, err := Normalize(nil)
	assert.Nil(t, err)
	assert.Equal(t, KindAny, got.Kind, "a missing descriptor means 'any'")
}

func TestNormalize_Errors(t *testing.T) {
	for _, raw := range []any{"quux", "array[quux", 42, "[]quux"} {
		_, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrInvalidDescriptor, "descriptor %v should be rejected", raw)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Class
	}{
		{"str", Scalar},
		{"int", Scalar},
		{"bool", Scalar},
		{"float", Scalar},
		{"num", Scalar},
		{"[]str", ListOfScalar},
		{"array[int]", ListOfScalar},
		{"[]any", Complex},
		{"array[map]", Complex},
		{"map", Complex},
		{"any", Complex},
	}

	for _, tt := range tests {
		td, err := Normalize(tt.raw)
		assert.Nil(t, err)
		assert.Equal(t, tt.want, Classify(td), "classification of '%s'", tt.raw)
	}

	assert.Equal(t, Complex, Classify(nil), "nil descriptor classifies as complex")
}

func TestDescriptorString(t *testing.T) {
	td, _ := Normalize("array[int]")
	assert.Equal(t, "array[int]", td.String())
	assert.Equal(t, "any", (*TypeDescriptor)(nil).String())
}
