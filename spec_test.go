package argbind

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argbind/argbind/schema"
)

func TestSpecSet_AddAndOrder(t *testing.T) {
	specs := NewSpecSet()
	assert.Equal(t, 1, specs.Version)

	assert.Nil(t, specs.AddSpec("b", WithSchema("string")))
	assert.Nil(t, specs.AddSpec("a", WithSchema("int")))
	assert.Equal(t, 2, specs.Len())
	assert.Equal(t, []string{"b", "a"}, specs.Names(), "declaration order is preserved")

	err := specs.AddSpec("b", WithSchema("bool"))
	assert.ErrorIs(t, err, ErrDuplicateSpec)

	err = specs.Add("", &ArgumentSpec{})
	assert.NotNil(t, err, "empty names are rejected")

	spec, found := specs.Get("a")
	assert.True(t, found)
	assert.Equal(t, "a", spec.Name, "Add stamps the canonical name onto the spec")
}

func TestSpecSet_NormalizedClone(t *testing.T) {
	specs := NewSpecSet()
	pos := 0
	assert.Nil(t, specs.Add("file", &ArgumentSpec{Schema: "str", Position: &pos}))
	assert.Nil(t, specs.AddSpec("tags", WithSchema("[]int")))

	clone, err := specs.normalized()
	assert.Nil(t, err)

	file, _ := clone.Get("file")
	assert.Equal(t, schema.KindString, file.TypeOf().Kind)
	assert.Equal(t, schema.Scalar, file.Class())

	tags, _ := clone.Get("tags")
	assert.Equal(t, schema.ListOfScalar, tags.Class())

	original, _ := specs.Get("file")
	assert.Nil(t, original.TypeOf(), "normalization must not touch the caller's specs")

	*file.Position = 9
	assert.Equal(t, 0, *original.Position, "the clone owns its positional index")
}

func TestSpecSet_NormalizedAliasFallback(t *testing.T) {
	specs := NewSpecSet()
	assert.Nil(t, specs.AddSpec("size", WithSchema("int"),
		WithAlias("s", nil),
		WithAlias("raw", &AliasSpec{Schema: "string"})))

	clone, err := specs.normalized()
	assert.Nil(t, err)

	size, _ := clone.Get("size")
	assert.Equal(t, schema.KindInt, size.Aliases["s"].typeOf.Kind, "an alias without a schema inherits the argument's")
	assert.Equal(t, schema.KindString, size.Aliases["raw"].typeOf.Kind, "an alias schema overrides the argument's")
}

func TestSpecSet_NormalizedBadSchema(t *testing.T) {
	specs := NewSpecSet()
	assert.Nil(t, specs.AddSpec("x", WithSchema("wibble")))

	_, err := specs.normalized()
	assert.ErrorIs(t, err, schema.ErrInvalidDescriptor)
	assert.Contains(t, err.Error(), "argument 'x'")
}

func TestArgumentSpec_Set(t *testing.T) {
	spec := &ArgumentSpec{}
	err := spec.Set(WithSchema("bool"), SetRequired(true), WithDescription("verbosity"))
	assert.Nil(t, err)
	assert.Equal(t, "bool", spec.Schema)
	assert.True(t, spec.Required)
	assert.Equal(t, "verbosity", spec.Description)

	err = spec.Set(WithPosition(-1))
	assert.NotNil(t, err, "negative positional indexes are rejected")

	err = spec.Set(WithAlias("", nil))
	assert.NotNil(t, err, "empty alias names are rejected")
}

func TestArgumentSpec_String(t *testing.T) {
	spec := NewSpec(WithSchema("[]int"), SetRequired(true))
	spec.Name = "sizes"
	assert.Equal(t, "sizes array[int] (required)", spec.String())

	spec = NewSpec(WithSchema("string"))
	spec.Name = "file"
	assert.Equal(t, "file string (optional)", spec.String())
}

func TestAliasHandler_Lost(t *testing.T) {
	assert.True(t, AliasCodeLost().Lost())
	assert.False(t, AliasCode(func(string, *ArgumentMap) error { return nil }).Lost())

	var h *AliasHandler
	assert.False(t, h.Lost(), "a nil handler is not a lost handler")
}
