package argbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionToken(t *testing.T) {
	assert.Equal(t, "file", optionToken("file"))
	assert.Equal(t, "max-size", optionToken("max_size"))
	assert.Equal(t, "dry-run", optionToken("dryRun"))
}

func TestOptionInArgv(t *testing.T) {
	tests := []struct {
		argv  []string
		token string
		want  bool
	}{
		{[]string{"--size", "1"}, "size", true},
		{[]string{"--size=1"}, "size", true},
		{[]string{"-s"}, "s", true},
		{[]string{"--no-color"}, "color", true},
		{[]string{"--no-color=false"}, "color", true},
		{[]string{"--other"}, "size", false},
		{[]string{"--sizeable"}, "size", false}, // prefix alone is not a match
		{[]string{"--", "--size"}, "size", false},
		{nil, "size", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, optionInArgv(tt.argv, tt.token), "argv %v token %q", tt.argv, tt.token)
	}
}

func TestBuildGrammar_Shape(t *testing.T) {
	specs := mustSpecSet(t, func(s *SpecSet) error {
		if err := s.AddSpec("verbose", WithSchema("bool")); err != nil {
			return err
		}
		if err := s.AddSpec("v", WithSchema("bool")); err != nil {
			return err
		}
		return s.AddSpec("data", WithSchema("map"))
	})
	normalized, err := specs.normalized()
	assert.Nil(t, err)

	b := mustBinder(t, specs, WithJSONArgOptions(true), WithYAMLArgOptions(true))
	grammar, err := b.buildGrammar(normalized, NewArgumentMap(), nil, map[string]bool{})
	assert.Nil(t, err)

	byName := map[string]int{}
	for i, entry := range grammar {
		byName[entry.Name] = i
	}

	verbose := grammar[byName["verbose"]]
	assert.False(t, verbose.TakesValue, "boolean options take no value")
	assert.True(t, verbose.Negatable)

	short := grammar[byName["v"]]
	assert.False(t, short.Negatable, "single-letter booleans gain no negation form")

	assert.NotContains(t, byName, "verbose-json", "format options are only derived for non-boolean arguments")
	assert.Contains(t, byName, "data-json")
	assert.Contains(t, byName, "data-yaml")
	assert.True(t, grammar[byName["data"]].TakesValue)
}
