package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	args, err := Split(`--file "a b.txt" -v 'single quoted'`)
	assert.Nil(t, err)
	assert.Equal(t, []string{"--file", "a b.txt", "-v", "single quoted"}, args)

	args, err = Split("")
	assert.Nil(t, err)
	assert.Empty(t, args)

	_, err = Split(`--file "unterminated`)
	assert.NotNil(t, err, "unterminated quotes are a lex error")
}
