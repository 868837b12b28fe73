package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTerminal struct {
	terminal bool
	input    []byte
	err      error
}

func (f fakeTerminal) IsTerminal() bool              { return f.terminal }
func (f fakeTerminal) ReadPassword() ([]byte, error) { return f.input, f.err }

func TestGetSecureString(t *testing.T) {
	got, err := GetSecureString("password: ", fakeTerminal{terminal: true, input: []byte("s3cret")})
	assert.Nil(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestGetSecureString_NotATerminal(t *testing.T) {
	_, err := GetSecureString("password: ", fakeTerminal{terminal: false})
	assert.NotNil(t, err)
}

func TestGetSecureString_EmptyInput(t *testing.T) {
	_, err := GetSecureString("password: ", fakeTerminal{terminal: true, input: []byte{}})
	assert.NotNil(t, err, "empty input is invalid")
}

func TestGetSecureString_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := GetSecureString("password: ", fakeTerminal{terminal: true, err: boom})
	assert.ErrorIs(t, err, boom)
}
