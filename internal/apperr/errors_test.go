package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	err := Newf(CodeMissingField, "user record is missing required field %q", "id")
	assert.Equal(t, CodeMissingField, CodeOf(err))

	wrapped := fmt.Errorf("users.json element 2: %w", err)
	assert.Equal(t, CodeMissingField, CodeOf(wrapped))

	assert.Empty(t, CodeOf(errors.New("plain")))
	assert.Empty(t, CodeOf(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(cause, CodeMissingFile, "missing required data file: courses.json")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "courses.json")
	assert.Contains(t, err.Error(), "no such file")
}
