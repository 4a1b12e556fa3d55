package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsolute_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Absolute("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPath)
}
