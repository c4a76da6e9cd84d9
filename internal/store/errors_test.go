package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniqueColumn(t *testing.T) {
	t.Parallel()

	err := errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")
	require.Equal(t, "email", uniqueColumn(err))

	err = errors.New("constraint failed: UNIQUE constraint failed: exercises.exercise_name (2067)")
	require.Equal(t, "exercise_name", uniqueColumn(err))

	// Anything else falls back to a generic label rather than a table name.
	require.Equal(t, "value", uniqueColumn(errors.New("disk I/O error")))
}
