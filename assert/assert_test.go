package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	require.NotPanics(t, func() { Must(true) })
	require.PanicsWithValue(t, "assertion failed", func() { Must(false) })
}

func TestMustf(t *testing.T) {
	require.NotPanics(t, func() { Mustf(true, "unused %d", 1) })
	require.PanicsWithValue(t, "assertion failed: got 3", func() { Mustf(false, "got %d", 3) })
}
