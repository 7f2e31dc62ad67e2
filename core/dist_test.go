package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmssp/core"
	"github.com/stretchr/testify/require"
)

// TestDistState_NewDistState_Defaults verifies fresh state has every
// distance at +Inf and every predecessor invalid.
func TestDistState_NewDistState_Defaults(t *testing.T) {
	s := core.NewDistState(4)
	require.Equal(t, 4, s.Len())
	for v := 0; v < 4; v++ {
		require.True(t, math.IsInf(s.Get(v), 1))
		require.False(t, s.HasPred(v))
	}
}

// TestDistState_SetAndSetPred verifies Set/SetPred/Get/HasPred round-trip.
func TestDistState_SetAndSetPred(t *testing.T) {
	s := core.NewDistState(3)
	s.Set(0, 0)
	s.Set(1, 4.5)
	s.SetPred(1, 0)

	require.Equal(t, 0.0, s.Get(0))
	require.Equal(t, 4.5, s.Get(1))
	require.True(t, s.HasPred(1))
	require.Equal(t, 0, s.Pred[1])
	require.False(t, s.HasPred(2))
}
