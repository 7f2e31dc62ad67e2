package bmssp_test

import (
	"testing"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/stretchr/testify/require"
)

func TestParams_ClampsSmallN(t *testing.T) {
	k, t2, l := bmssp.Params(0)
	require.GreaterOrEqual(t, k, 1)
	require.GreaterOrEqual(t, t2, 1)
	require.GreaterOrEqual(t, l, 1)
}

func TestParams_MonotoneInK(t *testing.T) {
	k1, _, l1 := bmssp.Params(8)
	k2, _, l2 := bmssp.Params(1024)
	require.GreaterOrEqual(t, k2, k1)
	require.GreaterOrEqual(t, l2, l1)
}

func TestParams_SingleVertex(t *testing.T) {
	k, t2, l := bmssp.Params(1)
	require.Equal(t, 1, k)
	require.Equal(t, 1, t2)
	require.Equal(t, 1, l)
}
