// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := NewStore(5)
	require.Equal(t, 0, s.Len())
	require.Equal(t, 5, s.Cap())

	for i := range 5 {
		id, err := s.Alloc()
		require.NoError(t, err)
		require.Equal(t, NodeID(i), id)
		s.Node(id).Width = float32(i + 1)
	}
	id, err := s.Alloc()
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.Equal(t, Nil, id)
	require.Equal(t, s.Cap(), s.Len())

	s.Truncate(2)
	require.Equal(t, 2, s.Len())
	require.Equal(t, float32(2), s.Node(1).Width)
	id, err = s.Alloc()
	require.NoError(t, err)
	require.Equal(t, NodeID(2), id)
	require.Zero(t, s.Node(id).Width, "released nodes must be zeroed")

	s.Truncate(10)
	require.Equal(t, 3, s.Len())

	s.Clear()
	require.Equal(t, 0, s.Len())
	require.Equal(t, 5, s.Cap())
}

func TestEdgeOpposite(t *testing.T) {
	for _, x := range [...][2]Edge{{North, South}, {South, North}, {East, West}, {West, East}} {
		require.Equal(t, x[1], x[0].Opposite(), "%s", x[0])
	}
}
