package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDirectional(t *testing.T) {
	cases := []struct {
		key  Key
		want bool
	}{
		{KeyW, true},
		{KeyA, true},
		{KeyS, true},
		{KeyD, true},
		{KeyArrowUp, true},
		{KeyArrowDown, true},
		{KeyArrowLeft, true},
		{KeyArrowRight, true},
		{"W", false},
		{"q", false},
		{"Escape", false},
		{"", false},
	}
	for _, c := range cases {
		t.Run(string(c.key), func(t *testing.T) {
			assert.Equal(t, c.want, IsDirectional(c.key))
		})
	}
}

func TestKeySet(t *testing.T) {
	t.Run("zero_value", func(t *testing.T) {
		var s KeySet
		require.False(t, s.Has(KeyW))
		require.Equal(t, 0, s.Len())
		require.False(t, s.Remove(KeyW))
		require.True(t, s.Add(KeyW))
		require.True(t, s.Has(KeyW))
	})

	t.Run("no_duplicates", func(t *testing.T) {
		s := NewKeySet()
		require.True(t, s.Add(KeyA))
		require.False(t, s.Add(KeyA))
		require.Equal(t, 1, s.Len())
	})

	t.Run("remove", func(t *testing.T) {
		s := NewKeySet(KeyA, KeyD)
		require.True(t, s.Remove(KeyA))
		require.False(t, s.Remove(KeyA))
		require.Equal(t, []Key{KeyD}, s.Keys())
	})

	t.Run("keys_sorted", func(t *testing.T) {
		s := NewKeySet(KeyW, KeyArrowUp, KeyA)
		require.Equal(t, []Key{KeyArrowUp, KeyA, KeyW}, s.Keys())
	})

	t.Run("clone_independent", func(t *testing.T) {
		s := NewKeySet(KeyW)
		c := s.Clone()
		c.Add(KeyS)
		s.Remove(KeyW)
		require.True(t, c.Has(KeyW))
		require.True(t, c.Has(KeyS))
		require.False(t, s.Has(KeyS))
	})
}
