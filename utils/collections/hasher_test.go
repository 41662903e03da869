package collections

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestIntegerHasher(t *testing.T) {
	h := IntegerHasher[int]()
	require.Equal(t, uint64(106), h(106))
	require.Equal(t, 5, h.index(5, 101))
	require.Equal(t, 5, h.index(106, 101))

	h8 := IntegerHasher[uint8]()
	require.Equal(t, 3, h8.index(255, 7))
}

func TestStringHasher(t *testing.T) {
	type name string
	h := StringHasher[name]()
	require.Equal(t, xxhash.Sum64String("alice"), h("alice"))
	require.Equal(t, h("bob"), h(name("bob")))
	require.NotEqual(t, h("alice"), h("bob"))
	i := h.index("alice", 101)
	require.GreaterOrEqual(t, i, 0)
	require.Less(t, i, 101)
}

func TestCustomHasher(t *testing.T) {
	type point struct{ x, y int }
	hasher := Hasher[point](func(p point) uint64 {
		return uint64(p.x*31 + p.y)
	})
	h, err := NewProbingHash[point, string](hasher, WithCapacity(7))
	require.NoError(t, err)
	require.NoError(t, h.Insert(NewEntry(point{1, 2}, "a")))
	require.NoError(t, h.Insert(NewEntry(point{2, 1}, "b")))
	v, err := h.Lookup(point{2, 1})
	require.NoError(t, err)
	require.Equal(t, "b", v)
}

func TestEntryState(t *testing.T) {
	require.Equal(t, "empty", Empty.String())
	require.Equal(t, "valid", Valid.String())
	require.Equal(t, "deleted", Deleted.String())
	require.Equal(t, "EntryState(9)", EntryState(9).String())
	require.Equal(t, "(1,a)", NewEntry(1, "a").String())
}
