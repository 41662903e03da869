package collections

import (
	"fmt"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestChainingHashBuckets(t *testing.T) {
	h, err := newChainingHash[int, string](IntegerHasher[int]())
	require.NoError(t, err)
	require.NoError(t, h.Insert(NewEntry(5, "a")))
	require.NoError(t, h.Insert(NewEntry(106, "b")))
	require.NoError(t, h.Insert(NewEntry(106, "c")))
	require.Equal(t, 2, h.ChainLength(5))
	require.Equal(t, 0, h.ChainLength(6))

	require.NoError(t, h.Erase(5))
	require.Equal(t, 1, h.ChainLength(5))
	v, err := h.Lookup(106)
	require.NoError(t, err)
	require.Equal(t, "c", v)
}

func TestChainingHashFixedCapacity(t *testing.T) {
	h, err := newChainingHash[int, string](IntegerHasher[int](), WithCapacity(3), WithFixedCapacity())
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		require.NoError(t, h.Insert(NewEntry(i, fmt.Sprint(i))))
	}
	require.Equal(t, 3, h.BucketCount())
	require.Equal(t, 30, h.Size())
	require.Equal(t, 10.0, h.LoadFactor())
	for i := 0; i < 3; i++ {
		require.Equal(t, 10, h.ChainLength(i))
	}
}

func TestChainingHashLoadFactorAboveOne(t *testing.T) {
	h, err := newChainingHash[int, string](IntegerHasher[int](), WithCapacity(5), WithMaxLoadFactor(2))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, h.Insert(NewEntry(i, fmt.Sprint(i))))
	}
	require.Equal(t, 5, h.BucketCount())
	require.NoError(t, h.Insert(NewEntry(10, "10")))
	require.Equal(t, 11, h.BucketCount())
}

func TestChainingHashRehashLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	h, err := newChainingHash[int, string](
		IntegerHasher[int](),
		WithCapacity(7),
		WithLogger(log.NewEntry(logger).WithField("table", "test")),
	)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.NoError(t, h.Insert(NewEntry(i, fmt.Sprint(i))))
	}
	require.Equal(t, 17, h.BucketCount())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "rehash", entry.Message)
	require.Equal(t, 7, entry.Data["from"])
	require.Equal(t, 17, entry.Data["to"])
	require.Equal(t, "test", entry.Data["table"])

	h.Clear()
	require.Equal(t, "table cleared", hook.LastEntry().Message)
	require.Len(t, hook.AllEntries(), 2)
}
