package lsm

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *LSM {
	t.Helper()
	l, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, l.Close()) })
	return l
}

func TestInsertContains(t *testing.T) {
	l := open(t)
	for _, k := range []int64{5, -3, 5, 9, 5, math.MinInt64, math.MaxInt64} {
		l.Insert(k)
	}
	require.NoError(t, l.Err())

	assert.Equal(t, 7, l.Len())
	assert.Equal(t, 3, l.Count(5))
	assert.Equal(t, 1, l.Count(-3))
	assert.True(t, l.Contains(9))
	assert.True(t, l.Contains(math.MinInt64))
	assert.True(t, l.Contains(math.MaxInt64))
	assert.False(t, l.Contains(4))
	assert.False(t, l.Contains(-4))
	assert.Equal(t, 0, l.Count(6))
	require.NoError(t, l.Err())
}

func TestEmpty(t *testing.T) {
	l := open(t)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains(0))
}

func TestEncodeKeyOrder(t *testing.T) {
	keys := []int64{math.MinInt64, -2, -1, 0, 1, 2, math.MaxInt64}
	for i := 1; i < len(keys); i++ {
		assert.Equal(t, -1, bytes.Compare(encodeKey(keys[i-1]), encodeKey(keys[i])), "%d < %d", keys[i-1], keys[i])
	}
	// A stored key starts with its index key, whatever the sequence number.
	assert.True(t, bytes.HasPrefix(storedKey(-7, math.MaxUint64), encodeKey(-7)))
}
