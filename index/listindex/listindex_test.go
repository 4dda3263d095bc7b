package listindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListIndex(t *testing.T) {
	l := NewListIndex()
	for _, k := range []int64{5, 3, 5, 9, 5} {
		l.Insert(k)
	}

	assert.Equal(t, 5, l.Len())
	assert.True(t, l.Contains(9))
	assert.False(t, l.Contains(4))
	assert.Equal(t, 3, l.Count(5))
	assert.Equal(t, []int64{3, 5, 5, 5, 9}, l.Sorted())
	assert.Equal(t, []int64{5, 3, 5, 9, 5}, l.Keys, "Sorted must not reorder the backing slice")
}
