package btree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDetectsViolations(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(bt *Tree)
		path    []int
	}{
		{
			name:    "unsorted leaf",
			corrupt: func(bt *Tree) { bt.root.children[0].keys[0] = 9 },
			path:    []int{0},
		},
		{
			name:    "key outside parent bounds",
			corrupt: func(bt *Tree) { bt.root.children[1].keys[0] = 1 },
			path:    []int{1},
		},
		{
			name: "unbalanced leaves",
			corrupt: func(bt *Tree) {
				deep := newNode(2, false)
				deep.n = copy(deep.keys, []int64{15})
				deep.children[0] = leafWith(2, 12)
				deep.children[1] = leafWith(2, 17)
				bt.root.children[1] = deep
			},
			path: []int{1, 0},
		},
		{
			name:    "size mismatch",
			corrupt: func(bt *Tree) { bt.size++ },
		},
		{
			name:    "missing child",
			corrupt: func(bt *Tree) { bt.root.children[2] = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt := build(t, 2, 10, 20, 5, 6, 12, 30, 7, 17)
			tt.corrupt(bt)

			err := bt.Check()
			require.Error(t, err)
			var ie *InvariantError
			require.True(t, errors.As(err, &ie))
			if tt.path != nil {
				assert.Equal(t, tt.path, ie.Path)
			}
		})
	}
}

func TestInvariantErrorMessage(t *testing.T) {
	err := &InvariantError{Path: []int{1, 0}, Reason: "leaf at depth 2, want 1"}
	assert.Equal(t, "btree: invariant violated at root/1/0: leaf at depth 2, want 1", err.Error())
	assert.Equal(t, "btree: invariant violated at root: x", (&InvariantError{Reason: "x"}).Error())
}
