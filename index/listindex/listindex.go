// Package listindex is an unordered slice of keys. Lookups are linear, which
// makes it useless for speed and handy as a reference for checking the
// B-tree's answers.
package listindex

import (
	"slices"

	"github.com/btree-query-bench/btree/index"
)

var _ index.Index = (*ListIndex)(nil)

type ListIndex struct {
	Keys []int64
}

func NewListIndex() *ListIndex {
	return &ListIndex{
		Keys: make([]int64, 0),
	}
}

// Insert appends key. Duplicates are kept, matching the B-tree.
func (l *ListIndex) Insert(key int64) {
	l.Keys = append(l.Keys, key)
}

func (l *ListIndex) Contains(key int64) bool {
	return slices.Contains(l.Keys, key)
}

// Count returns how many times key was inserted.
func (l *ListIndex) Count(key int64) int {
	c := 0
	for _, k := range l.Keys {
		if k == key {
			c++
		}
	}
	return c
}

func (l *ListIndex) Len() int { return len(l.Keys) }

// Sorted returns a sorted copy of every inserted key.
func (l *ListIndex) Sorted() []int64 {
	out := slices.Clone(l.Keys)
	slices.Sort(out)
	return out
}
