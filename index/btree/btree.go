// Package btree implements an in-memory B-tree of int64 keys as described in
// CLRS. The minimum degree t bounds every non-root node to between t-1 and
// 2t-1 keys. Insertion splits full nodes on the way down, so a single pass
// from the root is enough, and the tree only grows in height at the root.
//
// Duplicate keys are kept. A Tree is not safe for concurrent use; concurrent
// Search calls are fine as long as no Insert runs at the same time.
package btree

import (
	"errors"
	"fmt"

	"github.com/btree-query-bench/btree/index"
)

// MinDegree is the smallest usable minimum degree.
const MinDegree = 2

// ErrInvalidDegree is returned by New for a minimum degree below MinDegree.
var ErrInvalidDegree = errors.New("btree: invalid minimum degree")

var _ index.Index = (*Tree)(nil)

type Tree struct {
	root *Node
	t    int
	size int
}

// New returns an empty tree with minimum degree t.
func New(t int) (*Tree, error) {
	if t < MinDegree {
		return nil, fmt.Errorf("%w: %d (must be >= %d)", ErrInvalidDegree, t, MinDegree)
	}
	return &Tree{t: t, root: newNode(t, true)}, nil
}

// MustNew is like New but panics on an invalid degree.
func MustNew(t int) *Tree {
	bt, err := New(t)
	if err != nil {
		panic(err)
	}
	return bt
}

// Insert adds k to the tree. It never rejects a key.
func (bt *Tree) Insert(k int64) {
	if bt.root.IsFull() {
		newRoot := newNode(bt.t, false)
		newRoot.children[0] = bt.root
		bt.root = newRoot
		newRoot.splitChild(0)
	}
	bt.root.insertNonFull(k)
	bt.size++
}

// Search returns the node holding k. The node is only valid until the next
// Insert.
func (bt *Tree) Search(k int64) (*Node, bool) {
	x := bt.root.search(k)
	return x, x != nil
}

func (bt *Tree) Contains(k int64) bool {
	return bt.root.search(k) != nil
}

func (bt *Tree) Degree() int { return bt.t }

func (bt *Tree) Root() *Node { return bt.root }

// Len returns the number of inserted keys, duplicates included.
func (bt *Tree) Len() int { return bt.size }

// Height returns the number of levels. An empty tree has height 1.
func (bt *Tree) Height() int {
	h := 1
	for x := bt.root; !x.leaf; x = x.children[0] {
		h++
	}
	return h
}

func (bt *Tree) NodeCount() int {
	c := 0
	bt.root.walk(0, func(*Node, int) { c++ })
	return c
}

// Stats is a summary of the tree's shape.
type Stats struct {
	Degree int
	Keys   int
	Height int
	Nodes  int
}

func (s Stats) String() string {
	return fmt.Sprintf("t=%d keys=%d height=%d nodes=%d", s.Degree, s.Keys, s.Height, s.Nodes)
}

func (bt *Tree) Stats() Stats {
	return Stats{
		Degree: bt.Degree(),
		Keys:   bt.Len(),
		Height: bt.Height(),
		Nodes:  bt.NodeCount(),
	}
}
