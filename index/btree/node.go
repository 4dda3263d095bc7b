package btree

import "slices"

// Node is one B-tree node. keys has room for 2t-1 entries of which the first
// n are live. children has room for 2t entries and is nil for leaves; a
// non-leaf node always has n+1 live children.
type Node struct {
	keys     []int64
	children []*Node
	n        int
	t        int
	leaf     bool
}

func newNode(t int, leaf bool) *Node {
	x := &Node{
		keys: make([]int64, 2*t-1),
		t:    t,
		leaf: leaf,
	}
	if !leaf {
		x.children = make([]*Node, 2*t)
	}
	return x
}

// IsFull reports whether the node holds 2t-1 keys.
func (x *Node) IsFull() bool { return x.n == 2*x.t-1 }

func (x *Node) IsLeaf() bool { return x.leaf }

func (x *Node) NumKeys() int { return x.n }

// Keys returns a copy of the live keys in ascending order.
func (x *Node) Keys() []int64 { return slices.Clone(x.keys[:x.n]) }

func (x *Node) NumChildren() int {
	if x.leaf {
		return 0
	}
	return x.n + 1
}

// Child returns the i-th child, or nil for leaves and out of range i.
func (x *Node) Child(i int) *Node {
	if x.leaf || i < 0 || i > x.n {
		return nil
	}
	return x.children[i]
}

// splitChild splits the full child at i around its median. The median moves
// up into x at position i and the upper half becomes a new sibling at i+1.
// x must not be full.
func (x *Node) splitChild(i int) {
	t := x.t
	y := x.children[i]
	z := newNode(t, y.leaf)

	copy(z.keys, y.keys[t:2*t-1])
	if !y.leaf {
		copy(z.children, y.children[t:2*t])
		clear(y.children[t:])
	}
	mid := y.keys[t-1]
	clear(y.keys[t-1:])
	y.n, z.n = t-1, t-1

	copy(x.children[i+2:x.n+2], x.children[i+1:x.n+1])
	x.children[i+1] = z

	copy(x.keys[i+1:x.n+1], x.keys[i:x.n])
	x.keys[i] = mid
	x.n++
}

// insertNonFull places k in the subtree rooted at x, splitting full children
// on the way down so the recursion never enters a full node. x must not be
// full.
func (x *Node) insertNonFull(k int64) {
	i := x.n - 1
	if x.leaf {
		for i >= 0 && k < x.keys[i] {
			x.keys[i+1] = x.keys[i]
			i--
		}
		x.keys[i+1] = k
		x.n++
		return
	}

	for i >= 0 && k < x.keys[i] {
		i--
	}
	i++

	if x.children[i].IsFull() {
		x.splitChild(i)
		// The promoted median decides which half k goes to.
		if k > x.keys[i] {
			i++
		}
	}
	x.children[i].insertNonFull(k)
}

// search returns the first node on the path from x that holds k, or nil.
func (x *Node) search(k int64) *Node {
	i := 0
	for i < x.n && k > x.keys[i] {
		i++
	}
	if i < x.n && k == x.keys[i] {
		return x
	}
	if x.leaf {
		return nil
	}
	return x.children[i].search(k)
}

// walk visits x and its subtree in pre-order. depth is 0 at x.
func (x *Node) walk(depth int, fn func(n *Node, depth int)) {
	fn(x, depth)
	if x.leaf {
		return
	}
	for i := 0; i <= x.n; i++ {
		x.children[i].walk(depth+1, fn)
	}
}
