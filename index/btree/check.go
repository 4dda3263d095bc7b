package btree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InvariantError describes the first structural violation found by Check.
type InvariantError struct {
	// Path holds the child indexes leading from the root to the node.
	Path   []int
	Reason string
}

func (e *InvariantError) Error() string {
	var b strings.Builder
	b.WriteString("root")
	for _, i := range e.Path {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return fmt.Sprintf("btree: invariant violated at %s: %s", b.String(), e.Reason)
}

// Check walks the whole tree and verifies key ordering, node capacity, child
// counts and that every leaf sits at the same depth. It returns an
// *InvariantError for the first violation and nil for a sound tree.
func (bt *Tree) Check() error {
	c := checker{t: bt.t, leafDepth: -1}
	if err := c.node(bt.root, nil, math.MinInt64, math.MaxInt64); err != nil {
		return err
	}
	if c.keys != bt.size {
		return &InvariantError{Reason: fmt.Sprintf("tree holds %d keys, %d were inserted", c.keys, bt.size)}
	}
	return nil
}

type checker struct {
	t         int
	leafDepth int
	keys      int
}

func (c *checker) node(x *Node, path []int, lo, hi int64) error {
	fail := func(format string, args ...any) error {
		return &InvariantError{Path: append([]int(nil), path...), Reason: fmt.Sprintf(format, args...)}
	}

	if x.t != c.t {
		return fail("degree %d differs from tree degree %d", x.t, c.t)
	}
	if x.n > 2*c.t-1 {
		return fail("%d keys exceed capacity %d", x.n, 2*c.t-1)
	}
	if len(path) > 0 && x.n < c.t-1 {
		return fail("%d keys below minimum %d", x.n, c.t-1)
	}
	if len(path) == 0 && !x.leaf && x.n == 0 {
		return fail("internal root has no keys")
	}
	for i := 0; i < x.n; i++ {
		k := x.keys[i]
		if k < lo || k > hi {
			return fail("key %d outside [%d, %d]", k, lo, hi)
		}
		if i > 0 && k < x.keys[i-1] {
			return fail("key %d follows %d", k, x.keys[i-1])
		}
	}
	c.keys += x.n

	if x.leaf {
		if x.children != nil {
			return fail("leaf has a child array")
		}
		if c.leafDepth < 0 {
			c.leafDepth = len(path)
		} else if c.leafDepth != len(path) {
			return fail("leaf at depth %d, want %d", len(path), c.leafDepth)
		}
		return nil
	}

	for i, child := range x.children {
		if i <= x.n && child == nil {
			return fail("child %d missing", i)
		}
		if i > x.n && child != nil {
			return fail("stale child at %d with %d keys", i, x.n)
		}
	}
	for i := 0; i <= x.n; i++ {
		clo, chi := lo, hi
		if i > 0 {
			clo = x.keys[i-1]
		}
		if i < x.n {
			chi = x.keys[i]
		}
		if err := c.node(x.children[i], append(path, i), clo, chi); err != nil {
			return err
		}
	}
	return nil
}
