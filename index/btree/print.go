package btree

import (
	"io"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

const (
	branchTail = "└── "
	branchMid  = "├── "
	indentTail = "    "
	indentMid  = "│   "
)

// String renders the live keys of the node as "[k1, k2, ...]".
func (x *Node) String() string {
	var b strings.Builder
	x.writeKeys(&b)
	return b.String()
}

func (x *Node) writeKeys(b *strings.Builder) {
	b.WriteByte('[')
	for i := 0; i < x.n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(x.keys[i], 10))
	}
	b.WriteByte(']')
}

// render writes one line for x and then its children, the last child being
// drawn as the tail.
func (x *Node) render(b *strings.Builder, prefix string, tail bool) {
	b.WriteString(prefix)
	if tail {
		b.WriteString(branchTail)
	} else {
		b.WriteString(branchMid)
	}
	x.writeKeys(b)
	b.WriteByte('\n')

	if x.leaf {
		return
	}
	childPrefix := prefix + indentMid
	if tail {
		childPrefix = prefix + indentTail
	}
	for i := 0; i <= x.n; i++ {
		x.children[i].render(b, childPrefix, i == x.n)
	}
}

// String renders the whole tree top-down:
//
//	B-Tree (t=2):
//	└── [10, 20]
//	    ├── [5, 6, 7]
//	    ├── [12, 17]
//	    └── [30]
//
// followed by an empty line.
func (bt *Tree) String() string {
	var b strings.Builder
	b.WriteString("B-Tree (t=")
	b.WriteString(strconv.Itoa(bt.t))
	b.WriteString("):\n")
	bt.root.render(&b, "", true)
	b.WriteByte('\n')
	return b.String()
}

// Render writes String to w.
func (bt *Tree) Render(w io.Writer) error {
	_, err := io.WriteString(w, bt.String())
	return err
}

// Outline returns the tree shape as a treeprint tree, the root's keys being
// its value.
func (bt *Tree) Outline() treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(bt.root.String())
	bt.root.outline(tree)
	return tree
}

func (x *Node) outline(branch treeprint.Tree) {
	if x.leaf {
		return
	}
	for i := 0; i <= x.n; i++ {
		c := x.children[i]
		if c.leaf {
			branch.AddNode(c.String())
			continue
		}
		c.outline(branch.AddBranch(c.String()))
	}
}
