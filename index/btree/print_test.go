package btree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		degree int
		keys   []int64
		want   string
	}{
		{
			name:   "empty",
			degree: 3,
			want:   "B-Tree (t=3):\n└── []\n\n",
		},
		{
			name:   "clrs",
			degree: 2,
			keys:   []int64{10, 20, 5, 6, 12, 30, 7, 17},
			want: `B-Tree (t=2):
└── [10, 20]
    ├── [5, 6, 7]
    ├── [12, 17]
    └── [30]

`,
		},
		{
			name:   "three levels",
			degree: 2,
			keys:   []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want: `B-Tree (t=2):
└── [4]
    ├── [2]
    │   ├── [1]
    │   └── [3]
    └── [6, 8]
        ├── [5]
        ├── [7]
        └── [9, 10]

`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt := build(t, tt.degree, tt.keys...)
			assert.Equal(t, tt.want, bt.String())

			var buf bytes.Buffer
			require.NoError(t, bt.Render(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNodeString(t *testing.T) {
	assert.Equal(t, "[]", leafWith(2).String())
	assert.Equal(t, "[-4, 0, 9]", leafWith(2, -4, 0, 9).String())
}

func TestOutline(t *testing.T) {
	bt := build(t, 3, 10, 20, 5, 6, 12, 30, 7, 17)

	lines := strings.Split(strings.TrimRight(bt.Outline().String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[10]", lines[0])
	assert.Contains(t, lines[1], "[5, 6, 7]")
	assert.Contains(t, lines[2], "[12, 17, 20, 30]")
}

func TestOutlineNested(t *testing.T) {
	bt := build(t, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	out := bt.Outline().String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, bt.NodeCount())
	for _, want := range []string{"[4]", "[2]", "[6, 8]", "[9, 10]"} {
		assert.Contains(t, out, want)
	}
}
