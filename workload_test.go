package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkload(t *testing.T) {
	w, err := parseWorkload("Random")
	require.NoError(t, err)
	assert.Equal(t, Random, w)

	_, err = parseWorkload("zipf")
	assert.ErrorContains(t, err, `unknown workload "zipf"`)
}

func TestGenerateKeys(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3, 4}, GenerateKeys(Sequential, 4, 0))
	assert.Equal(t, []int64{4, 3, 2, 1}, GenerateKeys(Reverse, 4, 0))
	assert.Equal(t, clrsKeys, GenerateKeys(CLRS, 100, 7))
	assert.Empty(t, GenerateKeys(Sequential, 0, 0))

	a := GenerateKeys(Random, 500, 42)
	b := GenerateKeys(Random, 500, 42)
	assert.Equal(t, a, b, "same seed must give the same keys")
	for _, k := range a {
		assert.GreaterOrEqual(t, k, int64(1))
		assert.LessOrEqual(t, k, int64(5000))
	}
	assert.NotEqual(t, a, GenerateKeys(Random, 500, 43))
}

func TestGenerateKeysDoesNotAlias(t *testing.T) {
	keys := GenerateKeys(CLRS, 0, 0)
	keys[0] = -1
	assert.Equal(t, int64(10), clrsKeys[0])
}
