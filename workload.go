package main

import (
	"fmt"
	"math/rand"
	"strings"
)

type WorkloadType string

const (
	Sequential WorkloadType = "sequential"
	Reverse    WorkloadType = "reverse"
	Random     WorkloadType = "random"
	CLRS       WorkloadType = "clrs"
)

var workloads = []WorkloadType{Sequential, Reverse, Random, CLRS}

// clrsKeys is the insertion order of the textbook example.
var clrsKeys = []int64{10, 20, 5, 6, 12, 30, 7, 17}

func parseWorkload(s string) (WorkloadType, error) {
	w := WorkloadType(strings.ToLower(s))
	for _, known := range workloads {
		if w == known {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown workload %q (want one of %v)", s, workloads)
}

// GenerateKeys returns the insertion order for n keys of the given workload.
// Random keys are drawn uniformly from [1, 10n] so some repeat. The CLRS
// workload ignores n and seed.
func GenerateKeys(wType WorkloadType, n int, seed int64) []int64 {
	if wType == CLRS {
		return append([]int64(nil), clrsKeys...)
	}

	keys := make([]int64, n)
	switch wType {
	case Sequential:
		for i := range keys {
			keys[i] = int64(i + 1)
		}
	case Reverse:
		for i := range keys {
			keys[i] = int64(n - i)
		}
	case Random:
		r := rand.New(rand.NewSource(seed))
		for i := range keys {
			keys[i] = r.Int63n(int64(n)*10) + 1
		}
	}
	return keys
}
