// SPDX-License-Identifier: MIT
// Package sbm: deterministic block-label assignment.

package sbm

import "fmt"

// blockLabels assigns the first blockSizes[0] indices to block 0, the next
// blockSizes[1] to block 1, and so on: a contiguous, order-preserving
// partition. The samplers index by block id only, so any desired node
// ordering is the caller's responsibility via blockSizes.
//
// Returns ErrTooFewNodes for n < 1 and ErrBlockSizes when the sizes do not
// sum to n. No randomness involved. Complexity: O(n).
func blockLabels(n int, blockSizes []int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("blockLabels: n=%d: %w", n, ErrTooFewNodes)
	}
	total := 0
	for _, sz := range blockSizes {
		total += sz
	}
	if total != n {
		return nil, fmt.Errorf("blockLabels: sum(blockSizes)=%d != n=%d: %w", total, n, ErrBlockSizes)
	}

	labels := make([]int, n)
	start := 0
	for r, sz := range blockSizes {
		for i := start; i < start+sz; i++ {
			labels[i] = r
		}
		start += sz
	}

	return labels, nil
}
