// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "sort"

// Balance assigns each block a rank using greedy longest-processing-time
// (LPT): blocks are taken in decreasing cell-count order and placed on
// whichever rank currently holds the smallest accumulated cell count,
// ties broken by lowest rank index (spec §4.1, E3). Deterministic: every
// worker computes the same assignment without communication.
func Balance(blocks []*Block, nproc int) {
	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return blocks[order[a]].NCells() > blocks[order[b]].NCells()
	})

	accum := make([]int, nproc)
	for _, idx := range order {
		best := 0
		for r := 1; r < nproc; r++ {
			if accum[r] < accum[best] {
				best = r
			}
		}
		blocks[idx].Rank = best
		accum[best] += blocks[idx].NCells()
	}
}
