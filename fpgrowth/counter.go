package fpgrowth

import (
	"math"
	"sort"
)

// supportTolerance absorbs float round-off in minSupport*n (0.7*10 = 7.000000000000001).
const supportTolerance = 1e-9

// MinCount converts a support fraction into the absolute count an itemset needs
// over n transactions: ceil(minSupport*n), never below 1.
// An itemset qualifies when its count is >= MinCount.
// Complexity: O(1).
func MinCount(minSupport float64, n int) int {
	c := int(math.Ceil(minSupport*float64(n) - supportTolerance))
	if c < 1 {
		return 1
	}

	return c
}

// countItems returns the support count of every item id in [0, numItems).
// Each basket must list an item at most once.
// Complexity: O(total items).
func countItems(baskets [][]int, numItems int) []int {
	counts := make([]int, numItems)
	for _, b := range baskets {
		for _, it := range b {
			counts[it]++
		}
	}

	return counts
}

// rankItems orders the items meeting minCount by descending count, ties by
// ascending id, and returns rank[id] = position in that order, or -1 for
// pruned items.
// Complexity: O(k log k) for k frequent items.
func rankItems(counts []int, minCount int) []int {
	order := make([]int, 0, len(counts))
	for id, c := range counts {
		if c >= minCount {
			order = append(order, id)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	rank := make([]int, len(counts))
	for i := range rank {
		rank[i] = -1
	}
	for r, id := range order {
		rank[id] = r
	}

	return rank
}
