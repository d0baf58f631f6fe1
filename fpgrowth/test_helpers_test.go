package fpgrowth_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itemsets/fpgrowth"
	"github.com/katalvlaran/itemsets/transactions"
)

// wordBaskets are the classic MONKEY/DONKEY/MAKE/MUCKY/COOKIE transactions,
// one letter per item.
var wordBaskets = [][]string{
	{"M", "O", "N", "K", "E", "Y"},
	{"D", "O", "N", "K", "E", "Y"},
	{"M", "A", "K", "E"},
	{"M", "U", "C", "K", "Y"},
	{"C", "O", "O", "K", "I", "E"},
}

// keyOf renders an ascending id list as a map key.
func keyOf(items []int) string { return fmt.Sprint(items) }

// asCounts maps every itemset of res to its absolute count and fails on duplicates.
func asCounts(t *testing.T, res *fpgrowth.Result) map[string]int {
	t.Helper()
	out := make(map[string]int, res.Len())
	for _, s := range res.Itemsets {
		k := keyOf(s.Items)
		_, dup := out[k]
		require.False(t, dup, "duplicate itemset %s", k)
		out[k] = s.Count
	}

	return out
}

// bruteForce counts every non-empty subset of items by scanning all baskets
// and keeps those meeting minCount and maxLen (NoMaxLen for none).
func bruteForce(baskets [][]int, numItems, minCount, maxLen int) map[string]int {
	out := make(map[string]int)
	sets := make([]map[int]bool, len(baskets))
	for i, b := range baskets {
		sets[i] = make(map[int]bool, len(b))
		for _, it := range b {
			sets[i][it] = true
		}
	}
	for mask := 1; mask < 1<<numItems; mask++ {
		items := make([]int, 0, numItems)
		for it := 0; it < numItems; it++ {
			if mask&(1<<it) != 0 {
				items = append(items, it)
			}
		}
		if maxLen != fpgrowth.NoMaxLen && len(items) > maxLen {
			continue
		}
		count := 0
		for _, s := range sets {
			all := true
			for _, it := range items {
				if !s[it] {
					all = false
					break
				}
			}
			if all {
				count++
			}
		}
		if count >= minCount {
			out[keyOf(items)] = count
		}
	}

	return out
}

// randomBaskets draws n transactions over numItems items where each item is
// present with probability p.
func randomBaskets(rng *rand.Rand, n, numItems int, p float64) [][]int {
	out := make([][]int, n)
	for i := range out {
		b := make([]int, 0, numItems)
		for it := 0; it < numItems; it++ {
			if rng.Float64() < p {
				b = append(b, it)
			}
		}
		out[i] = b
	}

	return out
}

// mustDense builds a Dense from baskets or fails the test.
func mustDense(t testing.TB, baskets [][]int, numItems int) *transactions.Dense {
	t.Helper()
	m, err := transactions.FromItemSets(baskets, numItems)
	require.NoError(t, err)

	return m
}

// sortedKeys returns the keys of m in ascending order, for readable diffs.
func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
