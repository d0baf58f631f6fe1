package fpgrowth

import (
	"encoding/binary"
	"slices"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/itemsets/transactions"
)

// Itemset is one frequent itemset with its absolute and fractional support.
type Itemset struct {
	// Items holds the item identifiers in ascending order.
	Items []int `json:"items" yaml:"items"`

	// Labels holds the item labels aligned with Items when a vocabulary was
	// configured; nil otherwise.
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Count is the number of transactions containing every item.
	Count int `json:"count" yaml:"count"`

	// Support is Count divided by the number of transactions.
	Support float64 `json:"support" yaml:"support"`
}

// Len returns the number of items.
func (s Itemset) Len() int { return len(s.Items) }

// Result is the outcome of a mining run.
// Itemsets are in discovery order, which is deterministic for a given input.
type Result struct {
	Itemsets     []Itemset `json:"itemsets" yaml:"itemsets"`
	Transactions int       `json:"transactions" yaml:"transactions"`
	MinSupport   float64   `json:"min_support" yaml:"min_support"`
	MinCount     int       `json:"min_count" yaml:"min_count"`

	once  sync.Once
	index map[uint64][]int // itemsetKey -> positions in Itemsets
}

// Len returns the number of itemsets.
func (r *Result) Len() int { return len(r.Itemsets) }

// Lookup returns the itemset made of exactly the given items, in any order.
// The index is built on first use and is safe for concurrent readers.
// Complexity: O(n) once, then O(k log k) per call for k items.
func (r *Result) Lookup(items ...int) (Itemset, bool) {
	r.once.Do(r.buildIndex)

	want := slices.Clone(items)
	slices.Sort(want)
	want = slices.Compact(want)
	for _, pos := range r.index[itemsetKey(want)] {
		if slices.Equal(r.Itemsets[pos].Items, want) {
			return r.Itemsets[pos], true
		}
	}

	return Itemset{}, false
}

func (r *Result) buildIndex() {
	r.index = make(map[uint64][]int, len(r.Itemsets))
	for i, s := range r.Itemsets {
		k := itemsetKey(s.Items)
		r.index[k] = append(r.index[k], i)
	}
}

// Sorted returns a copy of the itemsets ordered by support descending, then
// size ascending, then items lexicographically.
func (r *Result) Sorted() []Itemset {
	out := slices.Clone(r.Itemsets)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if len(a.Items) != len(b.Items) {
			return len(a.Items) < len(b.Items)
		}
		return slices.Compare(a.Items, b.Items) < 0
	})

	return out
}

// FilterMaxLen returns a new Result keeping only itemsets of at most n items.
func (r *Result) FilterMaxLen(n int) *Result {
	out := &Result{Itemsets: []Itemset{}, Transactions: r.Transactions, MinSupport: r.MinSupport, MinCount: r.MinCount}
	for _, s := range r.Itemsets {
		if s.Len() <= n {
			out.Itemsets = append(out.Itemsets, s)
		}
	}

	return out
}

// itemsetKey hashes an ascending id list.
func itemsetKey(items []int) uint64 {
	buf := make([]byte, 0, 8*len(items))
	for _, it := range items {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(it))
	}

	return xxhash.Sum64(buf)
}

// assemble converts discovered (itemset, count) pairs into the final Result:
// ids sorted, support = count / n, labels attached when vocab is non-nil.
func assemble(raw []found, n int, minSupport float64, minCount int, vocab *transactions.Vocabulary) (*Result, error) {
	res := &Result{
		Itemsets:     make([]Itemset, 0, len(raw)),
		Transactions: n,
		MinSupport:   minSupport,
		MinCount:     minCount,
	}
	for _, f := range raw {
		items := slices.Clone(f.items)
		slices.Sort(items)
		s := Itemset{Items: items, Count: f.count, Support: float64(f.count) / float64(n)}
		if vocab != nil {
			labels, err := vocab.Labelize(items)
			if err != nil {
				return nil, err
			}
			s.Labels = labels
		}
		res.Itemsets = append(res.Itemsets, s)
	}

	return res, nil
}
