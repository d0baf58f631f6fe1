// Package fpgrowth implements frequent-itemset mining with FP-Growth on a
// transactions.Matrix, supporting length limits, label output, parallel
// top-level branches, cancellation, staged hooks and logrus logging.
//
// Key features:
//   - Mine(m, minSupport, opts...): every itemset with count >= MinCount(minSupport, rows)
//   - MineBaskets(records, minSupport, opts...): encode label records, then Mine
//   - Hooks: OnTreeBuilt, OnPatternBase, OnItemset
//   - Limits: MaxLen suppresses larger itemsets and prunes recursion
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(T·L log L) to build the main tree (T transactions, L items each),
//     plus the output-sensitive recursion over conditional trees.
//   - Memory: O(nodes) per live tree; at most one conditional tree per recursion level.
//
// Errors:
//
//   - ErrNilMatrix                 if m is nil.
//   - ErrMinSupport, ErrMaxLen, ErrWorkers (all wrap ErrConfiguration).
//   - transactions.ErrInputShape   family for malformed matrices or vocabularies.
//   - context errors               if the context is done.
package fpgrowth

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/itemsets/transactions"
)

// Mine returns every itemset whose support over the rows of m is at least
// minSupport, together with its support.
//
// Configuration is validated first, then every cell of m; no mining work is
// done when either fails. A matrix without rows yields an empty Result.
func Mine(m transactions.Matrix, minSupport float64, opts ...Option) (*Result, error) {
	// 1. Validate input and options
	if isNil(m) {
		return nil, ErrNilMatrix
	}
	o, err := gatherOptions(minSupport, opts)
	if err != nil {
		return nil, err
	}
	if o.Vocabulary != nil {
		if err = o.Vocabulary.Check(m); err != nil {
			return nil, err
		}
	}
	baskets, err := transactions.Baskets(m)
	if err != nil {
		return nil, err
	}

	return mineBaskets(baskets, m.Cols(), minSupport, &o)
}

// MineBaskets encodes records of item labels with a transactions.Encoder and
// mines the result. Itemsets always carry labels; any WithVocabulary option is
// superseded by the encoder's vocabulary.
func MineBaskets(records [][]string, minSupport float64, opts ...Option) (*Result, error) {
	if _, err := gatherOptions(minSupport, opts); err != nil {
		return nil, err
	}
	enc := transactions.NewEncoder()
	m, err := enc.FitTransform(records)
	if err != nil {
		return nil, err
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)

	return Mine(m, minSupport, append(all, WithVocabulary(enc.Vocabulary()))...)
}

// mineBaskets runs counter, builder, miner and assembler over validated baskets.
func mineBaskets(baskets [][]int, numItems int, minSupport float64, o *Options) (*Result, error) {
	n := len(baskets)
	if n == 0 {
		return &Result{Itemsets: []Itemset{}, MinSupport: minSupport}, nil
	}
	start := time.Now()

	// 2. Count items and fix the global order
	minCount := MinCount(minSupport, n)
	rank := rankItems(countItems(baskets, numItems), minCount)

	// 3. Build the main tree
	base := make(PatternBase, n)
	for i, b := range baskets {
		base[i] = Path{Items: b, Count: 1}
	}
	main := buildTree(base, rank, minCount)

	// 4. Mine
	mr := &miner{ctx: o.Ctx, rank: rank, minCount: minCount, maxLen: o.MaxLen, opts: o}
	if o.Workers > 1 {
		err := mr.mineParallel(main, o.Workers)
		if err != nil {
			return nil, err
		}
	} else if err := mr.mine(main, nil); err != nil {
		return nil, err
	}

	// 5. Assemble
	res, err := assemble(mr.out, n, minSupport, minCount, o.Vocabulary)
	if err != nil {
		return nil, err
	}
	o.Logger.WithFields(logrus.Fields{
		"transactions": n,
		"min_count":    minCount,
		"tree_nodes":   len(main.nodes) - 1,
		"itemsets":     res.Len(),
		"elapsed":      time.Since(start),
	}).Debug("fp-growth finished")

	return res, nil
}

// isNil reports whether m is nil or a typed nil *transactions.Dense.
func isNil(m transactions.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*transactions.Dense)

	return ok && d == nil
}
