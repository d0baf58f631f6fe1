package fpgrowth

import "context"

// found is one discovered itemset before assembly: item ids in discovery
// order (suffix first) and the absolute support count.
type found struct {
	items []int
	count int
}

// miner encapsulates state during one recursive mining run.
// rank, minCount, maxLen and opts are shared read-only; out is owned.
type miner struct {
	ctx      context.Context
	rank     []int    // global rank per item id, -1 when pruned
	minCount int      // absolute support threshold
	maxLen   int      // NoMaxLen or the largest itemset size to emit
	opts     *Options // hooks
	out      []found  // emitted itemsets, in emission order
}

// fork returns a miner sharing m's configuration with its own output partition.
func (m *miner) fork(ctx context.Context) *miner {
	return &miner{ctx: ctx, rank: m.rank, minCount: m.minCount, maxLen: m.maxLen, opts: m.opts}
}

// mine enumerates every frequent itemset of t extended by suffix.
//
//  1. Empty tree: nothing to do.
//  2. Single path: emit every non-empty subset of the path directly.
//  3. Otherwise: for each header item, least frequent first, emit
//     {item} ∪ suffix and recurse on the item's conditional tree.
//
// Each level fixes one more item, so depth is bounded by the vocabulary size.
func (m *miner) mine(t *tree, suffix []int) error {
	if err := m.ctx.Err(); err != nil {
		return err
	}
	if t.empty() {
		return nil
	}
	if m.opts.OnTreeBuilt != nil {
		m.opts.OnTreeBuilt(t.info(suffix))
	}
	if t.singlePath() {
		return m.emitPath(t, suffix)
	}
	for h := len(t.headers) - 1; h >= 0; h-- {
		if err := m.branch(t, h, suffix); err != nil {
			return err
		}
	}

	return nil
}

// branch handles header row h of t: emits the item under suffix, then mines
// the item's conditional tree unless no larger itemset may be emitted.
func (m *miner) branch(t *tree, h int, suffix []int) error {
	hd := t.headers[h]
	itemset := make([]int, len(suffix)+1)
	copy(itemset, suffix)
	itemset[len(suffix)] = hd.item
	m.emit(itemset, hd.count)

	if !m.canGrow(len(itemset)) {
		return nil
	}
	base := t.patternBase(h)
	if m.opts.OnPatternBase != nil {
		m.opts.OnPatternBase(hd.item, itemset[:len(suffix)], base)
	}

	return m.mine(buildTree(base, m.rank, m.minCount), itemset)
}

// emitPath emits every non-empty subset of a single-path tree's items,
// combined with suffix, in order of subset size then lexicographic position.
// Node counts never increase going down a path, so a subset's support is the
// count of its deepest node.
func (m *miner) emitPath(t *tree, suffix []int) error {
	nodes := t.path()
	k := len(nodes)
	limit := k
	if m.maxLen != NoMaxLen && m.maxLen-len(suffix) < limit {
		limit = m.maxLen - len(suffix)
	}

	idx := make([]int, 0, k)
	for r := 1; r <= limit; r++ {
		if err := m.ctx.Err(); err != nil {
			return err
		}
		idx = idx[:r]
		for i := range idx {
			idx[i] = i
		}
		for {
			itemset := make([]int, len(suffix), len(suffix)+r)
			copy(itemset, suffix)
			for _, i := range idx {
				itemset = append(itemset, int(t.nodes[nodes[i]].item))
			}
			m.emit(itemset, t.nodes[nodes[idx[r-1]]].count)

			// advance to the next r-combination of [0, k)
			i := r - 1
			for i >= 0 && idx[i] == k-r+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < r; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return nil
}

// emit records itemset unless it exceeds maxLen. itemset is retained.
func (m *miner) emit(itemset []int, count int) {
	if m.maxLen != NoMaxLen && len(itemset) > m.maxLen {
		return
	}
	m.out = append(m.out, found{items: itemset, count: count})
	if m.opts.OnItemset != nil {
		m.opts.OnItemset(itemset, count)
	}
}

// canGrow reports whether an itemset of the given size may still be extended.
func (m *miner) canGrow(size int) bool {
	return m.maxLen == NoMaxLen || size < m.maxLen
}
