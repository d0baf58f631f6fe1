// Package fpgrowth mines frequent itemsets with the FP-Growth algorithm:
// every itemset whose support across a set of transactions meets a minimum
// threshold is enumerated without generating candidate itemsets.
//
// What:
//
//   - Item counting: one pass over the transactions gives per-item supports and
//     a global order (descending support, ties by ascending item id).
//   - FP-tree: each transaction's frequent items, in global order, are inserted
//     into a prefix-sharing tree; a header table links all nodes of an item.
//   - Conditional pattern bases: for an item, the prefix paths (with counts)
//     leading to its nodes.
//   - Recursion: a conditional FP-tree is built from every pattern base and
//     mined in turn; single-path trees are enumerated directly.
//   - Assembly: (itemset, count) pairs become (support, itemset), with optional
//     labels from a transactions.Vocabulary.
//
// Why:
//   - Market-basket analysis, co-occurrence discovery, feature-set mining
//   - Input to association-rule tooling (rules themselves are out of scope)
//
// Storage:
//
// Nodes live in an arena slice and refer to each other by int32 index. The
// child/sibling links form the tree; parent and same-item links are plain
// indices. Dropping a tree drops its arena.
//
// Determinism:
//
// For identical input the output (content and order) is identical, including
// with WithWorkers(n > 1). Reordering matrix columns can change the order of
// the output but never its content.
//
// Options:
//
//   - WithMaxLen(n)          emit only itemsets of at most n items.
//   - WithVocabulary(v)      attach item labels to every itemset.
//   - WithWorkers(n)         mine top-level branches concurrently.
//   - WithContext(ctx)       cancel a long run.
//   - WithLogger(l)          logrus logger for summaries and verbose output.
//   - WithVerbose()          log every tree, pattern base and itemset at Debug.
//   - WithOnTreeBuilt(fn), WithOnPatternBase(fn), WithOnItemset(fn)  observer hooks.
//
// Example:
//
//	res, err := fpgrowth.MineBaskets([][]string{
//		{"milk", "bread"}, {"milk"}, {"bread", "eggs"},
//	}, 0.5)
//	if err != nil {
//		// ErrMinSupport / ErrMaxLen / transactions.ErrInputShape ...
//	}
//	for _, s := range res.Itemsets {
//		fmt.Println(s.Support, s.Labels)
//	}
package fpgrowth
