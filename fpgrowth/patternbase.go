package fpgrowth

// patternBase extracts the conditional pattern base of header row h.
//
// For every node on the item's same-item list, the ancestors from the node's
// parent up to (excluding) the root form one prefix path, reported in
// root-to-leaf order with the node's own count. Nodes hanging directly off the
// root contribute nothing.
//
// The tree is only read, so sibling extractions may run concurrently.
// Complexity: O(sum of path lengths).
func (t *tree) patternBase(h int) PatternBase {
	base := make(PatternBase, 0)
	for n := t.headers[h].head; n != nilNode; n = t.nodes[n].next {
		depth := 0
		for p := t.nodes[n].parent; p != rootNode; p = t.nodes[p].parent {
			depth++
		}
		if depth == 0 {
			continue
		}
		// fill back to front so the path reads root -> leaf
		items := make([]int, depth)
		for p := t.nodes[n].parent; p != rootNode; p = t.nodes[p].parent {
			depth--
			items[depth] = int(t.nodes[p].item)
		}
		base = append(base, Path{Items: items, Count: t.nodes[n].count})
	}

	return base
}
