package fpgrowth

import "sort"

// nilNode marks an absent link (no parent, child, sibling or next node).
const nilNode int32 = -1

// rootNode is the arena slot of the root; its item is rootItem.
const (
	rootNode int32 = 0
	rootItem int32 = -1
)

// node is one arena slot. child/sibling are the ownership edges of the tree
// (first child, next sibling); parent and next are plain back-references used
// for upward path reconstruction and same-item traversal.
type node struct {
	item    int32
	count   int
	parent  int32
	child   int32
	sibling int32
	next    int32
}

// edge keys the child lookup: at most one child per (parent, item).
type edge struct {
	parent int32
	item   int32
}

// header is one header-table row: the item's support in this tree and the
// ends of its same-item node list.
type header struct {
	item  int
	count int
	head  int32
	tail  int32
}

// tree is an FP-tree stored in an arena. All links are indices into nodes;
// dropping the tree drops every node at once.
type tree struct {
	nodes    []node
	kids     map[edge]int32 // child lookup during insertion
	headers  []header       // ordered by global rank, most frequent first
	slot     map[int]int    // item id -> index into headers
	branched bool           // some node has two or more children
}

// newTree allocates an empty tree whose header table holds the given items.
// items must already be ordered by global rank.
func newTree(items []int, counts map[int]int) *tree {
	t := &tree{
		nodes:   make([]node, 1, 1+len(items)),
		kids:    make(map[edge]int32),
		headers: make([]header, len(items)),
		slot:    make(map[int]int, len(items)),
	}
	t.nodes[rootNode] = node{item: rootItem, parent: nilNode, child: nilNode, sibling: nilNode, next: nilNode}
	for i, it := range items {
		t.headers[i] = header{item: it, count: counts[it], head: nilNode, tail: nilNode}
		t.slot[it] = i
	}

	return t
}

// buildTree constructs the FP-tree of a weighted path collection.
//
// Stage 1 (Count): weighted support of every item across paths.
// Stage 2 (Filter): keep items with support >= minCount and a global rank.
// Stage 3 (Insert): insert each path's kept items in global rank order with
// the path's multiplicity.
//
// The main tree is built from the transactions (multiplicity 1 each); a
// conditional tree from a pattern base.
// Complexity: O(L log L) for L total path items.
func buildTree(paths PatternBase, rank []int, minCount int) *tree {
	counts := make(map[int]int)
	for _, p := range paths {
		for _, it := range p.Items {
			counts[it] += p.Count
		}
	}

	items := make([]int, 0, len(counts))
	for it, c := range counts {
		if c >= minCount && rank[it] >= 0 {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return rank[items[i]] < rank[items[j]] })

	t := newTree(items, counts)
	buf := make([]int, 0)
	for _, p := range paths {
		buf = buf[:0]
		for _, it := range p.Items {
			if _, ok := t.slot[it]; ok {
				buf = append(buf, it)
			}
		}
		if len(buf) == 0 {
			continue
		}
		sort.Slice(buf, func(i, j int) bool { return rank[buf[i]] < rank[buf[j]] })
		t.insert(buf, p.Count)
	}

	return t
}

// insert adds one ordered item sequence with multiplicity count, sharing the
// longest existing prefix. Every item must be present in the header table.
func (t *tree) insert(items []int, count int) {
	cur := rootNode
	for _, it := range items {
		k := edge{parent: cur, item: int32(it)}
		c, ok := t.kids[k]
		if ok {
			t.nodes[c].count += count
		} else {
			c = t.addNode(cur, it, count)
			t.kids[k] = c
		}
		cur = c
	}
}

// addNode appends a child of parent to the arena and links it at the tail
// of the item's same-item list.
func (t *tree) addNode(parent int32, item, count int) int32 {
	id := int32(len(t.nodes))
	if t.nodes[parent].child != nilNode {
		t.branched = true
	}
	t.nodes = append(t.nodes, node{
		item:    int32(item),
		count:   count,
		parent:  parent,
		child:   nilNode,
		sibling: t.nodes[parent].child,
		next:    nilNode,
	})
	t.nodes[parent].child = id

	h := &t.headers[t.slot[item]]
	if h.head == nilNode {
		h.head = id
	} else {
		t.nodes[h.tail].next = id
	}
	h.tail = id

	return id
}

// empty reports whether the tree holds no item nodes.
func (t *tree) empty() bool { return len(t.nodes) == 1 }

// singlePath reports whether no node has more than one child.
func (t *tree) singlePath() bool { return !t.branched }

// path returns the node indices of a single-path tree from the root's child
// down to the leaf. Only meaningful when singlePath() is true.
func (t *tree) path() []int32 {
	out := make([]int32, 0, len(t.nodes)-1)
	for n := t.nodes[rootNode].child; n != nilNode; n = t.nodes[n].child {
		out = append(out, n)
	}

	return out
}

// info summarizes the tree for observers.
func (t *tree) info(suffix []int) TreeInfo {
	hdr := make([]HeaderEntry, len(t.headers))
	for i, h := range t.headers {
		hdr[i] = HeaderEntry{Item: h.item, Count: h.count}
	}

	return TreeInfo{
		Suffix:     append([]int(nil), suffix...),
		Header:     hdr,
		Nodes:      len(t.nodes) - 1,
		SinglePath: t.singlePath(),
	}
}
