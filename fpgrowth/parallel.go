package fpgrowth

import "golang.org/x/sync/errgroup"

// mineParallel mines the top-level header rows of the main tree concurrently,
// at most workers at a time.
//
// The main tree is only read while branches run (pattern-base extraction
// never mutates it). Each branch writes to its own partition, and partitions
// are appended in the sequential iteration order, so the output is identical
// to mine(t, nil).
func (m *miner) mineParallel(t *tree, workers int) error {
	if err := m.ctx.Err(); err != nil {
		return err
	}
	if t.empty() {
		return nil
	}
	if t.singlePath() {
		// nothing to fan out: the path shortcut never recurses
		return m.mine(t, nil)
	}
	if m.opts.OnTreeBuilt != nil {
		m.opts.OnTreeBuilt(t.info(nil))
	}

	parts := make([][]found, len(t.headers))
	g, ctx := errgroup.WithContext(m.ctx)
	g.SetLimit(workers)
	for h := len(t.headers) - 1; h >= 0; h-- {
		h := h // per-iteration copy (go.mod targets 1.21, pre-loopvar semantics)
		g.Go(func() error {
			sub := m.fork(ctx)
			if err := sub.branch(t, h, nil); err != nil {
				return err
			}
			parts[h] = sub.out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for h := len(parts) - 1; h >= 0; h-- {
		m.out = append(m.out, parts[h]...)
	}

	return nil
}
