package fpgrowth

import "github.com/sirupsen/logrus"

// installVerboseHooks chains Debug-level logging in front of any user hooks.
// The chained hooks are as concurrency-safe as the user hooks they wrap.
func installVerboseHooks(o *Options) {
	log := o.Logger

	onTree := o.OnTreeBuilt
	o.OnTreeBuilt = func(info TreeInfo) {
		log.WithFields(logrus.Fields{
			"suffix":      info.Suffix,
			"nodes":       info.Nodes,
			"items":       len(info.Header),
			"single_path": info.SinglePath,
		}).Debug("fp-tree built")
		if onTree != nil {
			onTree(info)
		}
	}

	onBase := o.OnPatternBase
	o.OnPatternBase = func(item int, suffix []int, base PatternBase) {
		log.WithFields(logrus.Fields{
			"item":   item,
			"suffix": suffix,
			"paths":  len(base),
		}).Debug("conditional pattern base extracted")
		if onBase != nil {
			onBase(item, suffix, base)
		}
	}

	onItemset := o.OnItemset
	o.OnItemset = func(items []int, count int) {
		log.WithFields(logrus.Fields{
			"items": items,
			"count": count,
		}).Debug("itemset emitted")
		if onItemset != nil {
			onItemset(items, count)
		}
	}
}
