// Package fpgrowth defines types and options for FP-Growth mining,
// including length limits, label output, parallel branches, cancellation,
// staged observer hooks, and logging.
package fpgrowth

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/itemsets/transactions"
)

var (
	// ErrConfiguration is the category sentinel for invalid mining parameters.
	// Every specific configuration error wraps it.
	ErrConfiguration = errors.New("fpgrowth: invalid configuration")

	// ErrMinSupport indicates a minimum support outside (0, 1].
	ErrMinSupport = fmt.Errorf("fpgrowth: min support must be in (0, 1]: %w", ErrConfiguration)

	// ErrMaxLen indicates a maximum itemset length below 1.
	ErrMaxLen = fmt.Errorf("fpgrowth: max len must be >= 1: %w", ErrConfiguration)

	// ErrWorkers indicates a worker count below 1.
	ErrWorkers = fmt.Errorf("fpgrowth: workers must be >= 1: %w", ErrConfiguration)

	// ErrNilMatrix is returned when a nil transaction matrix is passed to Mine.
	ErrNilMatrix = errors.New("fpgrowth: matrix is nil")
)

// NoMaxLen disables the itemset length limit.
const NoMaxLen = -1

// Option configures optional behavior of Mine.
// Use with Mine(m, minSupport, opts...).
type Option func(*Options)

// Options holds configurable parameters for a mining run.
type Options struct {
	// Ctx allows a caller-level wall-clock budget; defaults to context.Background().
	// It is checked between recursive calls; cancelling aborts with ctx.Err().
	Ctx context.Context

	// MaxLen, if not NoMaxLen, suppresses itemsets with more than MaxLen items
	// and stops recursing once a suffix reaches MaxLen. Must be >= 1 when set.
	MaxLen int

	// Vocabulary, if non-nil, maps item identifiers to labels in the result.
	// Its size must equal the matrix column count.
	Vocabulary *transactions.Vocabulary

	// Workers bounds how many top-level branches are mined concurrently.
	// 1 (the default) mines sequentially.
	Workers int

	// Logger receives run summaries at Debug level and, with Verbose, the staged output.
	Logger logrus.FieldLogger

	// Verbose installs logging hooks for every tree, pattern base and itemset.
	Verbose bool

	// OnTreeBuilt, if non-nil, is invoked for every non-empty (conditional) tree
	// before it is mined. Must be safe for concurrent use when Workers > 1.
	OnTreeBuilt func(info TreeInfo)

	// OnPatternBase, if non-nil, is invoked after the conditional pattern base of
	// item (under suffix) has been extracted.
	OnPatternBase func(item int, suffix []int, base PatternBase)

	// OnItemset, if non-nil, is invoked for every emitted itemset with its absolute count.
	// items is only valid for the duration of the call.
	OnItemset func(items []int, count int)
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No length limit (MaxLen = NoMaxLen)
//   - Identifier output (no Vocabulary)
//   - Sequential mining (Workers = 1)
//   - logrus standard logger, no verbose output, no hooks
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxLen:  NoMaxLen,
		Workers: 1,
		Logger:  logrus.StandardLogger(),
	}
}

// WithContext returns an Option that sets the Context for the run.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLen returns an Option that limits emitted itemsets to n items.
func WithMaxLen(n int) Option {
	return func(o *Options) {
		o.MaxLen = n
	}
}

// WithVocabulary returns an Option that reports item labels from v.
func WithVocabulary(v *transactions.Vocabulary) Option {
	return func(o *Options) {
		o.Vocabulary = v
	}
}

// WithWorkers returns an Option that mines up to n top-level branches concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger returns an Option that replaces the logger. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerbose returns an Option that logs every stage at Debug level.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// WithOnTreeBuilt returns an Option that installs fn as the tree hook.
func WithOnTreeBuilt(fn func(info TreeInfo)) Option {
	return func(o *Options) {
		o.OnTreeBuilt = fn
	}
}

// WithOnPatternBase returns an Option that installs fn as the pattern-base hook.
func WithOnPatternBase(fn func(item int, suffix []int, base PatternBase)) Option {
	return func(o *Options) {
		o.OnPatternBase = fn
	}
}

// WithOnItemset returns an Option that installs fn as the emission hook.
func WithOnItemset(fn func(items []int, count int)) Option {
	return func(o *Options) {
		o.OnItemset = fn
	}
}

// HeaderEntry is one row of a tree's header table.
type HeaderEntry struct {
	Item  int // item identifier
	Count int // support of Item within the tree
}

// TreeInfo describes a freshly built FP-tree for observers.
type TreeInfo struct {
	// Suffix is the itemset every transaction of this tree is conditioned on;
	// empty for the main tree.
	Suffix []int

	// Header lists the tree's items, most frequent first.
	Header []HeaderEntry

	// Nodes is the number of nodes, root excluded.
	Nodes int

	// SinglePath reports whether no node has more than one child.
	SinglePath bool
}

// Path is one entry of a conditional pattern base: the items from the root
// (exclusive) down to the parent of the conditioning node, and that node's count.
type Path struct {
	Items []int
	Count int
}

// PatternBase is the ordered collection of prefix paths leading to one item.
type PatternBase []Path

// gatherOptions applies opts over the defaults and validates the result together
// with minSupport. No mining work happens before this returns nil.
func gatherOptions(minSupport float64, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !(minSupport > 0 && minSupport <= 1) { // also rejects NaN
		return o, fmt.Errorf("got %v: %w", minSupport, ErrMinSupport)
	}
	if o.MaxLen != NoMaxLen && o.MaxLen < 1 {
		return o, fmt.Errorf("got %d: %w", o.MaxLen, ErrMaxLen)
	}
	if o.Workers < 1 {
		return o, fmt.Errorf("got %d: %w", o.Workers, ErrWorkers)
	}
	if o.Verbose {
		installVerboseHooks(&o)
	}

	return o, nil
}
