package robdd

import "github.com/sirupsen/logrus"

// Node is a handle into an Engine's node arena. By convention node 0 is the
// constant False and node 1 is the constant True; every other value is an
// index of a decision node. Nodes are only meaningful relative to the
// Engine that produced them (see rudd's Node, which plays the same role
// for the BuDDy-style implementation).
type Node int32

const (
	// False and True are the two canonical terminal nodes, present (and
	// identical by value) in every Engine.
	False Node = 0
	True  Node = 1
)

// node is one vertex of the arena: a decision node carries the level of
// its tested variable and its two children; the two terminal slots (index
// 0 and 1) store themselves as both children, a convention borrowed from
// rudd's huddnode sentinel rows so that apply's terminal check (level ==
// termLevel) and a plain self-loop agree.
type node struct {
	level int32 // index into Engine.vars, or termLevel for a terminal
	low   Node
	high  Node
}

// termLevel is the level recorded for both terminal nodes. It is always
// larger than any real variable's level, which is what makes the "missing
// variables sort last" rule in apply's variable-selection step (§4.2)
// work without a special case.
const termLevel = int32(1<<31 - 1)

// nodeKey is the hash-consing key of the unique table: (level, low, high).
// Because every node is hash-consed (I1), comparing low/high by value here
// is the same as comparing them by identity.
type nodeKey struct {
	level int32
	low   Node
	high  Node
}

// applyKey memoizes one sub-problem of apply: the pair of operand nodes
// together with the operator being applied.
type applyKey struct {
	op    Operator
	left  Node
	right Node
}

// Engine is a single ROBDD instance: a fixed variable ordering, a node
// arena, the unique table hash-consing it, and an apply cache scoped to
// the current Build. It is the direct analogue of rudd's *BDD/*tables
// pair, minus the parts (resizing, reference counting, garbage collection
// between builds) that this package's lifecycle doesn't need: a Build
// always starts from a clean slate (§3).
type Engine struct {
	vars     []string       // the fixed ordering V, vars[level] is the variable name
	varLevel map[string]int // inverse of vars, for O(1) idx(v)

	nodes  []node
	unique map[nodeKey]Node

	applyCache map[applyKey]Node

	root Node // the result of the last successful Build

	cfg *config
	log *logrus.Logger

	lastErr error
}

// New creates an Engine with no variable ordering installed yet; call
// Build to fix one and construct a graph. Mirrors rudd.New's use of
// functional options, without the varnum argument since ordering is only
// known once Build is called with an expression tree and its ordering.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	e := &Engine{cfg: cfg, log: discardLogger}
	e.resetTables()
	return e
}

// resetTables clears the unique table, the apply cache, and the node
// arena, reinstalling the two terminal nodes. This is the "Build clears
// both tables" step of §3's lifecycle, factored out so Build can call it
// unconditionally before it does anything else.
func (e *Engine) resetTables() {
	e.nodes = make([]node, 2, e.cfg.nodeCapacity)
	e.nodes[False] = node{level: termLevel, low: False, high: False}
	e.nodes[True] = node{level: termLevel, low: True, high: True}
	e.unique = make(map[nodeKey]Node, e.cfg.nodeCapacity)
	e.applyCache = make(map[applyKey]Node)
	e.lastErr = nil
}

// Err returns the error recorded by the last failing Build/Apply call, or
// nil if none has failed since the most recent Build began (each Build
// clears the recorded error before it starts). Mirrors rudd's Error()/Errored() pair, collapsed to the idiomatic
// Go shape of returning the error value itself.
func (e *Engine) Err() error {
	return e.lastErr
}

func (e *Engine) setErr(err error) {
	e.lastErr = err
}

// Varnum returns the number of variables in the current ordering.
func (e *Engine) Varnum() int {
	return len(e.vars)
}

// Vars returns the variable ordering installed by the last Build, in
// order (vars[0] is the most significant for evaluation purposes).
func (e *Engine) Vars() []string {
	out := make([]string, len(e.vars))
	copy(out, e.vars)
	return out
}

// Root returns the node produced by the last successful Build.
func (e *Engine) Root() Node {
	return e.root
}

// idx implements §3's idx(v): the position of v in V, or an index beyond
// any real level (termLevel) for names outside V. The builder rejects
// such names before they ever reach apply (see Build), so apply only
// relies on this ordering for terminal nodes.
func (e *Engine) idx(v string) int32 {
	if i, ok := e.varLevel[v]; ok {
		return int32(i)
	}
	return termLevel
}

// mk is the node store's single constructor (§4.1): it returns the
// unique, hash-consed node for (level, low, high), allocating one only if
// none exists yet. Reducedness is the caller's responsibility; mk itself
// only enforces hash-consing (I1).
func (e *Engine) mk(level int32, low, high Node) (Node, error) {
	key := nodeKey{level: level, low: low, high: high}
	if n, ok := e.unique[key]; ok {
		return n, nil
	}
	if e.cfg.maxNodes > 0 && len(e.nodes) >= e.cfg.maxNodes {
		err := errResource("node arena exceeded configured limit of %d nodes", e.cfg.maxNodes)
		e.setErr(err)
		return 0, err
	}
	id := Node(len(e.nodes))
	e.nodes = append(e.nodes, node{level: level, low: low, high: high})
	e.unique[key] = id
	return id, nil
}

// Low returns the false-branch child of a decision node, or the node
// itself if n is a terminal.
func (e *Engine) Low(n Node) Node {
	return e.nodes[n].low
}

// High returns the true-branch child of a decision node, or the node
// itself if n is a terminal.
func (e *Engine) High(n Node) Node {
	return e.nodes[n].high
}

// IsTerminal reports whether n is one of the two constant nodes.
func (e *Engine) IsTerminal(n Node) bool {
	return e.nodes[n].level == termLevel
}

// Var returns the variable name tested by a decision node. Calling it on
// a terminal node returns "".
func (e *Engine) Var(n Node) string {
	if e.IsTerminal(n) {
		return ""
	}
	return e.vars[e.nodes[n].level]
}

// Value returns the constant carried by a terminal node: 0 for False, 1
// for True. Calling it on a decision node is a programming error in the
// caller and returns -1.
func (e *Engine) Value(n Node) int {
	if n == False {
		return 0
	}
	if n == True {
		return 1
	}
	return -1
}

// Size returns the number of decision nodes in the current unique table;
// the two terminals are not counted. After a sweep this is the reachable
// decision-node count (§4.4's post-condition); the arena itself is not
// compacted, so it can hold more entries than Size reports.
func (e *Engine) Size() int {
	return len(e.unique)
}

// Stats renders a short human-readable summary of the engine's current
// state, in the spirit of rudd's Stats() (trimmed to the fields that
// still mean something once resizing/refcounting are gone).
func (e *Engine) Stats() string {
	return statsString(e)
}
