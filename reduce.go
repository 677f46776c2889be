package robdd

// sweep implements §4.4: a post-build DFS from root that discards every
// unique-table entry not reachable from it, leaving only the two
// terminals and the nodes actually used by the built formula. apply
// already guarantees reducedness (I3) and hash-consing (I1) node by
// node; sweep is what restores the table-level invariant that every
// *remaining* entry is live, after a build that went through
// intermediate sub-expressions (e.g. the operands of an And/Or fold)
// whose own nodes may no longer be reachable from the final root.
//
// Grounded on the original ROBDD.py's _clean_unique_table/
// _mark_reachable_nodes pair: mark reachable nodes by DFS, then rebuild
// the table keeping only marks.
func (e *Engine) sweep() {
	reachable := make(map[Node]bool)
	reachable[False] = true
	reachable[True] = true
	e.markReachable(e.root, reachable)

	newUnique := make(map[nodeKey]Node, len(reachable))
	for key, n := range e.unique {
		if reachable[n] {
			newUnique[key] = n
		}
	}
	e.unique = newUnique

	// The apply cache may hold entries for nodes that are no longer part
	// of any live sub-graph; they are harmless (a future apply call would
	// simply reuse a dead-but-still-valid node), but dropping them keeps
	// memory proportional to the reachable set rather than to every
	// intermediate sub-expression ever built.
	newCache := make(map[applyKey]Node, len(e.applyCache))
	for key, n := range e.applyCache {
		if reachable[key.left] && reachable[key.right] && reachable[n] {
			newCache[key] = n
		}
	}
	e.applyCache = newCache
}

func (e *Engine) markReachable(n Node, reachable map[Node]bool) {
	if reachable[n] {
		return
	}
	reachable[n] = true
	if e.IsTerminal(n) {
		return
	}
	e.markReachable(e.nodes[n].low, reachable)
	e.markReachable(e.nodes[n].high, reachable)
}
