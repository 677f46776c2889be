package robdd

import "math/big"

// Evaluate walks the built graph under a full or partial assignment and
// reports whether the formula is true under it (§4.5). A variable absent
// from assignment is treated as false, matching the Python original's
// dict.get(name, False) default in ROBDD.evaluate.
func (e *Engine) Evaluate(assignment map[string]bool) bool {
	n := e.root
	for !e.IsTerminal(n) {
		if assignment[e.vars[e.nodes[n].level]] {
			n = e.nodes[n].high
		} else {
			n = e.nodes[n].low
		}
	}
	return n == True
}

// PathsToOne enumerates every root-to-True path as a partial assignment:
// one entry per variable actually tested along that path, omitting
// variables the path never branches on. Grounded on the original's
// show/_show_recursive traversal, which records a variable's value only
// at the decision node that tests it.
func (e *Engine) PathsToOne() []map[string]bool {
	var out []map[string]bool
	var walk func(n Node, path map[string]bool)
	walk = func(n Node, path map[string]bool) {
		if e.IsTerminal(n) {
			if n == True {
				cp := make(map[string]bool, len(path))
				for k, v := range path {
					cp[k] = v
				}
				out = append(out, cp)
			}
			return
		}
		v := e.vars[e.nodes[n].level]

		path[v] = false
		walk(e.nodes[n].low, path)
		delete(path, v)

		path[v] = true
		walk(e.nodes[n].high, path)
		delete(path, v)
	}
	walk(e.root, make(map[string]bool))
	return out
}

// CompleteAssignmentsToOne expands every path returned by PathsToOne into
// all full assignments over Vars() consistent with it: variables the path
// never tested take both values, via the Cartesian product of the
// remaining variables. Grounded on the original's show_ones, which fills
// in "don't care" variables by full enumeration rather than leaving them
// unset.
func (e *Engine) CompleteAssignmentsToOne() []map[string]bool {
	var out []map[string]bool
	for _, partial := range e.PathsToOne() {
		var free []string
		for _, v := range e.vars {
			if _, ok := partial[v]; !ok {
				free = append(free, v)
			}
		}
		out = append(out, expandFree(partial, free)...)
	}
	return out
}

// expandFree returns one complete assignment per combination of values
// for free, each merged on top of base.
func expandFree(base map[string]bool, free []string) []map[string]bool {
	if len(free) == 0 {
		cp := make(map[string]bool, len(base))
		for k, v := range base {
			cp[k] = v
		}
		return []map[string]bool{cp}
	}
	v := free[0]
	rest := free[1:]

	withFalse := make(map[string]bool, len(base)+1)
	withTrue := make(map[string]bool, len(base)+1)
	for k, val := range base {
		withFalse[k] = val
		withTrue[k] = val
	}
	withFalse[v] = false
	withTrue[v] = true

	out := expandFree(withFalse, rest)
	out = append(out, expandFree(withTrue, rest)...)
	return out
}

// Satcount returns the exact number of full assignments over Vars()
// satisfying the built formula, computed in one DFS pass that scales
// each False/True leaf by 2^(variables skipped on the way to it) — the
// same correction rudd's hoperations.go Satcount applies for nodes whose
// low/high subtree does not test every remaining level. It is a derived
// statistic over an already-built graph, not a new operator (§B.3).
func (e *Engine) Satcount() *big.Int {
	if e.Varnum() == 0 {
		if e.root == True {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	count := e.satcount(e.root)
	skip := e.levelOf(e.root)
	shift := new(big.Int).Lsh(big.NewInt(1), uint(skip))
	return new(big.Int).Mul(count, shift)
}

func (e *Engine) satcount(n Node) *big.Int {
	if n == False {
		return big.NewInt(0)
	}
	if n == True {
		return big.NewInt(1)
	}
	level := e.nodes[n].level

	low := e.nodes[n].low
	lowCount := e.satcount(low)
	lowSkip := e.levelOf(low) - level - 1
	lowCount = new(big.Int).Mul(lowCount, new(big.Int).Lsh(big.NewInt(1), uint(lowSkip)))

	high := e.nodes[n].high
	highCount := e.satcount(high)
	highSkip := e.levelOf(high) - level - 1
	highCount = new(big.Int).Mul(highCount, new(big.Int).Lsh(big.NewInt(1), uint(highSkip)))

	return new(big.Int).Add(lowCount, highCount)
}

// levelOf returns a node's level, treating a terminal as sitting one past
// the last real variable so the skip arithmetic in satcount comes out
// non-negative.
func (e *Engine) levelOf(n Node) int32 {
	if e.IsTerminal(n) {
		return int32(e.Varnum())
	}
	return e.nodes[n].level
}
