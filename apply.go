package robdd

// Apply implements the binary recursive operator combinator of §4.2. It is
// memoized on (identity(a), identity(b), op) through Engine.applyCache, the
// cache that makes the algorithm polynomial rather than exponential (the
// "correctness-level performance requirement" called out in the spec).
//
// Grounded on rudd's hoperations.go apply/Apply pair, trimmed to the two
// connectives this package supports and rewritten to return (Node, error)
// instead of threading a ref-stack and a package-level error flag through a
// C-style int arena.
func (e *Engine) Apply(op Operator, a, b Node) (Node, error) {
	n, err := e.apply(op, a, b)
	if err != nil {
		e.setErr(err)
		return 0, err
	}
	return n, nil
}

func (e *Engine) apply(op Operator, a, b Node) (Node, error) {
	// Terminal base case (§4.2 step 1).
	if e.IsTerminal(a) && e.IsTerminal(b) {
		return Node(terminalResult[op][e.Value(a)][e.Value(b)]), nil
	}

	// Cache probe (§4.2 step 2). Operators here are commutative, so we
	// canonicalize the pair by numeric identity before probing: a pure
	// performance improvement, never a correctness requirement.
	left, right := a, b
	if left > right {
		left, right = right, left
	}
	key := applyKey{op: op, left: left, right: right}
	if n, ok := e.applyCache[key]; ok {
		return n, nil
	}

	// Top-variable selection and cofactor (§4.2 steps 3-4).
	va, vb := e.nodes[a].level, e.nodes[b].level
	level := va
	if vb < level {
		level = vb
	}
	aLow, aHigh := a, a
	if va == level {
		aLow, aHigh = e.nodes[a].low, e.nodes[a].high
	}
	bLow, bHigh := b, b
	if vb == level {
		bLow, bHigh = e.nodes[b].low, e.nodes[b].high
	}

	// Recurse (§4.2 step 5).
	low, err := e.apply(op, aLow, bLow)
	if err != nil {
		return 0, err
	}
	high, err := e.apply(op, aHigh, bHigh)
	if err != nil {
		return 0, err
	}

	// Reduce-on-construct (§4.2 step 6): this is what keeps (I3) true of
	// every node apply ever returns.
	if low == high {
		e.applyCache[key] = low
		return low, nil
	}

	res, err := e.mk(level, low, high)
	if err != nil {
		return 0, err
	}
	e.applyCache[key] = res
	return res, nil
}

// Not returns the negation of n. The spec allows either routing negation
// through Apply with a projecting operator, or swapping children at
// terminals directly; we take the second, cheaper route, the same one
// rudd's hoperations.go takes for its unary not.
func (e *Engine) Not(n Node) (Node, error) {
	res, err := e.not(n)
	if err != nil {
		e.setErr(err)
		return 0, err
	}
	return res, nil
}

func (e *Engine) not(n Node) (Node, error) {
	if n == False {
		return True, nil
	}
	if n == True {
		return False, nil
	}
	key := applyKey{op: opNot, left: n, right: n}
	if res, ok := e.applyCache[key]; ok {
		return res, nil
	}
	low, err := e.not(e.nodes[n].low)
	if err != nil {
		return 0, err
	}
	high, err := e.not(e.nodes[n].high)
	if err != nil {
		return 0, err
	}
	if low == high {
		e.applyCache[key] = low
		return low, nil
	}
	res, err := e.mk(e.nodes[n].level, low, high)
	if err != nil {
		return 0, err
	}
	e.applyCache[key] = res
	return res, nil
}

// opNot is a private cache-id used to keep Not's memo entries from
// colliding with And/Or entries that happen to share a node pair; it is
// never passed to Apply. Mirrors rudd's dedicated opnot cache-id in
// cache.go/operator.go, which plays the same role for the same reason.
const opNot Operator = -1

// And folds Apply(OpAnd) over a sequence of nodes, left to right, the way
// rudd's Set.And does over a variadic Node list.
func (e *Engine) And(ns ...Node) (Node, error) {
	if len(ns) == 0 {
		return True, nil
	}
	res := ns[0]
	for _, n := range ns[1:] {
		var err error
		res, err = e.Apply(OpAnd, res, n)
		if err != nil {
			return 0, err
		}
	}
	return res, nil
}

// Or folds Apply(OpOr) over a sequence of nodes, left to right.
func (e *Engine) Or(ns ...Node) (Node, error) {
	if len(ns) == 0 {
		return False, nil
	}
	res := ns[0]
	for _, n := range ns[1:] {
		var err error
		res, err = e.Apply(OpOr, res, n)
		if err != nil {
			return 0, err
		}
	}
	return res, nil
}
