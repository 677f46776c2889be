package robdd

// Expr is an expression tree handed to Build (§6.1). It is the tagged
// variant called for by §9's "Dynamic expression shapes ... re-architect
// as a tagged variant": the source material's n-ary (tag, ...operands)
// tuples, dispatched by string tag, become five concrete, pointer-identity
// types matched exhaustively in buildNode.
type Expr interface {
	exprNode()
}

// Var references a declared variable by name.
type Var struct{ Name string }

// Const is the Boolean constant True or False.
type Const struct{ Value bool }

// Not is unary negation.
type Not struct{ X Expr }

// And is the n-ary conjunction of one or more sub-expressions (k=1 is the
// identity on that subtree, per §6.1).
type And struct{ Xs []Expr }

// Or is the n-ary disjunction of one or more sub-expressions.
type Or struct{ Xs []Expr }

func (*Var) exprNode()   {}
func (*Const) exprNode() {}
func (*Not) exprNode()   {}
func (*And) exprNode()   {}
func (*Or) exprNode()    {}

// Build implements §4.3: it clears the Engine's state, installs the
// ordering V, translates expr into a graph, and sweeps away nodes left
// over from short-circuited sub-expressions before returning the root.
//
// Building leaves the Engine in a cleared, reusable state on failure, as
// required by §4.3's "fatal for this build" clause: resetTables runs
// before translation starts, so a failed Build never leaves a half-built
// graph visible, and a caller may immediately retry with a corrected
// expression or ordering.
func (e *Engine) Build(expr Expr, order []string) (Node, error) {
	e.resetTables()
	e.vars = append([]string(nil), order...)
	e.varLevel = make(map[string]int, len(order))
	for i, v := range order {
		e.varLevel[v] = i
	}

	memo := make(map[Expr]Node)
	root, err := e.buildNode(expr, memo)
	if err != nil {
		e.resetTables()
		e.vars = nil
		e.varLevel = nil
		e.setErr(err)
		return 0, err
	}
	e.root = root
	e.sweep()
	e.log.WithField("nodes", e.Size()).Debug("build complete")
	return e.root, nil
}

// buildNode is the "Recursively translates expr" step of §4.3, memoized
// by expression-tree identity (memo) so that a sub-expression shared by
// several parents is only ever built once per Build call, as required by
// "The builder memoizes by expression-tree identity".
func (e *Engine) buildNode(expr Expr, memo map[Expr]Node) (Node, error) {
	if n, ok := memo[expr]; ok {
		return n, nil
	}
	n, err := e.buildNodeUncached(expr, memo)
	if err != nil {
		return 0, err
	}
	memo[expr] = n
	return n, nil
}

func (e *Engine) buildNodeUncached(expr Expr, memo map[Expr]Node) (Node, error) {
	switch x := expr.(type) {
	case *Var:
		level, ok := e.varLevel[x.Name]
		if !ok {
			return 0, errEngine("Build", "unknown identifier %q", x.Name)
		}
		return e.mk(int32(level), False, True)

	case *Const:
		if x.Value {
			return True, nil
		}
		return False, nil

	case *Not:
		g, err := e.buildNode(x.X, memo)
		if err != nil {
			return 0, err
		}
		return e.not(g)

	case *And:
		if len(x.Xs) == 0 {
			return 0, errEngine("Build", "malformed expression: and with zero operands")
		}
		res, err := e.buildNode(x.Xs[0], memo)
		if err != nil {
			return 0, err
		}
		for _, sub := range x.Xs[1:] {
			n, err := e.buildNode(sub, memo)
			if err != nil {
				return 0, err
			}
			res, err = e.apply(OpAnd, res, n)
			if err != nil {
				return 0, err
			}
		}
		return res, nil

	case *Or:
		if len(x.Xs) == 0 {
			return 0, errEngine("Build", "malformed expression: or with zero operands")
		}
		res, err := e.buildNode(x.Xs[0], memo)
		if err != nil {
			return 0, err
		}
		for _, sub := range x.Xs[1:] {
			n, err := e.buildNode(sub, memo)
			if err != nil {
				return 0, err
			}
			res, err = e.apply(OpOr, res, n)
			if err != nil {
				return 0, err
			}
		}
		return res, nil

	default:
		return 0, errEngine("Build", "malformed expression: unrecognized node type %T", expr)
	}
}
