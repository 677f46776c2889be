package robdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildVar is a small helper used across this package's tests to avoid
// depending on internal/lang: it builds the single-variable identity
// formula "x" under the given ordering.
func buildVar(t *testing.T, e *Engine, name string, order []string) Node {
	t.Helper()
	n, err := e.Build(&Var{Name: name}, order)
	require.NoError(t, err)
	return n
}

func TestApply_AndOrTruthTable(t *testing.T) {
	e := New()
	x, err := e.Build(&Var{Name: "x"}, []string{"x", "y"})
	require.NoError(t, err)

	// Build y separately against the same ordering by reusing the low-level
	// mk path, since Build only keeps one root alive at a time.
	y, err := e.mk(1, False, True)
	require.NoError(t, err)

	and, err := e.Apply(OpAnd, x, y)
	require.NoError(t, err)
	or, err := e.Apply(OpOr, x, y)
	require.NoError(t, err)

	cases := []struct {
		x, y     bool
		wantAnd  bool
		wantOr   bool
	}{
		{false, false, false, false},
		{false, true, false, true},
		{true, false, false, true},
		{true, true, true, true},
	}
	for _, c := range cases {
		assignment := map[string]bool{"x": c.x, "y": c.y}
		got := e.evaluateNode(and, assignment)
		require.Equal(t, c.wantAnd, got, "and(%v,%v)", c.x, c.y)
		got = e.evaluateNode(or, assignment)
		require.Equal(t, c.wantOr, got, "or(%v,%v)", c.x, c.y)
	}
}

// evaluateNode is Evaluate generalized to an arbitrary node, used by tests
// that need to check more than one formula against a single Engine.
func (e *Engine) evaluateNode(n Node, assignment map[string]bool) bool {
	for !e.IsTerminal(n) {
		if assignment[e.vars[e.nodes[n].level]] {
			n = e.nodes[n].high
		} else {
			n = e.nodes[n].low
		}
	}
	return n == True
}

func TestNot_DoubleNegationIsIdentity(t *testing.T) {
	e := New()
	x := buildVar(t, e, "x", []string{"x"})

	notX, err := e.Not(x)
	require.NoError(t, err)
	require.NotEqual(t, x, notX)

	notNotX, err := e.Not(notX)
	require.NoError(t, err)
	require.Equal(t, x, notNotX, "not(not(x)) must be the same node as x (canonicity)")
}

func TestApply_ReduceOnConstruct(t *testing.T) {
	e := New()
	x, err := e.Build(&And{Xs: []Expr{&Var{Name: "x"}, &Const{Value: true}}}, []string{"x"})
	require.NoError(t, err)
	require.Equal(t, int32(0), e.nodes[x].level)

	trivial, err := e.Build(&Or{Xs: []Expr{&Var{Name: "x"}, &Not{X: &Var{Name: "x"}}}}, []string{"x"})
	require.NoError(t, err)
	require.Equal(t, True, trivial, "x or not(x) must reduce to the True terminal")
}
