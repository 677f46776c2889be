package robdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_StartsWithTwoTerminalsOnly(t *testing.T) {
	e := New()
	require.Equal(t, 0, e.Size())
	require.True(t, e.IsTerminal(False))
	require.True(t, e.IsTerminal(True))
	require.Equal(t, 0, e.Value(False))
	require.Equal(t, 1, e.Value(True))
}

func TestMk_HashConsesIdenticalTriples(t *testing.T) {
	e := New()
	e.vars = []string{"x"}
	e.varLevel = map[string]int{"x": 0}

	n1, err := e.mk(0, False, True)
	require.NoError(t, err)
	n2, err := e.mk(0, False, True)
	require.NoError(t, err)
	require.Equal(t, n1, n2, "mk must return the same node for the same (level, low, high)")
}

func TestMk_RespectsMaxNodes(t *testing.T) {
	e := New(WithMaxNodes(3))
	_, err := e.mk(0, False, True)
	require.NoError(t, err) // arena at len 2 (the terminals); this is the 3rd node, right at the cap

	_, err = e.mk(1, False, True)
	require.Error(t, err)
	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
}

func TestWithNodeCapacity_IgnoresTooSmallValues(t *testing.T) {
	e := New(WithNodeCapacity(1))
	require.Equal(t, defaultConfig().nodeCapacity, e.cfg.nodeCapacity)

	e2 := New(WithNodeCapacity(100))
	require.Equal(t, 100, e2.cfg.nodeCapacity)
}

func TestSetLogger_NilRestoresDiscardLogger(t *testing.T) {
	e := New()
	require.Same(t, discardLogger, e.log)

	e.SetLogger(nil)
	require.Same(t, discardLogger, e.log)
}

func TestStats_ReportsCountsAfterBuild(t *testing.T) {
	e := New()
	_, err := e.Build(&And{Xs: []Expr{&Var{Name: "a"}, &Var{Name: "b"}}}, []string{"a", "b"})
	require.NoError(t, err)
	s := e.Stats()
	require.Contains(t, s, "variables:")
	require.Contains(t, s, "live nodes:")
}
