package robdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildXorLike(t *testing.T) *Engine {
	t.Helper()
	e := New()
	// (a and not b) or (not a and b): true on exactly two of four rows.
	expr := &Or{Xs: []Expr{
		&And{Xs: []Expr{&Var{Name: "a"}, &Not{X: &Var{Name: "b"}}}},
		&And{Xs: []Expr{&Not{X: &Var{Name: "a"}}, &Var{Name: "b"}}},
	}}
	_, err := e.Build(expr, []string{"a", "b"})
	require.NoError(t, err)
	return e
}

func TestEvaluate_AllFourRows(t *testing.T) {
	e := buildXorLike(t)
	cases := []struct {
		a, b bool
		want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for _, c := range cases {
		got := e.Evaluate(map[string]bool{"a": c.a, "b": c.b})
		require.Equal(t, c.want, got, "a=%v b=%v", c.a, c.b)
	}
}

func TestEvaluate_MissingVariableDefaultsFalse(t *testing.T) {
	e := buildXorLike(t)
	require.True(t, e.Evaluate(map[string]bool{"a": true}))
}

func TestPathsToOne_CoversBothSatisfyingBranches(t *testing.T) {
	e := buildXorLike(t)
	paths := e.PathsToOne()
	require.Len(t, paths, 2)
	for _, p := range paths {
		require.True(t, e.Evaluate(p))
	}
}

func TestCompleteAssignmentsToOne_MatchesBruteForce(t *testing.T) {
	e := buildXorLike(t)
	complete := e.CompleteAssignmentsToOne()

	var want []map[string]bool
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			assignment := map[string]bool{"a": a, "b": b}
			if e.Evaluate(assignment) {
				want = append(want, assignment)
			}
		}
	}
	require.ElementsMatch(t, want, complete)
}

func TestSatcount_MatchesBruteForce(t *testing.T) {
	e := buildXorLike(t)
	count := 0
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			if e.Evaluate(map[string]bool{"a": a, "b": b}) {
				count++
			}
		}
	}
	require.Equal(t, int64(count), e.Satcount().Int64())
}

func TestSatcount_ConstantFormulas(t *testing.T) {
	eTrue := New()
	_, err := eTrue.Build(&Const{Value: true}, []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, int64(4), eTrue.Satcount().Int64())

	eFalse := New()
	_, err = eFalse.Build(&Const{Value: false}, []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, int64(0), eFalse.Satcount().Int64())
}

func TestSatcount_SkippedVariableDoublesCount(t *testing.T) {
	// "a" alone, ordered before an unrelated "b": satisfied by both values
	// of b, so the count must be 2 out of 4, not 1.
	e := New()
	_, err := e.Build(&Var{Name: "a"}, []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, int64(2), e.Satcount().Int64())
}
