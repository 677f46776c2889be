package tt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VittorioRossi/truth-table-solver/internal/lang"
)

func TestRender_TwoVariableOr(t *testing.T) {
	prog, err := lang.Parse("test", "var x y; z = x or y; show z;")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Render(&b, prog, prog.Instructions[0]))

	out := b.String()
	require.Contains(t, out, "# x y | z")
	require.Contains(t, out, "0 1")
	require.Contains(t, out, "1 1")
	require.True(t, strings.HasSuffix(out, "\n\n"), "each rendered block ends with a blank line")
}

func TestRender_ShowOnesSuppressesZeroRows(t *testing.T) {
	prog, err := lang.Parse("test", "var a b c; f = a and b and c; show_ones f;")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Render(&b, prog, prog.Instructions[0]))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	// header + rule + exactly one data row (1 1 1   1)
	require.Len(t, lines, 3)
	require.Contains(t, lines[2], "1")
}

func TestRender_UnknownTargetIsError(t *testing.T) {
	prog, err := lang.Parse("test", "var x; show x;")
	require.NoError(t, err)

	instr := lang.Instruction{Kind: lang.Show, Targets: []string{"nope"}}
	var b strings.Builder
	require.Error(t, Render(&b, prog, instr))
}

func TestStats_MatchesRenderedOnesCount(t *testing.T) {
	prog, err := lang.Parse("test", "var x y; z = x or y; show z;")
	require.NoError(t, err)

	lines, err := Stats(prog, prog.Instructions[0])
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "z: 3 of 4 assignments")
}
