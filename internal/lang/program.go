package lang

import robdd "github.com/VittorioRossi/truth-table-solver"

// InstructionKind distinguishes a show block from a show_ones block.
type InstructionKind int

const (
	// Show enumerates every row of the truth table (§6.3).
	Show InstructionKind = iota
	// ShowOnes emits only rows where at least one target evaluates to 1.
	ShowOnes
)

// Instruction is one show/show_ones statement, naming the formulas it
// prints as columns, in the order they appear in the statement.
type Instruction struct {
	Kind    InstructionKind
	Targets []string
}

// Program is the fully checked result of Parse: the declared variable
// ordering V, every alias's expression tree (ready to hand to
// robdd.Engine.Build), and the ordered list of show/show_ones
// instructions. Mirrors the (variables, assignments, show_instructions)
// triple original_source/project/runner.py's CodeInterpreter builds from
// a parsed program.
type Program struct {
	Vars         []string
	Aliases      map[string]robdd.Expr
	Instructions []Instruction
}

// Resolve returns the expression tree a show/show_ones target name
// refers to: a Var for a declared variable, or the stored alias tree.
// Targets are validated at parse time, so callers needn't check ok.
func (p *Program) Resolve(name string) (robdd.Expr, bool) {
	if expr, ok := p.Aliases[name]; ok {
		return expr, true
	}
	for _, v := range p.Vars {
		if v == name {
			return &robdd.Var{Name: name}, true
		}
	}
	return nil, false
}
