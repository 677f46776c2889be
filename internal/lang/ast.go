package lang

import (
	"github.com/alecthomas/participle/v2/lexer"

	robdd "github.com/VittorioRossi/truth-table-solver"
)

// reservedWords cannot be used as identifiers (§6.2: "reserved keywords
// {var, show, show_ones, not, and, or, True, False} cannot be
// identifiers").
var reservedWords = map[string]bool{
	"var": true, "show": true, "show_ones": true,
	"not": true, "and": true, "or": true,
	"True": true, "False": true,
}

// checker accumulates the declared-name namespace while translating a
// parsed sourceProgram into a Program, grounded on
// original_source/project/runner.py's CodeInterpreter, which walks
// statements in order threading the same kind of running state
// (variables declared so far, assignments resolved so far).
type checker struct {
	declared map[string]bool // vars and aliases share one namespace
	prog     *Program
}

func newChecker() *checker {
	return &checker{
		declared: make(map[string]bool),
		prog: &Program{
			Aliases: make(map[string]robdd.Expr),
		},
	}
}

func checkProgram(src *sourceProgram) (*Program, error) {
	c := newChecker()
	for _, stmt := range src.Statements {
		if err := c.statement(stmt); err != nil {
			return nil, err
		}
	}
	return c.prog, nil
}

func (c *checker) statement(stmt *sourceStatement) error {
	switch {
	case stmt.VarDecl != nil:
		return c.varDecl(stmt.VarDecl)
	case stmt.Assignment != nil:
		return c.assignment(stmt.Assignment)
	case stmt.Show != nil:
		return c.show(stmt.Show.Pos, Show, stmt.Show.Names)
	case stmt.ShowOnes != nil:
		return c.show(stmt.ShowOnes.Pos, ShowOnes, stmt.ShowOnes.Names)
	}
	return nil
}

func (c *checker) varDecl(decl *sourceVarDecl) error {
	for _, name := range decl.Names {
		if err := c.declare(decl.Pos, name); err != nil {
			return err
		}
		c.prog.Vars = append(c.prog.Vars, name)
	}
	return nil
}

func (c *checker) assignment(a *sourceAssignment) error {
	expr, err := c.expr(a.Expr)
	if err != nil {
		return err
	}
	if err := c.declare(a.Pos, a.Name); err != nil {
		return err
	}
	c.prog.Aliases[a.Name] = expr
	return nil
}

func (c *checker) show(pos lexer.Position, kind InstructionKind, names []string) error {
	for _, name := range names {
		if !c.declared[name] {
			return &SemanticError{
				Line: pos.Line, Column: pos.Column,
				Message: "show target \"" + name + "\" is not declared",
			}
		}
	}
	c.prog.Instructions = append(c.prog.Instructions, Instruction{Kind: kind, Targets: names})
	return nil
}

// declare records name in the shared var/alias namespace, rejecting
// reserved words and redeclaration (§6.2, §7 SemanticError).
func (c *checker) declare(pos lexer.Position, name string) error {
	if reservedWords[name] {
		return &SemanticError{
			Line: pos.Line, Column: pos.Column,
			Message: "\"" + name + "\" is a reserved word and cannot be declared",
		}
	}
	if c.declared[name] {
		return &SemanticError{
			Line: pos.Line, Column: pos.Column,
			Message: "\"" + name + "\" is already declared",
		}
	}
	c.declared[name] = true
	return nil
}

// expr translates a flat "term (op term)*" parse into a robdd.Expr tree,
// enforcing §6.2's "all ops in one parenthesis level are equal" rule: a
// mix of "and" and "or" in the same sourceExpr is a SyntaxError, caught
// here because participle's grammar has no way to express "all equal"
// directly.
func (c *checker) expr(se *sourceExpr) (robdd.Expr, error) {
	first, err := c.term(se.First)
	if err != nil {
		return nil, err
	}
	if len(se.Rest) == 0 {
		return first, nil
	}

	op := se.Rest[0].Op
	for _, ot := range se.Rest[1:] {
		if ot.Op != op {
			return nil, &SyntaxError{
				Line: se.Pos.Line, Column: se.Pos.Column,
				Message: "mixing \"and\" and \"or\" at the same parenthesis level requires parentheses",
			}
		}
	}

	operands := make([]robdd.Expr, 0, len(se.Rest)+1)
	operands = append(operands, first)
	for _, ot := range se.Rest {
		t, err := c.term(ot.Term)
		if err != nil {
			return nil, err
		}
		operands = append(operands, t)
	}

	if op == "and" {
		return &robdd.And{Xs: operands}, nil
	}
	return &robdd.Or{Xs: operands}, nil
}

func (c *checker) term(t *sourceTerm) (robdd.Expr, error) {
	switch {
	case t.Not != nil:
		inner, err := c.term(t.Not)
		if err != nil {
			return nil, err
		}
		return &robdd.Not{X: inner}, nil

	case t.Paren != nil:
		return c.expr(t.Paren)

	case t.Bool != "":
		return &robdd.Const{Value: t.Bool == "True"}, nil

	default:
		if !c.declared[t.Ident] {
			return nil, &SemanticError{
				Message: "\"" + t.Ident + "\" is not declared",
			}
		}
		if expr, ok := c.prog.Aliases[t.Ident]; ok {
			return expr, nil
		}
		return &robdd.Var{Name: t.Ident}, nil
	}
}
