/*
Package robdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (ROBDD), a data structure used to represent Boolean formulas over a
fixed, caller-supplied ordering of named variables.

Basics

Each Engine fixes a variable ordering V at Build time. A variable is
identified by its position in V, called its level. A Node is a handle into
the Engine's own arena of decision/terminal vertices; by convention node 0 is
the constant False and node 1 is the constant True.

Canonicity

An Engine hash-conses every node it creates through mk, so that structurally
identical sub-graphs are always represented by the very same Node. Combined
with the reduce-on-construct rule applied by apply (a decision node whose two
children are identical is replaced by that child), this gives the strong
canonical form: two formulas over the same ordering denote the same Boolean
function if and only if their built roots are the same Node.

Lifecycle

An Engine owns a unique table and an apply cache. Build clears both, installs
the ordering, constructs the graph for one expression, sweeps away nodes left
over from intermediate sub-expressions, and leaves the Engine ready for
queries (Evaluate, PathsToOne, CompleteAssignmentsToOne, Satcount). Building
again discards the previous graph; there is no reuse across builds, and
nothing here prevents running independent Engines concurrently.
*/
package robdd
