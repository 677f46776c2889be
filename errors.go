package robdd

import "fmt"

// EngineError reports a malformed expression tree or an identifier outside
// the engine's declared variable ordering (see §7 of the specification:
// the "EngineError" member of the error taxonomy). It terminates the
// current Build and leaves the Engine cleared, never half-built.
type EngineError struct {
	Op  string // operation that detected the problem, e.g. "Build"
	Msg string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("robdd: %s: %s", e.Op, e.Msg)
}

// ResourceError reports exhaustion of the node arena's configured capacity
// (see WithMaxNodes). It is the Go analogue of rudd's errMemory: since Go
// slices grow on their own, the only way to hit this is a caller-imposed
// cap, used as a safety valve against pathological input rather than a
// real allocation failure.
type ResourceError struct {
	Msg string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("robdd: resource exhausted: %s", e.Msg)
}

func errEngine(op, format string, a ...interface{}) *EngineError {
	return &EngineError{Op: op, Msg: fmt.Sprintf(format, a...)}
}

func errResource(format string, a ...interface{}) *ResourceError {
	return &ResourceError{Msg: fmt.Sprintf(format, a...)}
}
