package flexbox

import "fmt"

// StructuralError indicates the tree description itself is malformed: a
// child added to a leaf, a second child added to a box, or a duplicate id.
// These are wiring bugs in the caller and fail fast via panic during
// construction or registration.
type StructuralError struct {
	NodeID string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("flexbox: structural error on %q: %s", e.NodeID, e.Reason)
}

// UsageOrderError indicates the engine's lifecycle was violated: Place called
// before Measure, or results queried before Compute. These fail fast via
// panic; a lookup for an id that simply does not exist is not an error and is
// reported through a comma-ok return instead.
type UsageOrderError struct {
	NodeID string
	Op     string
	Reason string
}

func (e *UsageOrderError) Error() string {
	return fmt.Sprintf("flexbox: %s on %q: %s", e.Op, e.NodeID, e.Reason)
}

func structuralf(id, format string, args ...any) *StructuralError {
	return &StructuralError{NodeID: id, Reason: fmt.Sprintf(format, args...)}
}

func usagef(id, op, format string, args ...any) *UsageOrderError {
	return &UsageOrderError{NodeID: id, Op: op, Reason: fmt.Sprintf(format, args...)}
}
