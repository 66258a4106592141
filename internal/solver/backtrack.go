package solver

// BacktrackingSolver is a straightforward recursive solver. It walks
// cells in row-major order and tries candidates in ascending order, so
// a given grid always resolves to the same first-found solution.
//
// A solver instance carries the step count of the solve in progress
// and is not safe for concurrent use.
type BacktrackingSolver struct {
	steps int
}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// Steps returns the running step count: one per recursive cell visit
// (skips and wraps included) and one per retraction. The count resets
// at the start of each solve and never decreases while it runs; its
// exact value is a reporting metric, not a correctness invariant.
func (s *BacktrackingSolver) Steps() int { return s.steps }
