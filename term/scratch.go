// File: scratch.go
// Role: the commit/propose/rollback bookkeeping shared by every reference
// term — a journal of the last proposed mutation's effect, factored out
// once instead of duplicated per term.
package term

// scratch tracks a term's committed baseline value plus, optionally, one
// outstanding proposed delta on top of it.
type scratch struct {
	current float64
	delta   float64
	pending bool
}

// settle folds a pending proposal into current — the implicit commit that
// happens when the engine accepts a dyad flip without calling Rollback.
// Every DyadUpdate implementation calls this first, before computing its new
// proposal, so that "at most one outstanding DyadUpdate" holds.
func (s *scratch) settle() {
	if s.pending {
		s.current += s.delta
		s.pending = false
		s.delta = 0
	}
}

// propose records a new outstanding delta.
func (s *scratch) propose(delta float64) {
	s.delta = delta
	s.pending = true
}

// value returns current+delta while a proposal is outstanding, else current.
func (s *scratch) value() float64 {
	if s.pending {
		return s.current + s.delta
	}

	return s.current
}

// rollback discards any outstanding proposal.
func (s *scratch) rollback() {
	s.pending = false
	s.delta = 0
}

// reset reinitializes the baseline to v, discarding any proposal.
func (s *scratch) reset(v float64) {
	s.current = v
	s.pending = false
	s.delta = 0
}
