package reconciler

import "time"

// SetClock replaces the clock used to time reconciliation.
func (r *Reconciler) SetClock(now func() time.Time) {
	r.now = now
}
