package localrepo

import "time"

// LookupDue exposes the remote lookup throttle for tests.
func LookupDue(created, last, now time.Time) bool {
	return lookupDue(lookupMarker{created: created, last: last}, now)
}
