// Package repo contains the storage layer of the workout tracker.
// Each resource has its own file with an interface and an in-memory
// implementation. Nothing here validates input; that is the service layer's job.
package repo

import "time"

// clock returns now, or time.Now when now is nil.
func clock(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
