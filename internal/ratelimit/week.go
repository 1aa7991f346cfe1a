// Package ratelimit implements the one-submission-per-calendar-week rule
// for change requests. It is a pure policy over live submission times:
// nothing is counted down or restored, since submissions are never
// retracted.
package ratelimit

import "time"

// Decision is the outcome of a submission check. NextAvailableAt is only
// meaningful when Allowed is false: it names the following Monday 00:00:00
// so callers can show the user a concrete date rather than a bare refusal.
type Decision struct {
	Allowed         bool
	NextAvailableAt time.Time
}

// WeekStart returns the most recent Monday 00:00:00 relative to now, in
// now's location. A Sunday belongs to the week that started the preceding
// Monday, not the upcoming one.
func WeekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(now.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return midnight.AddDate(0, 0, -offset)
}

// CanSubmit decides whether a new submission is allowed given the creation
// times of the existing ones.
func CanSubmit(submissions []time.Time, now time.Time) Decision {
	weekStart := WeekStart(now)
	for _, createdAt := range submissions {
		if !createdAt.Before(weekStart) {
			// AddDate keeps the result at midnight across DST changes.
			return Decision{Allowed: false, NextAvailableAt: weekStart.AddDate(0, 0, 7)}
		}
	}
	return Decision{Allowed: true}
}
