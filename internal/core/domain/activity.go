package domain

import "time"

// ActivityKind identifies an auth-relevant action worth auditing.
type ActivityKind string

const (
	ActivityRegistered       ActivityKind = "registered"
	ActivityLoggedIn         ActivityKind = "logged_in"
	ActivityProfileCompleted ActivityKind = "profile_completed"
)

// Activity records a single auth action for the audit trail. Entries are
// append-only and best-effort; losing one never fails the originating request.
type Activity struct {
	UserID    string
	Kind      ActivityKind
	Timestamp time.Time
}
