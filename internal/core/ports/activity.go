package ports

import (
	"context"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
)

// ActivityRepository persists audit entries for auth actions.
type ActivityRepository interface {
	Insert(ctx context.Context, activity domain.Activity) error
}

// ActivityRecorder accepts audit entries without blocking the caller.
// Delivery is best-effort.
type ActivityRecorder interface {
	Record(activity domain.Activity)
}

// LoginThrottle limits repeated failed logins per submitted email. It is
// keyed on the submitted value whether or not an account exists, so it leaks
// nothing about which emails are registered.
type LoginThrottle interface {
	// Blocked reports whether the email has exceeded the failure budget.
	Blocked(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt inside the current window.
	RecordFailure(ctx context.Context, email string) error
	// Clear resets the failure count after a successful login.
	Clear(ctx context.Context, email string) error
}
