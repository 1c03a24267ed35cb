package ports

import (
	"context"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
)

// ProfileService reads and updates the profile document of a verified
// identity. Update is the sole writer allowed to flip the profile-completion
// flag, and it does so on the same account record the login flow reads.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
