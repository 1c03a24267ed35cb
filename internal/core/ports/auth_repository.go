package ports

import (
	"context"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence. Every method
// touches exactly one document; registration races are resolved by the
// store's unique indexes, not by locking.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateProfile applies the given fields to one account and marks profile
	// setup complete. The flip is one-way: once true it stays true.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// ProfileUpdate carries a partial profile edit; nil fields are left untouched.
type ProfileUpdate struct {
	FirstName         *string
	LastName          *string
	Headline          *string
	Bio               *string
	Location          *string
	ProfilePictureURL *string
	Skills            *[]string
	PortfolioLinks    *[]string
	HourlyRate        *float64
	Availability      *string
	CompanyName       *string
	CompanyWebsite    *string
	SocialLinks       *map[string]string
}
