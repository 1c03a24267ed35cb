package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
	"github.com/swipe-labs/swipe-api/internal/core/ports"
)

// ProfileService reads and updates profile documents for verified identities.
// It is the only writer of the profile-completion flag.
type ProfileService struct {
	repo     ports.UserRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewProfileService(repo ports.UserRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, activity: activity, logger: logger}
}

// Get returns the account behind a verified identity.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.FindByID(ctx, userID)
}

// Update applies the provided profile fields to the caller's own account and
// marks profile setup complete. The flip happens at most once; tokens issued
// before the flip keep their stale flag until they expire.
func (s *ProfileService) Update(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	before, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	if !before.ProfileSetupComplete && updated.ProfileSetupComplete {
		if s.activity != nil {
			s.activity.Record(domain.Activity{
				UserID:    userID,
				Kind:      domain.ActivityProfileCompleted,
				Timestamp: time.Now().UTC(),
			})
		}
		s.logger.Info().Str("user_id", userID).Msg("profile setup completed")
	}

	return updated, nil
}

// List returns all accounts as public projections for the directory view.
// An empty directory yields an empty slice, so the response serialises as a
// JSON array rather than null.
func (s *ProfileService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}
