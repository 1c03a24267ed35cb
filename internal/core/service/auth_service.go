package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
	"github.com/swipe-labs/swipe-api/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	codec    ports.TokenCodec
	throttle ports.LoginThrottle
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

// NewAuthService wires the credential store, token codec and optional
// throttle/activity collaborators. throttle and activity may be nil.
func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, throttle ports.LoginThrottle, activity ports.ActivityRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, throttle: throttle, activity: activity, logger: logger}
}

// Register validates the input, hashes the password and persists a new
// account with profile setup incomplete. No token is issued; the caller must
// log in afterwards.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	// Fast pre-checks for a friendly Conflict; the unique indexes remain the
	// authority when two registrations race.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:             username,
		Email:                email,
		PasswordHash:         string(hash),
		Role:                 role,
		ProfileSetupComplete: false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.Activity{UserID: created.ID, Kind: domain.ActivityRegistered, Timestamp: now})
	return created, nil
}

// Login verifies the credential and issues a self-contained token. Unknown
// email and wrong password fail identically so neither factor is leaked.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle check failed")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	// bcrypt fails closed on a malformed stored hash as well as on mismatch.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(domain.Claims{
		UserID:               user.ID,
		Username:             user.Username,
		Role:                 user.Role,
		ProfileSetupComplete: user.ProfileSetupComplete,
	})
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Clear(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle clear failed")
		}
	}
	s.record(domain.Activity{UserID: user.ID, Kind: domain.ActivityLoggedIn, Timestamp: time.Now().UTC()})

	return token, user, nil
}

func (s *AuthService) noteFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}

func (s *AuthService) record(activity domain.Activity) {
	if s.activity != nil {
		s.activity.Record(activity)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
