package domain

import (
	"errors"
	"time"
)

const (
	RoleFreelancer = "freelancer"
	RoleClient     = "client"
)

// ValidRole reports whether role belongs to the closed account role set.
func ValidRole(role string) bool {
	return role == RoleFreelancer || role == RoleClient
}

var ErrInvalidInput = errors.New("invalid input")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrNoSigningSecret = errors.New("signing secret is not configured")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID                   string    `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Role                 string    `json:"role"`
	ProfileSetupComplete bool      `json:"profileSetupComplete"`
	Profile              Profile   `json:"profile"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Profile holds the presentation document attached to an account.
type Profile struct {
	FirstName         string            `json:"firstName,omitempty"`
	LastName          string            `json:"lastName,omitempty"`
	Headline          string            `json:"headline,omitempty"`
	Bio               string            `json:"bio,omitempty"`
	Location          string            `json:"location,omitempty"`
	ProfilePictureURL string            `json:"profilePictureUrl,omitempty"`
	Skills            []string          `json:"skills,omitempty"`
	PortfolioLinks    []string          `json:"portfolioLinks,omitempty"`
	HourlyRate        float64           `json:"hourlyRate,omitempty"`
	Availability      string            `json:"availability,omitempty"`
	CompanyName       string            `json:"companyName,omitempty"`
	CompanyWebsite    string            `json:"companyWebsite,omitempty"`
	SocialLinks       map[string]string `json:"socialLinks,omitempty"`
}

// Claims is the closed set of identity facts embedded in a token and
// reconstructed fresh on every protected request. It is never persisted.
type Claims struct {
	UserID               string
	Username             string
	Role                 string
	ProfileSetupComplete bool
	IssuedAt             time.Time
	ExpiresAt            time.Time
}

// Validate rejects claims that are structurally incomplete, even when the
// signature that carried them was valid.
func (c Claims) Validate() error {
	if c.UserID == "" || c.Username == "" || !ValidRole(c.Role) {
		return ErrInvalidToken
	}
	return nil
}
