package handler

import "github.com/swipe-labs/swipe-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=freelancer client"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginResponse carries the bearer token plus a navigation hint derived from
// the issued claims. The hint is advisory; it is not a security decision.
type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
	Next  string       `json:"next"`
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

// updateProfileRequest is a partial edit: absent fields are left untouched.
type updateProfileRequest struct {
	FirstName         *string            `json:"firstName"`
	LastName          *string            `json:"lastName"`
	Headline          *string            `json:"headline"          validate:"omitempty,max=120"`
	Bio               *string            `json:"bio"               validate:"omitempty,max=2000"`
	Location          *string            `json:"location"`
	ProfilePictureURL *string            `json:"profilePictureUrl" validate:"omitempty,url"`
	Skills            *[]string          `json:"skills"`
	PortfolioLinks    *[]string          `json:"portfolioLinks"    validate:"omitempty,dive,url"`
	HourlyRate        *float64           `json:"hourlyRate"        validate:"omitempty,gt=0"`
	Availability      *string            `json:"availability"`
	CompanyName       *string            `json:"companyName"`
	CompanyWebsite    *string            `json:"companyWebsite"    validate:"omitempty,url"`
	SocialLinks       *map[string]string `json:"socialLinks"`
}

type listUsersResponse struct {
	Users []*domain.User `json:"users"`
}
