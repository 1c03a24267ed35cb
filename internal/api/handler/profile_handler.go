package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swipe-labs/swipe-api/internal/api/metrics"
	"github.com/swipe-labs/swipe-api/internal/core/ports"
)

// ProfileHandler serves the authenticated user's own profile document.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get returns the caller's account and profile document.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/profile/me [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	claims, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update saves the caller's profile document. The first successful save marks
// profile setup complete on the stored account; tokens issued before the flip
// keep the stale flag until they expire.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/profile/me [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	claims, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), claims.UserID, ports.ProfileUpdate{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Headline:          req.Headline,
		Bio:               req.Bio,
		Location:          req.Location,
		ProfilePictureURL: req.ProfilePictureURL,
		Skills:            req.Skills,
		PortfolioLinks:    req.PortfolioLinks,
		HourlyRate:        req.HourlyRate,
		Availability:      req.Availability,
		CompanyName:       req.CompanyName,
		CompanyWebsite:    req.CompanyWebsite,
		SocialLinks:       req.SocialLinks,
	})
	if err != nil {
		return err
	}

	metrics.ProfileUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, user)
}
