package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swipe-labs/swipe-api/internal/core/ports"
)

// UserHandler serves the freelancer directory.
type UserHandler struct {
	service ports.ProfileService
}

func NewUserHandler(service ports.ProfileService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns public projections of all accounts. The route is gated to the
// client role: clients browse freelancers, not the other way round.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listUsersResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}
