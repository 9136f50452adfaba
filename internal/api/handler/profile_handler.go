package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karibu/auth-api/internal/core/domain"
)

// ProfileHandler serves the protected profile greeting. It relies on the
// Auth middleware having resolved and injected the request's user.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Show handles GET /profile.
//
// @Summary      Greet the authenticated user
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /profile [get]
func (h *ProfileHandler) Show(c echo.Context) error {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		// Presence proves the middleware ran; reaching here without a user
		// means the route was wired without Auth.
		return domain.ErrTokenInvalid
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Karibu sana, %s!", user.Username)})
}
