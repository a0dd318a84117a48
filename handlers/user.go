package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// @Summary Get the current user.
// @Description return the identity carried by the bearer token.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Router /users/me [get]
func GetCurrentUser(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return h.unauthorized(c)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "found user", user)
	}
}
