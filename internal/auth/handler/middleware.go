package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Darrly207/Gemetry-BE/internal/auth/service"
	autherror "github.com/Darrly207/Gemetry-BE/internal/errors"
	"github.com/Darrly207/Gemetry-BE/pkg/constant"
)

// RequireAuth runs the dual token check before any protected handler. On
// success the identity lands in c.Locals; every failure rejects the request
// with 401, a store error with 500.
func RequireAuth(authenticator *service.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := authenticator.Authenticate(c.Context(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			switch {
			case errors.Is(err, autherror.ErrMissingToken):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authentication required",
				})
			case errors.Is(err, autherror.ErrSessionExpired):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Session expired. Please log in again.",
				})
			case errors.Is(err, autherror.ErrInvalidToken):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Server error",
				})
			}
		}

		c.Locals(constant.LocalsUserID, identity.UserID)
		c.Locals(constant.LocalsToken, identity.Token)

		return c.Next()
	}
}
