package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *ProblemHandler, requireAuth fiber.Handler) {
	problems := app.Group("/api/problems", requireAuth)
	problems.Post("/solve", h.Solve)
	problems.Get("/history", h.History)
}
