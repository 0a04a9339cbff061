package handler

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Darrly207/Gemetry-BE/internal/problem/service"
	"github.com/Darrly207/Gemetry-BE/pkg/constant"
)

type ProblemHandler struct {
	problemService *service.ProblemService
	uploadDir      string
}

func NewProblemHandler(problemService *service.ProblemService, uploadDir string) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		uploadDir:      uploadDir,
	}
}

func (h *ProblemHandler) Solve(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image uploaded",
		})
	}

	// Prefix with the upload time so concurrent uploads of the same file
	// name cannot collide.
	imageName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	imagePath := filepath.Join(h.uploadDir, imageName)

	if err := c.SaveFile(fileHeader, imagePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store upload",
		})
	}

	userID, _ := c.Locals(constant.LocalsUserID).(string)
	mimeType := fileHeader.Header.Get(fiber.HeaderContentType)

	solution, err := h.problemService.Solve(c.Context(), userID, imagePath, imageName, mimeType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"solution": solution,
	})
}

func (h *ProblemHandler) History(c *fiber.Ctx) error {
	userID, _ := c.Locals(constant.LocalsUserID).(string)

	problems, err := h.problemService.History(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(problems)
}
