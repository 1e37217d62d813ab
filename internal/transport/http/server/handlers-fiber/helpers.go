package handlers_fiber

import (
	"net/http"

	"exam-results/internal/entities"
	"exam-results/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

const indexView = "index"

func statusOf(err error) int {
	switch entities.OutcomeOf(err) {
	case entities.OutcomeFound:
		return http.StatusOK
	case entities.OutcomeNotFound:
		return http.StatusNotFound
	case entities.OutcomeInvalidArgument, entities.OutcomeUnknownSemester:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusOf(err)).JSON(mapper.ToErrorResponse(err))
}

func renderPage(c *fiber.Ctx, page mapper.Page, err error) error {
	return c.Status(statusOf(err)).Render(indexView, page)
}
