package handlers_fiber

import (
	"net/http"
	"strings"

	"exam-results/internal/entities"
	"exam-results/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetIndex renders the empty lookup form.
func (h *Handler) GetIndex(c *fiber.Ctx) error {
	semesters := h.uc.Semesters(c.Context())
	selected := ""
	if len(semesters) > 0 {
		selected = semesters[len(semesters)-1].Key
	}
	return renderPage(c, mapper.Page{Semester: selected, Semesters: semesters, Outcome: entities.OutcomeFound}, nil)
}

// PostIndex looks up the submitted registration number and renders the result.
func (h *Handler) PostIndex(c *fiber.Ctx) error {
	regNo := strings.TrimSpace(c.FormValue("reg_no"))
	semester := strings.TrimSpace(c.FormValue("semester"))

	res, err := h.uc.LookupResult(c.Context(), regNo, semester)
	page := mapper.ToPage(regNo, semester, h.uc.Semesters(c.Context()), res, err)
	return renderPage(c, page, err)
}

// GetResult returns the aggregated result as JSON. Semester defaults to all.
func (h *Handler) GetResult(c *fiber.Ctx) error {
	regNo := c.Params("reg_no")
	semester := c.Query("semester", entities.AllSemesters)

	res, err := h.uc.LookupResult(c.Context(), regNo, semester)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// GetSemesters lists the selectable semesters.
func (h *Handler) GetSemesters(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(struct {
		Semesters []mapper.SemesterDTO `json:"semesters"`
	}{Semesters: mapper.ToSemesterList(h.uc.Semesters(c.Context()))})
}
