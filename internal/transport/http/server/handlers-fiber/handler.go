// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"exam-results/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the lookup page and the JSON API using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterHandlers mounts every route of h on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Get("/healthz", h.GetHealthz)
	router.Get("/", h.GetIndex)
	router.Post("/", h.PostIndex)

	api := router.Group("/api")
	api.Get("/semesters", h.GetSemesters)
	api.Get("/results/:reg_no", h.GetResult)
}

// GetHealthz reports liveness.
func (h *Handler) GetHealthz(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}
