package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalog/internal/services"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "E-Commerce Template API"

// HealthHandler serves the root message and the /test diagnostic report.
type HealthHandler struct {
	diagnostics *services.DiagnosticsService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(diagnostics *services.DiagnosticsService) *HealthHandler {
	return &HealthHandler{
		diagnostics: diagnostics,
	}
}

// RegisterRoutes registers the root-level routes with the Fiber app.
func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleRoot)
	app.Get("/test", h.HandleTest)
}

// HandleRoot identifies the service.
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": ServiceName})
}

// HandleTest answers the diagnostic report. It always returns 200; store
// failures show up inside the report body, never as a request error.
func (h *HealthHandler) HandleTest(c *fiber.Ctx) error {
	return c.JSON(h.diagnostics.Report(c.Context()))
}
