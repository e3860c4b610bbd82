package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/analytics"
)

// DashboardHandler expone los KPIs generales del panel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      KPIs del panel y alertas de stock bajo
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
