package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-kam-api/internal/application/analytics"
)

// DashboardHandler maneja los resúmenes de manager y ejecutivo.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler de dashboards.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// ManagerSummary godoc
// @Summary      Resumen de actividad del equipo del manager
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ManagerSummaryDTO
// @Router       /api/manager/summary [get]
func (h *DashboardHandler) ManagerSummary(c *fiber.Ctx) error {
	out, err := h.uc.ManagerSummary(c.Context(), GetUserID(c), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExecutiveSummary godoc
// @Summary      Pipeline de sales plans por región/witel
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ExecutiveSummaryDTO
// @Router       /api/executive/summary [get]
func (h *DashboardHandler) ExecutiveSummary(c *fiber.Ctx) error {
	out, err := h.uc.ExecutiveSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
