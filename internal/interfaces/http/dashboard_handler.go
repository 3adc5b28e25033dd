package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utm-ti/inventario-api/internal/application/analytics"
	"github.com/utm-ti/inventario-api/internal/application/dto"
)

// DashboardHandler expone el resumen general del inventario.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Estadísticas generales del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	snapshot, err := h.uc.GetSnapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener estadísticas del dashboard"})
	}
	return c.JSON(fiber.Map{"dashboard": snapshot})
}
