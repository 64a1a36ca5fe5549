package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/catalog"
)

// DashboardHandler expone las estadísticas agregadas del catálogo.
type DashboardHandler struct {
	uc *catalog.Store
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *catalog.Store) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas del catálogo
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard())
}
