package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/usecase"
)

// DashboardHandler maneja las métricas agregadas del panel.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Métricas del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos bajo stock mínimo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (1-100, por defecto 20)"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecentOrders godoc
// @Summary      Ordini recientes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (1-50, por defecto 10)"
// @Success      200  {array}  dto.RecentOrder
// @Router       /api/dashboard/recent-orders [get]
func (h *DashboardHandler) RecentOrders(c *fiber.Ctx) error {
	out, err := h.uc.RecentOrders(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
