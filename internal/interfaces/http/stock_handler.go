package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/stock"
)

// StockHandler maneja movimientos de stock y la exportación del inventario.
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// CreateMovement godoc
// @Summary      Registrar movimiento manual de stock
// @Description  carico y reso suman, scarico resta (recortado a cero), trasferimento solo deja traza.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id     query  string  false  "Producto"
// @Param        movement_type  query  string  false  "Tipo (carico, scarico, trasferimento, reso)"
// @Param        limit          query  int     false  "Límite"
// @Param        offset         query  int     false  "Offset"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ListMovements(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportInventory godoc
// @Summary      Exportar inventario por ubicación en XLSX
// @Tags         stock
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventory/export [get]
func (h *StockHandler) ExportInventory(c *fiber.Ctx) error {
	out, err := h.uc.ExportInventory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=inventario-%s.xlsx", time.Now().Format("20060102")))
	return c.Send(out)
}
