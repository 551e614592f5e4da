package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/supplier"
)

// SupplierOrderHandler maneja las peticiones HTTP de los ordini fornitore.
type SupplierOrderHandler struct {
	uc *supplier.SupplierOrderUseCase
}

// NewSupplierOrderHandler construye el handler.
func NewSupplierOrderHandler(uc *supplier.SupplierOrderUseCase) *SupplierOrderHandler {
	return &SupplierOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ordine fornitore
// @Tags         supplier-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierOrderRequest  true  "Datos del ordine"
// @Success      201   {object}  dto.SupplierOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/supplier-orders [post]
func (h *SupplierOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ordine fornitore por ID
// @Tags         supplier-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ordine"
// @Success      200  {object}  dto.SupplierOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplier-orders/{id} [get]
func (h *SupplierOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ordini fornitore
// @Tags         supplier-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {array}  dto.SupplierOrderResponse
// @Router       /api/supplier-orders [get]
func (h *SupplierOrderHandler) List(c *fiber.Ctx) error {
	var q dto.SupplierOrderListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado del ordine fornitore
// @Description  La transición a "ricevuto" incrementa el stock de cada producto y registra movimientos de carico (una sola vez).
// @Tags         supplier-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ordine"
// @Param        body  body  dto.UpdateSupplierOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.SupplierOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/supplier-orders/{id}/status [patch]
func (h *SupplierOrderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateSupplierOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Context(), c.Params("id"), GetUserID(c), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ordine fornitore no ricevuto
// @Tags         supplier-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del ordine"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/supplier-orders/{id} [delete]
func (h *SupplierOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
