package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido).
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ordine cliente
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del ordine"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Obtener ordine por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ordine"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ordini
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Estado"
// @Param        customer_id  query  string  false  "Cliente"
// @Param        limit        query  int     false  "Límite"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var q dto.OrderListQuery
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
// @Summary      Cambiar estado del ordine
// @Description  La transición a "spedito" descuenta stock (recortado a cero) y registra movimientos de scarico.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ordine"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ordine no spedito
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del ordine"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
