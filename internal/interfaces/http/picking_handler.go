package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/picking"
)

// PickingHandler maneja las peticiones HTTP de las ondate di prelievo.
type PickingHandler struct {
	uc *picking.WaveUseCase
}

// NewPickingHandler construye el handler.
func NewPickingHandler(uc *picking.WaveUseCase) *PickingHandler {
	return &PickingHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ondata de picking
// @Description  Genera una tarea por línea de cada ordine incluido, con la mejor ubicación disponible para cada producto.
// @Tags         picking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWaveRequest  true  "Datos de la ondata"
// @Success      201   {object}  dto.PickingWaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/picking [post]
func (h *PickingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWaveRequest
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
// @Summary      Obtener ondata por ID
// @Tags         picking
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ondata"
// @Success      200  {object}  dto.PickingWaveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/picking/{id} [get]
func (h *PickingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ondate
// @Tags         picking
// @Security     Bearer
// @Produce      json
// @Param        status            query  string  false  "Estado"
// @Param        warehouse_id      query  string  false  "Magazzino"
// @Param        assigned_user_id  query  string  false  "Operador asignado"
// @Param        limit             query  int     false  "Límite"
// @Param        offset            query  int     false  "Offset"
// @Success      200  {array}  dto.PickingWaveResponse
// @Router       /api/picking [get]
func (h *PickingHandler) List(c *fiber.Ctx) error {
	var q dto.WaveListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Iniciar ondata
// @Tags         picking
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ondata"
// @Success      200  {object}  dto.PickingWaveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/picking/{id}/start [post]
func (h *PickingHandler) Start(c *fiber.Ctx) error {
	out, err := h.uc.Start(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar prelievi
// @Description  Registra las cantidades recogidas, descuenta el inventario de ubicación (recortado a cero) y completa la ondata cuando no quedan tareas pendientes.
// @Tags         picking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ondata"
// @Param        body  body  dto.ConfirmWaveRequest  true  "Prelievi confirmados"
// @Success      200   {object}  dto.PickingWaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/picking/{id}/confirm [post]
func (h *PickingHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmWaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Confirm(c.Context(), c.Params("id"), GetUserID(c), in.Picks)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Document godoc
// @Summary      Lista di prelievo en PDF
// @Tags         picking
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la ondata"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/picking/{id}/document [get]
func (h *PickingHandler) Document(c *fiber.Ctx) error {
	doc, err := h.uc.Document(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=picking-%s.pdf", c.Params("id")))
	return c.Send(doc)
}

// Delete godoc
// @Summary      Eliminar ondata no completada
// @Tags         picking
// @Security     Bearer
// @Param        id  path  string  true  "ID de la ondata"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/picking/{id} [delete]
func (h *PickingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
