package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/inbound"
)

// ASNHandler maneja las peticiones HTTP de los avisos de spedizione in entrata.
type ASNHandler struct {
	uc *inbound.ASNUseCase
}

// NewASNHandler construye el handler.
func NewASNHandler(uc *inbound.ASNUseCase) *ASNHandler {
	return &ASNHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ASN
// @Tags         inbound
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateASNRequest  true  "Datos del ASN"
// @Success      201   {object}  dto.ASNResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/asn [post]
func (h *ASNHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateASNRequest
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
// @Summary      Obtener ASN por ID
// @Tags         inbound
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ASN"
// @Success      200  {object}  dto.ASNResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asn/{id} [get]
func (h *ASNHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ASN
// @Tags         inbound
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Estado"
// @Param        supplier_id  query  string  false  "Fornitore"
// @Param        limit        query  int     false  "Límite"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {array}  dto.ASNResponse
// @Router       /api/asn [get]
func (h *ASNHandler) List(c *fiber.Ctx) error {
	var q dto.ASNListQuery
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
// @Summary      Cambiar estado del ASN
// @Tags         inbound
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ASN"
// @Param        body  body  dto.UpdateASNStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ASNResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/asn/{id}/status [patch]
func (h *ASNHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateASNStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Registrar recepción de mercancía
// @Description  Acumula cantidades recibidas por línea, actualiza lotes e inventario de ubicación y completa el ASN cuando todas las líneas están recibidas.
// @Tags         inbound
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ASN"
// @Param        body  body  dto.ASNReceiveRequest  true  "Líneas recibidas"
// @Success      200   {object}  dto.ASNResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/asn/{id}/receive [post]
func (h *ASNHandler) Receive(c *fiber.Ctx) error {
	var in dto.ASNReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Receive(c.Context(), c.Params("id"), GetUserID(c), in.Lines)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ASN no completado
// @Tags         inbound
// @Security     Bearer
// @Param        id  path  string  true  "ID del ASN"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/asn/{id} [delete]
func (h *ASNHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
