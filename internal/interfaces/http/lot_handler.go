package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/usecase"
)

// LotHandler maneja las peticiones HTTP de los lotti.
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lotto
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lotto"
// @Success      201   {object}  dto.LotResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lotto por ID
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lotto"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotti
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Producto"
// @Param        status      query  string  false  "Estado"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {array}  dto.LotResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	var q dto.LotListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
