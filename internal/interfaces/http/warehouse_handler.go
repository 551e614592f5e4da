package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP de magazzini, zone y ubicazioni.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear magazzino
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos del magazzino"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
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
// @Summary      Obtener magazzino por ID
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del magazzino"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar magazzini
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	var q dto.PageRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateZone godoc
// @Summary      Crear zona en un magazzino
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del magazzino"
// @Param        body  body  dto.CreateZoneRequest  true  "Datos de la zona"
// @Success      201   {object}  dto.ZoneResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/zones [post]
func (h *WarehouseHandler) CreateZone(c *fiber.Ctx) error {
	var in dto.CreateZoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateZone(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListZones godoc
// @Summary      Listar zone de un magazzino
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del magazzino"
// @Success      200  {array}  dto.ZoneResponse
// @Router       /api/warehouses/{id}/zones [get]
func (h *WarehouseHandler) ListZones(c *fiber.Ctx) error {
	out, err := h.uc.ListZones(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateLocation godoc
// @Summary      Crear ubicazione
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "Datos de la ubicazione"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *WarehouseHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateLocation(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLocations godoc
// @Summary      Listar ubicazioni de una zona
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        zone_id  query  string  true   "ID de la zona"
// @Param        limit    query  int     false  "Límite"
// @Param        offset   query  int     false  "Offset"
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *WarehouseHandler) ListLocations(c *fiber.Ctx) error {
	var q dto.PageRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.ListLocations(c.Context(), c.Query("zone_id"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LocationInventory godoc
// @Summary      Inventario de una ubicazione
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicazione"
// @Success      200  {array}  dto.LocationInventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/inventory [get]
func (h *WarehouseHandler) LocationInventory(c *fiber.Ctx) error {
	out, err := h.uc.LocationInventory(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
