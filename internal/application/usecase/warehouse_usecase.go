package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// WarehouseUseCase gestiona magazzini, zonas, ubicaciones y la consulta de
// inventario por ubicación.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locInvRepo    repository.LocationInventoryRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, locInvRepo repository.LocationInventoryRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, locInvRepo: locInvRepo}
}

// Create da de alta un magazzino.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	country := in.Country
	if country == "" {
		country = "IT"
	}
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Country:   country,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.warehouseRepo.Create(w); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// GetByID devuelve un magazzino.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(w), nil
}

// List devuelve los magazzini.
func (uc *WarehouseUseCase) List(ctx context.Context, q dto.PageRequest) ([]dto.WarehouseResponse, error) {
	q.DefaultPage()
	list, err := uc.warehouseRepo.List(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *toWarehouseResponse(w))
	}
	return out, nil
}

// CreateZone da de alta una zona dentro de un magazzino existente.
func (uc *WarehouseUseCase) CreateZone(ctx context.Context, warehouseID string, in dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	w, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	zoneType := in.ZoneType
	if zoneType == "" {
		zoneType = "storage"
	}
	z := &entity.WarehouseZone{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Code:        in.Code,
		Name:        in.Name,
		ZoneType:    zoneType,
		IsActive:    true,
	}
	if err := uc.warehouseRepo.CreateZone(z); err != nil {
		return nil, err
	}
	return toZoneResponse(z), nil
}

// ListZones devuelve las zonas de un magazzino.
func (uc *WarehouseUseCase) ListZones(ctx context.Context, warehouseID string) ([]dto.ZoneResponse, error) {
	list, err := uc.warehouseRepo.ListZones(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		out = append(out, *toZoneResponse(z))
	}
	return out, nil
}

// CreateLocation da de alta una ubicación con barcode único.
func (uc *WarehouseUseCase) CreateLocation(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.ZoneID == "" || in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	locationType := in.LocationType
	if locationType == "" {
		locationType = "shelf"
	}
	l := &entity.Location{
		ID:           uuid.New().String(),
		ZoneID:       in.ZoneID,
		Aisle:        in.Aisle,
		Rack:         in.Rack,
		Level:        in.Level,
		Bin:          in.Bin,
		Barcode:      in.Barcode,
		LocationType: locationType,
		IsActive:     true,
	}
	if err := uc.warehouseRepo.CreateLocation(l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// ListLocations devuelve las ubicaciones, opcionalmente filtradas por zona.
func (uc *WarehouseUseCase) ListLocations(ctx context.Context, zoneID string, q dto.PageRequest) ([]dto.LocationResponse, error) {
	q.DefaultPage()
	list, err := uc.warehouseRepo.ListLocations(zoneID, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// LocationInventory devuelve las filas de inventario de una ubicación.
func (uc *WarehouseUseCase) LocationInventory(ctx context.Context, locationID string) ([]dto.LocationInventoryResponse, error) {
	location, err := uc.warehouseRepo.GetLocation(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.locInvRepo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationInventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.LocationInventoryResponse{
			ID:         inv.ID,
			LocationID: inv.LocationID,
			ProductID:  inv.ProductID,
			LotID:      inv.LotID,
			Quantity:   inv.Quantity,
			Reserved:   inv.ReservedQuantity,
			UpdatedAt:  inv.UpdatedAt,
		})
	}
	return out, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		Address:   w.Address,
		City:      w.City,
		Country:   w.Country,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
	}
}

func toZoneResponse(z *entity.WarehouseZone) *dto.ZoneResponse {
	return &dto.ZoneResponse{
		ID:          z.ID,
		WarehouseID: z.WarehouseID,
		Code:        z.Code,
		Name:        z.Name,
		ZoneType:    z.ZoneType,
		IsActive:    z.IsActive,
	}
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:           l.ID,
		ZoneID:       l.ZoneID,
		Aisle:        l.Aisle,
		Rack:         l.Rack,
		Level:        l.Level,
		Bin:          l.Bin,
		Barcode:      l.Barcode,
		LocationType: l.LocationType,
		IsActive:     l.IsActive,
		IsBlocked:    l.IsBlocked,
	}
}
