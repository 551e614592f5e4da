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

// LotUseCase gestiona los lotes de producto. La ricezione de ASN crea lotes
// por su cuenta; este caso de uso cubre el alta manual y las consultas.
type LotUseCase struct {
	lotRepo     repository.LotRepository
	productRepo repository.ProductRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(lotRepo repository.LotRepository, productRepo repository.ProductRepository) *LotUseCase {
	return &LotUseCase{lotRepo: lotRepo, productRepo: productRepo}
}

// Create da de alta un lote; (product_id, lot_number) es clave natural.
func (uc *LotUseCase) Create(ctx context.Context, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	if in.ProductID == "" || in.LotNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.lotRepo.GetByProductAndNumber(in.ProductID, in.LotNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	lot := &entity.Lot{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		LotNumber:      in.LotNumber,
		ProductionDate: in.ProductionDate,
		ExpiryDate:     in.ExpiryDate,
		SupplierLot:    in.SupplierLot,
		Status:         "active",
		Notes:          in.Notes,
		CreatedAt:      time.Now(),
	}
	if err := uc.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// GetByID devuelve un lote.
func (uc *LotUseCase) GetByID(ctx context.Context, id string) (*dto.LotResponse, error) {
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return toLotResponse(lot), nil
}

// List devuelve los lotes con filtros de producto y estado.
func (uc *LotUseCase) List(ctx context.Context, q dto.LotListQuery) ([]dto.LotResponse, error) {
	q.DefaultPage()
	list, err := uc.lotRepo.List(repository.LotFilter{
		ProductID: q.ProductID,
		Status:    q.Status,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLotResponse(l))
	}
	return out, nil
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	return &dto.LotResponse{
		ID:             l.ID,
		ProductID:      l.ProductID,
		LotNumber:      l.LotNumber,
		ProductionDate: l.ProductionDate,
		ExpiryDate:     l.ExpiryDate,
		SupplierLot:    l.SupplierLot,
		Status:         l.Status,
		Notes:          l.Notes,
		CreatedAt:      l.CreatedAt,
	}
}
