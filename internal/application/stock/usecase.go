package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// StockUseCase gestiona los movimientos manuales de stock y el export del
// inventario por ubicación. El efecto sobre el on-hand depende del tipo:
// carico y reso suman, scarico resta recortado a cero y trasferimento no
// toca el total del producto.
type StockUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
	locInvRepo   repository.LocationInventoryRepository
	exporter     InventoryExporter
	notifier     Notifier
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	locInvRepo repository.LocationInventoryRepository,
	exporter InventoryExporter,
	notifier Notifier,
) *StockUseCase {
	return &StockUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		locInvRepo:   locInvRepo,
		exporter:     exporter,
		notifier:     notifier,
	}
}

// CreateMovement registra un movimiento manual y ajusta el on-hand del
// producto en la misma transacción.
func (uc *StockUseCase) CreateMovement(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(in.MovementType) {
		return nil, domain.ErrInvalidStatus
	}

	var (
		mov    *entity.StockMovement
		newQty int
	)
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		product, err := r.Products.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty = product.Quantity
		switch in.MovementType {
		case entity.MovementCarico, entity.MovementReso:
			newQty = product.Quantity + in.Quantity
		case entity.MovementScarico:
			newQty = product.Quantity - in.Quantity
			if newQty < 0 {
				newQty = 0
			}
		case entity.MovementTrasferimento:
			// el total no cambia, solo queda la traza en el libro
		}
		if newQty != product.Quantity {
			if err := r.Products.UpdateQuantity(product.ID, newQty); err != nil {
				return err
			}
		}

		mov = &entity.StockMovement{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			MovementType: in.MovementType,
			Quantity:     in.Quantity,
			Notes:        in.Notes,
			UserID:       userID,
			CreatedAt:    time.Now(),
		}
		return r.Movements.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyStockChange(mov.ProductID, newQty, mov.MovementType)
	}
	return toMovementResponse(mov), nil
}

// ListMovements devuelve el libro de movimientos con filtros.
func (uc *StockUseCase) ListMovements(ctx context.Context, q dto.MovementListQuery) ([]dto.MovementResponse, error) {
	q.DefaultPage()
	list, err := uc.movementRepo.List(repository.MovementFilter{
		ProductID:    q.ProductID,
		MovementType: q.MovementType,
		Limit:        q.Limit,
		Offset:       q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// ExportInventory genera el XLSX del inventario por ubicación.
func (uc *StockUseCase) ExportInventory(ctx context.Context) ([]byte, error) {
	rows, err := uc.locInvRepo.Report()
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportInventory(ctx, rows)
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		Notes:        m.Notes,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
	}
}
