package supplier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// SupplierOrderUseCase gestiona los ordini fornitore. La transición a
// "ricevuto" incrementa el stock de cada producto una sola vez y escribe
// los movimientos de carico en la misma transacción.
type SupplierOrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.SupplierOrderRepository
	productRepo repository.ProductRepository
	notifier    Notifier
}

// NewSupplierOrderUseCase construye el caso de uso.
func NewSupplierOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.SupplierOrderRepository,
	productRepo repository.ProductRepository,
	notifier Notifier,
) *SupplierOrderUseCase {
	return &SupplierOrderUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// Create valida productos y persiste el ordine fornitore con sus líneas.
func (uc *SupplierOrderUseCase) Create(ctx context.Context, userID string, in dto.CreateSupplierOrderRequest) (*dto.SupplierOrderResponse, error) {
	if in.Supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.SupplierOrder{
		ID:        uuid.New().String(),
		Supplier:  in.Supplier,
		Status:    entity.SupplierOrderStatusInviato,
		Notes:     in.Notes,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidInput
		}
		order.Items = append(order.Items, entity.SupplierOrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toSupplierOrderResponse(order), nil
}

// GetByID devuelve el ordine fornitore con sus líneas.
func (uc *SupplierOrderUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierOrderResponse(order), nil
}

// List devuelve los ordini fornitore con filtro de estado.
func (uc *SupplierOrderUseCase) List(ctx context.Context, q dto.SupplierOrderListQuery) ([]dto.SupplierOrderResponse, error) {
	q.DefaultPage()
	list, err := uc.orderRepo.List(repository.SupplierOrderFilter{
		Status: q.Status,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toSupplierOrderResponse(o))
	}
	return out, nil
}

// stockChange acumula mutaciones de stock para notificarlas post-commit.
type stockChange struct {
	productID    string
	quantity     int
	movementType string
}

// SetStatus aplica la transición de estado. Entrar en "ricevuto" desde
// cualquier otro estado incrementa product.quantity por cada línea y registra
// un movimiento de carico; una orden ya "ricevuto" no vuelve a sumar.
func (uc *SupplierOrderUseCase) SetStatus(ctx context.Context, orderID, userID, newStatus string) (*dto.SupplierOrderResponse, error) {
	if !entity.ValidSupplierOrderStatus(newStatus) {
		return nil, domain.ErrInvalidStatus
	}

	var changes []stockChange
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		order, err := r.SupplierOrders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		if newStatus == entity.SupplierOrderStatusRicevuto && order.Status != entity.SupplierOrderStatusRicevuto {
			for _, item := range order.Items {
				product, err := r.Products.GetForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					continue
				}
				newQty := product.Quantity + item.Quantity
				if err := r.Products.UpdateQuantity(product.ID, newQty); err != nil {
					return err
				}
				mov := &entity.StockMovement{
					ID:           uuid.New().String(),
					ProductID:    product.ID,
					MovementType: entity.MovementCarico,
					Quantity:     item.Quantity,
					UserID:       userID,
					Notes:        fmt.Sprintf("Ordine fornitore #%s", order.ID),
					CreatedAt:    time.Now(),
				}
				if err := r.Movements.Create(mov); err != nil {
					return err
				}
				changes = append(changes, stockChange{product.ID, newQty, entity.MovementCarico})
			}
		}

		return r.SupplierOrders.UpdateStatus(orderID, newStatus)
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifySupplierOrderUpdate(orderID, newStatus)
		for _, c := range changes {
			uc.notifier.NotifyStockChange(c.productID, c.quantity, c.movementType)
		}
	}
	return uc.GetByID(ctx, orderID)
}

// Delete elimina un ordine fornitore no recibido.
func (uc *SupplierOrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status == entity.SupplierOrderStatusRicevuto {
		return domain.ErrConflict
	}
	return uc.orderRepo.Delete(id)
}

func toSupplierOrderResponse(o *entity.SupplierOrder) *dto.SupplierOrderResponse {
	out := &dto.SupplierOrderResponse{
		ID:        o.ID,
		Supplier:  o.Supplier,
		Status:    o.Status,
		Notes:     o.Notes,
		UserID:    o.UserID,
		Items:     make([]dto.SupplierOrderItemResponse, 0, len(o.Items)),
		CreatedAt: o.CreatedAt,
	}
	for _, item := range o.Items {
		out.Items = append(out.Items, dto.SupplierOrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return out
}
