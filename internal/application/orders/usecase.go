package orders

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

// OrderUseCase gestiona el ciclo de vida de los ordini cliente. La transición
// a "spedito" descuenta stock y escribe el libro de movimientos dentro de una
// sola transacción, con bloqueo de fila sobre los productos mutados.
type OrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	notifier     Notifier
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	notifier Notifier,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

// Create valida cliente y productos, y persiste el ordine con sus líneas.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		AddressID:  in.AddressID,
		UserID:     userID,
		Status:     entity.OrderStatusInLavorazione,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
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
		order.Items = append(order.Items, entity.OrderItem{
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
	return toOrderResponse(order), nil
}

// GetByID devuelve el ordine con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List devuelve los ordini con filtros de estado y cliente.
func (uc *OrderUseCase) List(ctx context.Context, q dto.OrderListQuery) ([]dto.OrderResponse, error) {
	q.DefaultPage()
	list, err := uc.orderRepo.List(repository.OrderFilter{
		Status:     q.Status,
		CustomerID: q.CustomerID,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// stockChange acumula mutaciones de stock para notificarlas post-commit.
type stockChange struct {
	productID    string
	quantity     int
	movementType string
}

// SetStatus aplica la transición de estado. Al entrar en "spedito" desde
// cualquier otro estado descuenta Product.Quantity por cada línea, recortado
// a cero (el recorte es política, no error: el oversell no se detecta aquí),
// y registra un movimiento "scarico" por línea con la cantidad pedida
// completa. La guardia por estado previo evita el doble descuento; no hay
// token de idempotencia a nivel de request.
func (uc *OrderUseCase) SetStatus(ctx context.Context, orderID, newStatus, userID string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(newStatus) {
		return nil, domain.ErrInvalidStatus
	}

	var changes []stockChange
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		order, err := r.Orders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		if newStatus == entity.OrderStatusSpedito && order.Status != entity.OrderStatusSpedito {
			now := time.Now()
			for _, item := range order.Items {
				// Bloquea la fila del producto para la lectura-modificación-escritura
				product, err := r.Products.GetForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					continue
				}
				newQty := product.Quantity - item.Quantity
				if newQty < 0 {
					newQty = 0
				}
				if err := r.Products.UpdateQuantity(product.ID, newQty); err != nil {
					return err
				}
				mov := &entity.StockMovement{
					ID:           uuid.New().String(),
					ProductID:    product.ID,
					MovementType: entity.MovementScarico,
					Quantity:     item.Quantity,
					Notes:        fmt.Sprintf("Ordine #%s", order.ID),
					UserID:       userID,
					CreatedAt:    now,
				}
				if err := r.Movements.Create(mov); err != nil {
					return err
				}
				changes = append(changes, stockChange{product.ID, newQty, entity.MovementScarico})
			}
		}

		return r.Orders.UpdateStatus(orderID, newStatus)
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyOrderUpdate(orderID, newStatus)
		for _, c := range changes {
			uc.notifier.NotifyStockChange(c.productID, c.quantity, c.movementType)
		}
	}

	return uc.GetByID(ctx, orderID)
}

// Delete elimina un ordine no terminal; las líneas caen por cascade.
// Un ordine "spedito" o "consegnato" no se puede eliminar.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Terminal() {
		return domain.ErrConflict
	}
	return uc.orderRepo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		AddressID:  o.AddressID,
		UserID:     o.UserID,
		Status:     o.Status,
		Notes:      o.Notes,
		Items:      make([]dto.OrderItemResponse, 0, len(o.Items)),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}
