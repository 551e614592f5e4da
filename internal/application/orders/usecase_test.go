package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/orders"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente, sin transacción real.
type fakeTxRunner struct {
	repos repository.TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(r repository.TxRepos) error) error {
	return fn(f.repos)
}

type fakeOrderRepo struct {
	repository.OrderRepository
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error   { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}
func (f *fakeOrderRepo) Delete(id string) error { delete(f.orders, id); return nil }

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)      { return f.products[id], nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return f.products[id], nil }
func (f *fakeProductRepo) UpdateQuantity(id string, quantity int) error {
	if p, ok := f.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

type fakeMovementRepo struct {
	repository.StockMovementRepository
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}

type fakeCustomerRepo struct {
	repository.CustomerRepository
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

// fakeNotifier acumula los eventos emitidos post-commit.
type fakeNotifier struct {
	orderEvents []string
	stockEvents []string
}

func (f *fakeNotifier) NotifyOrderUpdate(orderID, status string) {
	f.orderEvents = append(f.orderEvents, status)
}
func (f *fakeNotifier) NotifyStockChange(productID string, quantity int, movementType string) {
	f.stockEvents = append(f.stockEvents, movementType)
}

type orderFixture struct {
	uc        *orders.OrderUseCase
	orders    *fakeOrderRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
	notifier  *fakeNotifier
}

func newOrderFixture() *orderFixture {
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	movementRepo := &fakeMovementRepo{}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", ContactName: "Mario Rossi"},
	}}
	notifier := &fakeNotifier{}
	runner := &fakeTxRunner{repos: repository.TxRepos{
		Orders:    orderRepo,
		Products:  productRepo,
		Movements: movementRepo,
	}}
	return &orderFixture{
		uc:        orders.NewOrderUseCase(runner, orderRepo, productRepo, customerRepo, notifier),
		orders:    orderRepo,
		products:  productRepo,
		movements: movementRepo,
		notifier:  notifier,
	}
}

func (fx *orderFixture) seedProduct(id string, qty int) {
	fx.products.products[id] = &entity.Product{ID: id, SKU: "SKU-" + id, Quantity: qty}
}

func (fx *orderFixture) seedOrder(id, status string, items ...entity.OrderItem) {
	fx.orders.orders[id] = &entity.Order{
		ID:         id,
		CustomerID: "cust-1",
		Status:     status,
		Items:      items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetStatus — descuento de stock en la transición a spedito
// ──────────────────────────────────────────────────────────────────────────────

// Pedir 5 unidades con 3 en stock: el on-hand queda en 0 (recorte) pero el
// movimiento de scarico registra la cantidad pedida completa.
func TestSetStatus_SpeditoRecortaStockACero(t *testing.T) {
	fx := newOrderFixture()
	fx.seedProduct("prod-1", 3)
	fx.seedOrder("ord-1", entity.OrderStatusPronto,
		entity.OrderItem{ID: "it-1", OrderID: "ord-1", ProductID: "prod-1", Quantity: 5, UnitPrice: decimal.NewFromInt(10)})

	out, err := fx.uc.SetStatus(context.Background(), "ord-1", entity.OrderStatusSpedito, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusSpedito, out.Status)
	assert.Equal(t, 0, fx.products.products["prod-1"].Quantity,
		"el stock debe recortarse a cero, nunca negativo")

	require.Len(t, fx.movements.movements, 1)
	mov := fx.movements.movements[0]
	assert.Equal(t, entity.MovementScarico, mov.MovementType)
	assert.Equal(t, 5, mov.Quantity, "el movimiento registra la cantidad pedida, no la descontada")
	assert.Equal(t, "user-1", mov.UserID)
}

// Repetir la transición a spedito no vuelve a descontar: la guardia por
// estado previo hace la operación idempotente a nivel de stock.
func TestSetStatus_SpeditoDosVeces_NoDescuentaDoble(t *testing.T) {
	fx := newOrderFixture()
	fx.seedProduct("prod-1", 10)
	fx.seedOrder("ord-1", entity.OrderStatusPronto,
		entity.OrderItem{ID: "it-1", OrderID: "ord-1", ProductID: "prod-1", Quantity: 4})

	_, err := fx.uc.SetStatus(context.Background(), "ord-1", entity.OrderStatusSpedito, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 6, fx.products.products["prod-1"].Quantity)

	_, err = fx.uc.SetStatus(context.Background(), "ord-1", entity.OrderStatusSpedito, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 6, fx.products.products["prod-1"].Quantity, "la segunda transición no debe descontar")
	assert.Len(t, fx.movements.movements, 1, "solo debe existir un movimiento de scarico")
}

// Línea con producto eliminado: se salta la línea y la transición continúa.
func TestSetStatus_ProductoInexistente_SeSalta(t *testing.T) {
	fx := newOrderFixture()
	fx.seedProduct("prod-1", 8)
	fx.seedOrder("ord-1", entity.OrderStatusInLavorazione,
		entity.OrderItem{ID: "it-1", OrderID: "ord-1", ProductID: "prod-borrado", Quantity: 2},
		entity.OrderItem{ID: "it-2", OrderID: "ord-1", ProductID: "prod-1", Quantity: 3})

	out, err := fx.uc.SetStatus(context.Background(), "ord-1", entity.OrderStatusSpedito, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusSpedito, out.Status)
	assert.Equal(t, 5, fx.products.products["prod-1"].Quantity)
	assert.Len(t, fx.movements.movements, 1, "la línea del producto borrado no genera movimiento")
}

// Las transiciones que no entran en spedito no tocan stock.
func TestSetStatus_TransicionIntermedia_NoTocaStock(t *testing.T) {
	fx := newOrderFixture()
	fx.seedProduct("prod-1", 7)
	fx.seedOrder("ord-1", entity.OrderStatusInLavorazione,
		entity.OrderItem{ID: "it-1", OrderID: "ord-1", ProductID: "prod-1", Quantity: 3})

	out, err := fx.uc.SetStatus(context.Background(), "ord-1", entity.OrderStatusPronto, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPronto, out.Status)
	assert.Equal(t, 7, fx.products.products["prod-1"].Quantity)
	assert.Empty(t, fx.movements.movements)
}

func TestSetStatus_EstadoInvalido(t *testing.T) {
	fx := newOrderFixture()
	fx.seedOrder("ord-1", entity.OrderStatusInLavorazione)

	_, err := fx.uc.SetStatus(context.Background(), "ord-1", "enviado", "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestSetStatus_OrdineInexistente(t *testing.T) {
	fx := newOrderFixture()
	_, err := fx.uc.SetStatus(context.Background(), "no-existe", entity.OrderStatusSpedito, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La notificación WebSocket se emite post-commit con el estado final.
func TestSetStatus_NotificaPostCommit(t *testing.T) {
	fx := newOrderFixture()
	fx.seedProduct("prod-1", 5)
	fx.seedOrder("ord-1", entity.OrderStatusPronto,
		entity.OrderItem{ID: "it-1", OrderID: "ord-1", ProductID: "prod-1", Quantity: 2})

	_, err := fx.uc.SetStatus(context.Background(), "ord-1", entity.OrderStatusSpedito, "user-1")
	require.NoError(t, err)

	require.Len(t, fx.notifier.orderEvents, 1)
	assert.Equal(t, entity.OrderStatusSpedito, fx.notifier.orderEvents[0])
	require.Len(t, fx.notifier.stockEvents, 1)
	assert.Equal(t, entity.MovementScarico, fx.notifier.stockEvents[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ClienteInexistente(t *testing.T) {
	fx := newOrderFixture()
	fx.seedProduct("prod-1", 5)

	_, err := fx.uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "cust-fantasma",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SinLineas(t *testing.T) {
	fx := newOrderFixture()
	_, err := fx.uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadNoPositiva(t *testing.T) {
	fx := newOrderFixture()
	fx.seedProduct("prod-1", 5)

	_, err := fx.uc.Create(context.Background(), "user-1", dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_OrdineSpedito_Conflicto(t *testing.T) {
	fx := newOrderFixture()
	fx.seedOrder("ord-1", entity.OrderStatusSpedito)

	err := fx.uc.Delete(context.Background(), "ord-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, fx.orders.orders["ord-1"], "el ordine spedito no debe eliminarse")
}

func TestDelete_OrdineNoTerminal(t *testing.T) {
	fx := newOrderFixture()
	fx.seedOrder("ord-1", entity.OrderStatusInLavorazione)

	require.NoError(t, fx.uc.Delete(context.Background(), "ord-1"))
	assert.Nil(t, fx.orders.orders["ord-1"])
}
