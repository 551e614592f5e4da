package supplier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcastillo/warehouse-api/internal/application/supplier"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	repos repository.TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(r repository.TxRepos) error) error {
	return fn(f.repos)
}

type fakeSupplierOrderRepo struct {
	repository.SupplierOrderRepository
	orders map[string]*entity.SupplierOrder
}

func (f *fakeSupplierOrderRepo) GetByID(id string) (*entity.SupplierOrder, error) {
	return f.orders[id], nil
}
func (f *fakeSupplierOrderRepo) GetForUpdate(id string) (*entity.SupplierOrder, error) {
	return f.orders[id], nil
}
func (f *fakeSupplierOrderRepo) UpdateStatus(id, status string) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}
func (f *fakeSupplierOrderRepo) Delete(id string) error { delete(f.orders, id); return nil }

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

type fakeNotifier struct {
	orderEvents []string
	stockEvents []int
}

func (f *fakeNotifier) NotifySupplierOrderUpdate(orderID, status string) {
	f.orderEvents = append(f.orderEvents, status)
}
func (f *fakeNotifier) NotifyStockChange(productID string, quantity int, movementType string) {
	f.stockEvents = append(f.stockEvents, quantity)
}

type supplierFixture struct {
	uc        *supplier.SupplierOrderUseCase
	orders    *fakeSupplierOrderRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
	notifier  *fakeNotifier
}

func newSupplierFixture() *supplierFixture {
	orderRepo := &fakeSupplierOrderRepo{orders: map[string]*entity.SupplierOrder{}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	movementRepo := &fakeMovementRepo{}
	notifier := &fakeNotifier{}
	runner := &fakeTxRunner{repos: repository.TxRepos{
		SupplierOrders: orderRepo,
		Products:       productRepo,
		Movements:      movementRepo,
	}}
	return &supplierFixture{
		uc:        supplier.NewSupplierOrderUseCase(runner, orderRepo, productRepo, notifier),
		orders:    orderRepo,
		products:  productRepo,
		movements: movementRepo,
		notifier:  notifier,
	}
}

func (fx *supplierFixture) seedOrder(status string, items ...entity.SupplierOrderItem) {
	fx.orders.orders["so-1"] = &entity.SupplierOrder{
		ID: "so-1", Supplier: "Fornitore SpA", Status: status, Items: items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetStatus — incremento de stock en la transición a ricevuto
// ──────────────────────────────────────────────────────────────────────────────

// La transición a "ricevuto" suma la cantidad de cada línea al on-hand y
// registra un movimiento de carico por línea.
func TestSetStatus_RicevutoIncrementaStock(t *testing.T) {
	fx := newSupplierFixture()
	fx.products.products["prod-1"] = &entity.Product{ID: "prod-1", Quantity: 5}
	fx.products.products["prod-2"] = &entity.Product{ID: "prod-2", Quantity: 0}
	fx.seedOrder(entity.SupplierOrderStatusInviato,
		entity.SupplierOrderItem{ID: "it-1", OrderID: "so-1", ProductID: "prod-1", Quantity: 10},
		entity.SupplierOrderItem{ID: "it-2", OrderID: "so-1", ProductID: "prod-2", Quantity: 3})

	out, err := fx.uc.SetStatus(context.Background(), "so-1", "user-1", entity.SupplierOrderStatusRicevuto)
	require.NoError(t, err)

	assert.Equal(t, entity.SupplierOrderStatusRicevuto, out.Status)
	assert.Equal(t, 15, fx.products.products["prod-1"].Quantity)
	assert.Equal(t, 3, fx.products.products["prod-2"].Quantity)

	require.Len(t, fx.movements.movements, 2)
	assert.Equal(t, entity.MovementCarico, fx.movements.movements[0].MovementType)
	assert.Equal(t, 10, fx.movements.movements[0].Quantity)
	assert.Contains(t, fx.movements.movements[0].Notes, "so-1")
}

// Repetir la transición a ricevuto no vuelve a sumar.
func TestSetStatus_RicevutoDosVeces_NoSumaDoble(t *testing.T) {
	fx := newSupplierFixture()
	fx.products.products["prod-1"] = &entity.Product{ID: "prod-1", Quantity: 5}
	fx.seedOrder(entity.SupplierOrderStatusInviato,
		entity.SupplierOrderItem{ID: "it-1", OrderID: "so-1", ProductID: "prod-1", Quantity: 10})

	_, err := fx.uc.SetStatus(context.Background(), "so-1", "user-1", entity.SupplierOrderStatusRicevuto)
	require.NoError(t, err)
	_, err = fx.uc.SetStatus(context.Background(), "so-1", "user-1", entity.SupplierOrderStatusRicevuto)
	require.NoError(t, err)

	assert.Equal(t, 15, fx.products.products["prod-1"].Quantity, "la segunda transición no debe sumar")
	assert.Len(t, fx.movements.movements, 1)
}

// "parziale" es un estado válido que no toca stock.
func TestSetStatus_Parziale_NoTocaStock(t *testing.T) {
	fx := newSupplierFixture()
	fx.products.products["prod-1"] = &entity.Product{ID: "prod-1", Quantity: 5}
	fx.seedOrder(entity.SupplierOrderStatusInviato,
		entity.SupplierOrderItem{ID: "it-1", OrderID: "so-1", ProductID: "prod-1", Quantity: 10})

	out, err := fx.uc.SetStatus(context.Background(), "so-1", "user-1", entity.SupplierOrderStatusParziale)
	require.NoError(t, err)

	assert.Equal(t, entity.SupplierOrderStatusParziale, out.Status)
	assert.Equal(t, 5, fx.products.products["prod-1"].Quantity)
	assert.Empty(t, fx.movements.movements)
}

// Línea con producto eliminado: se salta, el resto se procesa.
func TestSetStatus_ProductoInexistente_SeSalta(t *testing.T) {
	fx := newSupplierFixture()
	fx.products.products["prod-1"] = &entity.Product{ID: "prod-1", Quantity: 2}
	fx.seedOrder(entity.SupplierOrderStatusInviato,
		entity.SupplierOrderItem{ID: "it-1", OrderID: "so-1", ProductID: "prod-borrado", Quantity: 4},
		entity.SupplierOrderItem{ID: "it-2", OrderID: "so-1", ProductID: "prod-1", Quantity: 6})

	_, err := fx.uc.SetStatus(context.Background(), "so-1", "user-1", entity.SupplierOrderStatusRicevuto)
	require.NoError(t, err)

	assert.Equal(t, 8, fx.products.products["prod-1"].Quantity)
	assert.Len(t, fx.movements.movements, 1)
}

func TestSetStatus_EstadoInvalido(t *testing.T) {
	fx := newSupplierFixture()
	fx.seedOrder(entity.SupplierOrderStatusInviato)

	_, err := fx.uc.SetStatus(context.Background(), "so-1", "user-1", "recibido")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// Las notificaciones llevan el on-hand resultante, no el delta.
func TestSetStatus_NotificaStockResultante(t *testing.T) {
	fx := newSupplierFixture()
	fx.products.products["prod-1"] = &entity.Product{ID: "prod-1", Quantity: 5}
	fx.seedOrder(entity.SupplierOrderStatusInviato,
		entity.SupplierOrderItem{ID: "it-1", OrderID: "so-1", ProductID: "prod-1", Quantity: 10})

	_, err := fx.uc.SetStatus(context.Background(), "so-1", "user-1", entity.SupplierOrderStatusRicevuto)
	require.NoError(t, err)

	require.Len(t, fx.notifier.stockEvents, 1)
	assert.Equal(t, 15, fx.notifier.stockEvents[0])
	require.Len(t, fx.notifier.orderEvents, 1)
	assert.Equal(t, entity.SupplierOrderStatusRicevuto, fx.notifier.orderEvents[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_OrdineRicevuto_Conflicto(t *testing.T) {
	fx := newSupplierFixture()
	fx.seedOrder(entity.SupplierOrderStatusRicevuto)

	err := fx.uc.Delete(context.Background(), "so-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_OrdineInviato(t *testing.T) {
	fx := newSupplierFixture()
	fx.seedOrder(entity.SupplierOrderStatusInviato)

	require.NoError(t, fx.uc.Delete(context.Background(), "so-1"))
	assert.Nil(t, fx.orders.orders["so-1"])
}
