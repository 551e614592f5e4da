package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/stock"
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

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

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
func (f *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

type fakeLocInvRepo struct {
	repository.LocationInventoryRepository
	rows []repository.LocationInventoryRow
}

func (f *fakeLocInvRepo) Report() ([]repository.LocationInventoryRow, error) { return f.rows, nil }

// fakeExporter captura las filas que el caso de uso le entrega.
type fakeExporter struct {
	rows []repository.LocationInventoryRow
}

func (f *fakeExporter) ExportInventory(ctx context.Context, rows []repository.LocationInventoryRow) ([]byte, error) {
	f.rows = rows
	return []byte("xlsx"), nil
}

type fakeNotifier struct {
	quantities []int
	types      []string
}

func (f *fakeNotifier) NotifyStockChange(productID string, quantity int, movementType string) {
	f.quantities = append(f.quantities, quantity)
	f.types = append(f.types, movementType)
}

type stockFixture struct {
	uc        *stock.StockUseCase
	products  *fakeProductRepo
	movements *fakeMovementRepo
	exporter  *fakeExporter
	notifier  *fakeNotifier
}

func newStockFixture() *stockFixture {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SKU: "SKU-1", Quantity: 10},
	}}
	movementRepo := &fakeMovementRepo{}
	locInvRepo := &fakeLocInvRepo{}
	exporter := &fakeExporter{}
	notifier := &fakeNotifier{}
	runner := &fakeTxRunner{repos: repository.TxRepos{
		Products:  productRepo,
		Movements: movementRepo,
	}}
	return &stockFixture{
		uc:        stock.NewStockUseCase(runner, movementRepo, locInvRepo, exporter, notifier),
		products:  productRepo,
		movements: movementRepo,
		exporter:  exporter,
		notifier:  notifier,
	}
}

func (fx *stockFixture) move(t *testing.T, movementType string, qty int) *dto.MovementResponse {
	t.Helper()
	out, err := fx.uc.CreateMovement(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID:    "prod-1",
		MovementType: movementType,
		Quantity:     qty,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateMovement — efecto por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMovement_CaricoSuma(t *testing.T) {
	fx := newStockFixture()
	fx.move(t, entity.MovementCarico, 5)
	assert.Equal(t, 15, fx.products.products["prod-1"].Quantity)
}

func TestCreateMovement_ResoSuma(t *testing.T) {
	fx := newStockFixture()
	fx.move(t, entity.MovementReso, 2)
	assert.Equal(t, 12, fx.products.products["prod-1"].Quantity)
}

func TestCreateMovement_ScaricoResta(t *testing.T) {
	fx := newStockFixture()
	fx.move(t, entity.MovementScarico, 4)
	assert.Equal(t, 6, fx.products.products["prod-1"].Quantity)
}

// Scarico mayor que el on-hand: recorte a cero, el movimiento conserva la
// cantidad pedida.
func TestCreateMovement_ScaricoRecortadoACero(t *testing.T) {
	fx := newStockFixture()
	out := fx.move(t, entity.MovementScarico, 25)

	assert.Equal(t, 0, fx.products.products["prod-1"].Quantity)
	assert.Equal(t, 25, out.Quantity)
}

// Trasferimento: el total del producto no cambia, solo queda la traza.
func TestCreateMovement_TrasferimentoNoTocaTotal(t *testing.T) {
	fx := newStockFixture()
	fx.move(t, entity.MovementTrasferimento, 3)

	assert.Equal(t, 10, fx.products.products["prod-1"].Quantity)
	require.Len(t, fx.movements.movements, 1, "la traza sí se registra en el libro")
	assert.Equal(t, entity.MovementTrasferimento, fx.movements.movements[0].MovementType)
}

func TestCreateMovement_TipoInvalido(t *testing.T) {
	fx := newStockFixture()
	_, err := fx.uc.CreateMovement(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "prod-1", MovementType: "entrada", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCreateMovement_CantidadNoPositiva(t *testing.T) {
	fx := newStockFixture()
	_, err := fx.uc.CreateMovement(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "prod-1", MovementType: entity.MovementCarico, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateMovement_ProductoInexistente(t *testing.T) {
	fx := newStockFixture()
	_, err := fx.uc.CreateMovement(context.Background(), "user-1", dto.CreateMovementRequest{
		ProductID: "prod-fantasma", MovementType: entity.MovementCarico, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La notificación lleva el on-hand resultante.
func TestCreateMovement_NotificaOnHandResultante(t *testing.T) {
	fx := newStockFixture()
	fx.move(t, entity.MovementCarico, 5)

	require.Len(t, fx.notifier.quantities, 1)
	assert.Equal(t, 15, fx.notifier.quantities[0])
	assert.Equal(t, entity.MovementCarico, fx.notifier.types[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ExportInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestExportInventory_EntregaLasFilasDelReport(t *testing.T) {
	fx := newStockFixture()
	fx.uc = stock.NewStockUseCase(
		&fakeTxRunner{}, fx.movements,
		&fakeLocInvRepo{rows: []repository.LocationInventoryRow{
			{LocationBarcode: "A-01-02-03", ProductSKU: "SKU-1", Quantity: 7},
		}},
		fx.exporter, fx.notifier,
	)

	out, err := fx.uc.ExportInventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), out)
	require.Len(t, fx.exporter.rows, 1)
	assert.Equal(t, "A-01-02-03", fx.exporter.rows[0].LocationBarcode)
}
