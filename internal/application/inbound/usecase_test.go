package inbound_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/inbound"
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

type fakeASNRepo struct {
	repository.ASNRepository
	asns  map[string]*entity.ASN
	items map[string]*entity.ASNItem
}

func (f *fakeASNRepo) GetByID(id string) (*entity.ASN, error)      { return f.asns[id], nil }
func (f *fakeASNRepo) GetForUpdate(id string) (*entity.ASN, error) { return f.asns[id], nil }
func (f *fakeASNRepo) UpdateHeader(asn *entity.ASN) error          { f.asns[asn.ID] = asn; return nil }
func (f *fakeASNRepo) GetItem(itemID string) (*entity.ASNItem, error) {
	return f.items[itemID], nil
}
func (f *fakeASNRepo) UpdateItem(item *entity.ASNItem) error { f.items[item.ID] = item; return nil }
func (f *fakeASNRepo) CountItemsNotReceived(asnID string) (int, error) {
	n := 0
	for _, it := range f.items {
		if it.ASNID == asnID && it.Status != entity.ASNItemStatusRicevuto {
			n++
		}
	}
	return n, nil
}
func (f *fakeASNRepo) Delete(id string) error { delete(f.asns, id); return nil }

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

type fakeLotRepo struct {
	repository.LotRepository
	lots []*entity.Lot
}

func (f *fakeLotRepo) Create(lot *entity.Lot) error { f.lots = append(f.lots, lot); return nil }
func (f *fakeLotRepo) GetByProductAndNumber(productID, lotNumber string) (*entity.Lot, error) {
	for _, l := range f.lots {
		if l.ProductID == productID && l.LotNumber == lotNumber {
			return l, nil
		}
	}
	return nil, nil
}

// fakeLocInvRepo guarda filas sueltas como la tabla real, para que un upsert
// que insertara en vez de incrementar quedara visible como fila duplicada.
type fakeLocInvRepo struct {
	repository.LocationInventoryRepository
	rows []*entity.LocationInventory
}

func (f *fakeLocInvRepo) GetForUpdate(locationID, productID string) (*entity.LocationInventory, error) {
	for _, r := range f.rows {
		if r.LocationID == locationID && r.ProductID == productID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeLocInvRepo) Upsert(inv *entity.LocationInventory) error {
	existing, _ := f.GetForUpdate(inv.LocationID, inv.ProductID)
	if existing != nil {
		existing.Quantity += inv.Quantity
		existing.UpdatedAt = inv.UpdatedAt
		return nil
	}
	row := *inv
	f.rows = append(f.rows, &row)
	return nil
}

// filas cuenta las filas (location, product); más de una es un duplicado.
func (f *fakeLocInvRepo) filas(locationID, productID string) int {
	n := 0
	for _, r := range f.rows {
		if r.LocationID == locationID && r.ProductID == productID {
			n++
		}
	}
	return n
}

func (f *fakeLocInvRepo) cantidad(locationID, productID string) int {
	total := 0
	for _, r := range f.rows {
		if r.LocationID == locationID && r.ProductID == productID {
			total += r.Quantity
		}
	}
	return total
}

type fakeNotifier struct {
	asnEvents   []string
	stockEvents []int
}

func (f *fakeNotifier) NotifyASNUpdate(asnID, status string) {
	f.asnEvents = append(f.asnEvents, status)
}
func (f *fakeNotifier) NotifyStockChange(productID string, quantity int, movementType string) {
	f.stockEvents = append(f.stockEvents, quantity)
}

type asnFixture struct {
	uc        *inbound.ASNUseCase
	asns      *fakeASNRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
	lots      *fakeLotRepo
	locInv    *fakeLocInvRepo
	notifier  *fakeNotifier
}

func newASNFixture() *asnFixture {
	asnRepo := &fakeASNRepo{asns: map[string]*entity.ASN{}, items: map[string]*entity.ASNItem{}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	movementRepo := &fakeMovementRepo{}
	lotRepo := &fakeLotRepo{}
	locInvRepo := &fakeLocInvRepo{}
	notifier := &fakeNotifier{}
	runner := &fakeTxRunner{repos: repository.TxRepos{
		ASNs:        asnRepo,
		Products:    productRepo,
		Movements:   movementRepo,
		Lots:        lotRepo,
		LocationInv: locInvRepo,
	}}
	return &asnFixture{
		uc:        inbound.NewASNUseCase(runner, asnRepo, productRepo, nil, notifier),
		asns:      asnRepo,
		products:  productRepo,
		movements: movementRepo,
		lots:      lotRepo,
		locInv:    locInvRepo,
		notifier:  notifier,
	}
}

// seedASN crea un ASN "atteso" con una línea de 10 unidades esperadas.
func (fx *asnFixture) seedASN(lotTracking bool) {
	fx.products.products["prod-1"] = &entity.Product{
		ID: "prod-1", SKU: "SKU-1", Quantity: 10, LotTracking: lotTracking,
	}
	item := &entity.ASNItem{
		ID:               "item-1",
		ASNID:            "asn-1",
		ProductID:        "prod-1",
		ExpectedQuantity: 10,
		TargetLocationID: "loc-1",
		Status:           entity.ASNItemStatusAtteso,
	}
	fx.asns.items["item-1"] = item
	fx.asns.asns["asn-1"] = &entity.ASN{
		ID:        "asn-1",
		ASNNumber: "ASN-20260830-ABC123",
		Status:    entity.ASNStatusAtteso,
		Items:     []entity.ASNItem{*item},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Receive — acumulación y auto-completado
// ──────────────────────────────────────────────────────────────────────────────

// Dos recepciones parciales (4 + 6 sobre 10 esperadas): la primera deja la
// línea "parziale", la segunda la completa y el ASN pasa a "completato".
// El stock sube 4 y luego 6, con un movimiento carico por recepción.
func TestReceive_ParcialYLuegoCompleto(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)

	out, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 4}})
	require.NoError(t, err)

	assert.Equal(t, entity.ASNStatusInRicezione, out.Status)
	assert.Equal(t, entity.ASNItemStatusParziale, fx.asns.items["item-1"].Status)
	assert.Equal(t, 4, fx.asns.items["item-1"].ReceivedQuantity)
	assert.Equal(t, 14, fx.products.products["prod-1"].Quantity)
	assert.NotNil(t, fx.asns.asns["asn-1"].ArrivedAt, "la primera recepción sella arrived_at")

	out, err = fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 6}})
	require.NoError(t, err)

	assert.Equal(t, entity.ASNStatusCompletato, out.Status)
	assert.Equal(t, entity.ASNItemStatusRicevuto, fx.asns.items["item-1"].Status)
	assert.Equal(t, 10, fx.asns.items["item-1"].ReceivedQuantity)
	assert.Equal(t, 20, fx.products.products["prod-1"].Quantity)
	assert.NotNil(t, fx.asns.asns["asn-1"].CompletedAt)

	require.Len(t, fx.movements.movements, 2, "un movimiento carico por recepción")
	assert.Equal(t, entity.MovementCarico, fx.movements.movements[0].MovementType)
	assert.Equal(t, 4, fx.movements.movements[0].Quantity)
	assert.Equal(t, 6, fx.movements.movements[1].Quantity)
}

// Sobre-recepción (12 sobre 10): la línea queda "ricevuto" y el stock sube
// las 12 unidades recibidas reales.
func TestReceive_SobreRecepcion(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)

	out, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 12}})
	require.NoError(t, err)

	assert.Equal(t, entity.ASNStatusCompletato, out.Status)
	assert.Equal(t, 12, fx.asns.items["item-1"].ReceivedQuantity)
	assert.Equal(t, 22, fx.products.products["prod-1"].Quantity)
}

// La ubicación destino de la línea recibe el upsert de inventario; el override
// del request tiene prioridad sobre el target de la línea.
func TestReceive_UpsertInventarioUbicacion(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)

	_, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, fx.locInv.cantidad("loc-1", "prod-1"), "sin override va al target de la línea")

	_, err = fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 2, LocationID: "loc-override"}})
	require.NoError(t, err)
	assert.Equal(t, 2, fx.locInv.cantidad("loc-override", "prod-1"))
	assert.Equal(t, 3, fx.locInv.cantidad("loc-1", "prod-1"), "el override no toca la ubicación original")
}

// Dos recepciones sucesivas hacia la misma ubicación destino incrementan la
// única fila (location, product): nunca una segunda fila por el mismo par,
// aunque las líneas lleguen sin lote.
func TestReceive_MismaUbicacionIncrementaFilaUnica(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)

	_, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 4}})
	require.NoError(t, err)
	_, err = fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 6}})
	require.NoError(t, err)

	assert.Equal(t, 1, fx.locInv.filas("loc-1", "prod-1"), "una sola fila por (location, product)")
	assert.Equal(t, 10, fx.locInv.cantidad("loc-1", "prod-1"))
	assert.Empty(t, fx.locInv.rows[0].LotID, "las líneas sin lote insertan lot_id nulo")
}

// Producto con lot tracking: la recepción crea el lote si no existe y lo
// reutiliza en recepciones posteriores.
func TestReceive_CreaLoteUnaVez(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(true)

	_, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 4, LotNumber: "L-2026-01"}})
	require.NoError(t, err)
	require.Len(t, fx.lots.lots, 1)
	assert.Equal(t, "L-2026-01", fx.lots.lots[0].LotNumber)
	assert.Equal(t, "active", fx.lots.lots[0].Status)

	_, err = fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 2, LotNumber: "L-2026-01"}})
	require.NoError(t, err)
	assert.Len(t, fx.lots.lots, 1, "el mismo lote no se duplica")
}

// Recibir sobre un ASN completado no es válido.
func TestReceive_ASNCompletado_NoRicevibile(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)
	fx.asns.asns["asn-1"].Status = entity.ASNStatusCompletato

	_, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotReceivable)
}

// Línea de otro ASN: entrada inválida, la transacción aborta entera.
func TestReceive_LineaDeOtroASN(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)
	fx.asns.items["item-extranjero"] = &entity.ASNItem{
		ID: "item-extranjero", ASNID: "asn-otro", ProductID: "prod-1",
		ExpectedQuantity: 5, Status: entity.ASNItemStatusAtteso,
	}

	_, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-extranjero", ReceivedQuantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceive_CantidadNoPositiva(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)

	_, err := fx.uc.Receive(context.Background(), "asn-1", "user-1",
		[]dto.ASNReceiveLine{{ASNItemID: "item-1", ReceivedQuantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceive_SinLineas(t *testing.T) {
	fx := newASNFixture()
	_, err := fx.uc.Receive(context.Background(), "asn-1", "user-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetStatus / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_InRicezioneSellaArrivedAt(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)

	out, err := fx.uc.SetStatus(context.Background(), "asn-1", entity.ASNStatusInRicezione)
	require.NoError(t, err)

	assert.Equal(t, entity.ASNStatusInRicezione, out.Status)
	assert.NotNil(t, out.ArrivedAt)
}

func TestSetStatus_EstadoInvalido(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)

	_, err := fx.uc.SetStatus(context.Background(), "asn-1", "recibido")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestDelete_ASNCompletado_Conflicto(t *testing.T) {
	fx := newASNFixture()
	fx.seedASN(false)
	fx.asns.asns["asn-1"].Status = entity.ASNStatusCompletato

	err := fx.uc.Delete(context.Background(), "asn-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
