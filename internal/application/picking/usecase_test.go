package picking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/application/picking"
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

type fakePickingRepo struct {
	repository.PickingRepository
	waves map[string]*entity.PickingWave
	tasks map[string]*entity.PickingTask
}

func (f *fakePickingRepo) CreateWave(w *entity.PickingWave) error {
	f.waves[w.ID] = w
	for i := range w.Tasks {
		f.tasks[w.Tasks[i].ID] = &w.Tasks[i]
	}
	return nil
}
func (f *fakePickingRepo) GetWave(id string) (*entity.PickingWave, error)          { return f.waves[id], nil }
func (f *fakePickingRepo) GetWaveForUpdate(id string) (*entity.PickingWave, error) { return f.waves[id], nil }
func (f *fakePickingRepo) UpdateWave(w *entity.PickingWave) error                  { f.waves[w.ID] = w; return nil }
func (f *fakePickingRepo) GetTask(taskID string) (*entity.PickingTask, error) {
	return f.tasks[taskID], nil
}
func (f *fakePickingRepo) UpdateTask(t *entity.PickingTask) error { f.tasks[t.ID] = t; return nil }
func (f *fakePickingRepo) CountPendingTasks(waveID string) (int, error) {
	n := 0
	for _, t := range f.tasks {
		if t.WaveID == waveID && t.Status == entity.TaskStatusPending {
			n++
		}
	}
	return n, nil
}
func (f *fakePickingRepo) DeleteWave(id string) error { delete(f.waves, id); return nil }

type fakeOrderRepo struct {
	repository.OrderRepository
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.orders[id], nil }

type fakeLocInvRepo struct {
	repository.LocationInventoryRepository
	rows map[string]*entity.LocationInventory // "locationID/productID"
}

func (f *fakeLocInvRepo) GetForUpdate(locationID, productID string) (*entity.LocationInventory, error) {
	return f.rows[locationID+"/"+productID], nil
}
func (f *fakeLocInvRepo) Update(inv *entity.LocationInventory) error {
	f.rows[inv.LocationID+"/"+inv.ProductID] = inv
	return nil
}
func (f *fakeLocInvRepo) FindPickLocation(productID string) (*entity.LocationInventory, error) {
	var best *entity.LocationInventory
	for _, row := range f.rows {
		if row.ProductID != productID || row.Quantity <= 0 {
			continue
		}
		if best == nil || row.Quantity > best.Quantity {
			best = row
		}
	}
	return best, nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) NotifyPickingUpdate(waveID, status string) {
	f.events = append(f.events, status)
}

type waveFixture struct {
	uc       *picking.WaveUseCase
	picking  *fakePickingRepo
	orders   *fakeOrderRepo
	locInv   *fakeLocInvRepo
	notifier *fakeNotifier
}

func newWaveFixture() *waveFixture {
	pickingRepo := &fakePickingRepo{waves: map[string]*entity.PickingWave{}, tasks: map[string]*entity.PickingTask{}}
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	locInvRepo := &fakeLocInvRepo{rows: map[string]*entity.LocationInventory{}}
	notifier := &fakeNotifier{}
	runner := &fakeTxRunner{repos: repository.TxRepos{
		Picking:     pickingRepo,
		LocationInv: locInvRepo,
	}}
	return &waveFixture{
		uc:       picking.NewWaveUseCase(runner, pickingRepo, orderRepo, nil, nil, locInvRepo, nil, notifier),
		picking:  pickingRepo,
		orders:   orderRepo,
		locInv:   locInvRepo,
		notifier: notifier,
	}
}

func (fx *waveFixture) seedInventory(locationID, productID string, qty int) {
	fx.locInv.rows[locationID+"/"+productID] = &entity.LocationInventory{
		ID: "inv-" + locationID + "-" + productID, LocationID: locationID, ProductID: productID, Quantity: qty,
	}
}

// seedWave crea una wave "in_corso" con las tareas dadas.
func (fx *waveFixture) seedWave(status string, tasks ...*entity.PickingTask) {
	w := &entity.PickingWave{
		ID:          "wave-1",
		WaveNumber:  "WAVE-20260830-ABC123",
		WarehouseID: "wh-1",
		Status:      status,
	}
	for _, t := range tasks {
		t.WaveID = w.ID
		fx.picking.tasks[t.ID] = t
		w.Tasks = append(w.Tasks, *t)
	}
	fx.picking.waves[w.ID] = w
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Una tarea por línea de cada ordine, con la ubicación de mayor stock.
func TestCreateWave_UnaTareaPorLinea(t *testing.T) {
	fx := newWaveFixture()
	fx.seedInventory("loc-a", "prod-1", 3)
	fx.seedInventory("loc-b", "prod-1", 9)
	fx.seedInventory("loc-a", "prod-2", 5)
	fx.orders.orders["ord-1"] = &entity.Order{ID: "ord-1", Status: entity.OrderStatusPronto, Items: []entity.OrderItem{
		{ID: "it-1", ProductID: "prod-1", Quantity: 4},
		{ID: "it-2", ProductID: "prod-2", Quantity: 2},
	}}

	out, err := fx.uc.Create(context.Background(), "user-1", dto.CreateWaveRequest{
		WarehouseID: "wh-1",
		OrderIDs:    []string{"ord-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.WaveStatusCreato, out.Status)
	assert.Equal(t, "single", out.WaveType, "el tipo por defecto es single")
	assert.Equal(t, 5, out.Priority, "la prioridad por defecto es 5")
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "loc-b", out.Tasks[0].SourceLocationID, "debe elegirse la ubicación con más stock")
	assert.Equal(t, 1, out.Tasks[0].Sequence)
	assert.Equal(t, 2, out.Tasks[1].Sequence)
}

// Ordini inexistentes y productos sin stock ubicado se omiten en silencio.
func TestCreateWave_OmiteOrdiniYProductosSinUbicacion(t *testing.T) {
	fx := newWaveFixture()
	fx.seedInventory("loc-a", "prod-1", 5)
	fx.orders.orders["ord-1"] = &entity.Order{ID: "ord-1", Items: []entity.OrderItem{
		{ID: "it-1", ProductID: "prod-1", Quantity: 2},
		{ID: "it-2", ProductID: "prod-sin-stock", Quantity: 1},
	}}

	out, err := fx.uc.Create(context.Background(), "user-1", dto.CreateWaveRequest{
		WarehouseID: "wh-1",
		OrderIDs:    []string{"ord-1", "ord-fantasma"},
	})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "prod-1", out.Tasks[0].ProductID)
}

func TestCreateWave_SinOrdini(t *testing.T) {
	fx := newWaveFixture()
	_, err := fx.uc.Create(context.Background(), "user-1", dto.CreateWaveRequest{WarehouseID: "wh-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Start
// ──────────────────────────────────────────────────────────────────────────────

func TestStart_AsignaOperadorSiNadieLaTenia(t *testing.T) {
	fx := newWaveFixture()
	fx.seedWave(entity.WaveStatusCreato)

	out, err := fx.uc.Start(context.Background(), "wave-1", "user-7")
	require.NoError(t, err)

	assert.Equal(t, entity.WaveStatusInCorso, out.Status)
	assert.Equal(t, "user-7", out.AssignedUserID)
	assert.NotNil(t, out.StartedAt)
}

func TestStart_WaveYaIniciada_Conflicto(t *testing.T) {
	fx := newWaveFixture()
	fx.seedWave(entity.WaveStatusInCorso)

	_, err := fx.uc.Start(context.Background(), "wave-1", "user-7")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Confirm — descuento por ubicación y auto-completado
// ──────────────────────────────────────────────────────────────────────────────

// Pick completo: la tarea queda "completed", el inventario de la ubicación
// baja, y al no quedar tareas pendientes la wave se auto-completa.
func TestConfirm_PickCompletoAutoCompletaWave(t *testing.T) {
	fx := newWaveFixture()
	fx.seedInventory("loc-a", "prod-1", 10)
	fx.seedWave(entity.WaveStatusInCorso, &entity.PickingTask{
		ID: "task-1", ProductID: "prod-1", SourceLocationID: "loc-a",
		RequestedQuantity: 4, Status: entity.TaskStatusPending, Sequence: 1,
	})

	out, err := fx.uc.Confirm(context.Background(), "wave-1", "user-1",
		[]dto.PickConfirmLine{{TaskID: "task-1", PickedQuantity: 4}})
	require.NoError(t, err)

	assert.Equal(t, entity.WaveStatusCompletato, out.Status)
	assert.NotNil(t, fx.picking.waves["wave-1"].CompletedAt)
	task := fx.picking.tasks["task-1"]
	assert.Equal(t, entity.TaskStatusCompleted, task.Status)
	assert.Equal(t, "user-1", task.PickedBy)
	assert.NotNil(t, task.PickedAt)
	assert.Equal(t, 6, fx.locInv.rows["loc-a/prod-1"].Quantity)
}

// Pick parcial: la tarea queda "partial" pero cuenta como hecha, así que la
// wave igualmente se auto-completa.
func TestConfirm_PickParcialCuentaComoHecha(t *testing.T) {
	fx := newWaveFixture()
	fx.seedInventory("loc-a", "prod-1", 10)
	fx.seedWave(entity.WaveStatusInCorso, &entity.PickingTask{
		ID: "task-1", ProductID: "prod-1", SourceLocationID: "loc-a",
		RequestedQuantity: 4, Status: entity.TaskStatusPending, Sequence: 1,
	})

	out, err := fx.uc.Confirm(context.Background(), "wave-1", "user-1",
		[]dto.PickConfirmLine{{TaskID: "task-1", PickedQuantity: 2}})
	require.NoError(t, err)

	assert.Equal(t, entity.TaskStatusPartial, fx.picking.tasks["task-1"].Status)
	assert.Equal(t, entity.WaveStatusCompletato, out.Status,
		"una tarea partial no bloquea el completado de la wave")
	assert.Equal(t, 8, fx.locInv.rows["loc-a/prod-1"].Quantity)
}

// Con otra tarea todavía pendiente la wave no se completa.
func TestConfirm_TareasPendientes_WaveSigueInCorso(t *testing.T) {
	fx := newWaveFixture()
	fx.seedInventory("loc-a", "prod-1", 10)
	fx.seedWave(entity.WaveStatusInCorso,
		&entity.PickingTask{ID: "task-1", ProductID: "prod-1", SourceLocationID: "loc-a",
			RequestedQuantity: 4, Status: entity.TaskStatusPending, Sequence: 1},
		&entity.PickingTask{ID: "task-2", ProductID: "prod-1", SourceLocationID: "loc-a",
			RequestedQuantity: 2, Status: entity.TaskStatusPending, Sequence: 2})

	out, err := fx.uc.Confirm(context.Background(), "wave-1", "user-1",
		[]dto.PickConfirmLine{{TaskID: "task-1", PickedQuantity: 4}})
	require.NoError(t, err)

	assert.Equal(t, entity.WaveStatusInCorso, out.Status)
	assert.Nil(t, fx.picking.waves["wave-1"].CompletedAt)
}

// El descuento se recorta a cero si se recoge más de lo que la fila tenía.
func TestConfirm_DescuentoRecortadoACero(t *testing.T) {
	fx := newWaveFixture()
	fx.seedInventory("loc-a", "prod-1", 3)
	fx.seedWave(entity.WaveStatusInCorso, &entity.PickingTask{
		ID: "task-1", ProductID: "prod-1", SourceLocationID: "loc-a",
		RequestedQuantity: 5, Status: entity.TaskStatusPending, Sequence: 1,
	})

	_, err := fx.uc.Confirm(context.Background(), "wave-1", "user-1",
		[]dto.PickConfirmLine{{TaskID: "task-1", PickedQuantity: 5}})
	require.NoError(t, err)

	assert.Equal(t, 0, fx.locInv.rows["loc-a/prod-1"].Quantity)
}

// Fila de inventario inexistente: el descuento se omite, el pick se registra.
func TestConfirm_SinFilaDeInventario_NoFalla(t *testing.T) {
	fx := newWaveFixture()
	fx.seedWave(entity.WaveStatusInCorso, &entity.PickingTask{
		ID: "task-1", ProductID: "prod-1", SourceLocationID: "loc-fantasma",
		RequestedQuantity: 2, Status: entity.TaskStatusPending, Sequence: 1,
	})

	out, err := fx.uc.Confirm(context.Background(), "wave-1", "user-1",
		[]dto.PickConfirmLine{{TaskID: "task-1", PickedQuantity: 2}})
	require.NoError(t, err)

	assert.Equal(t, entity.TaskStatusCompleted, fx.picking.tasks["task-1"].Status)
	assert.Equal(t, entity.WaveStatusCompletato, out.Status)
}

// Tareas de otra wave se saltan sin tocar nada.
func TestConfirm_TareaDeOtraWave_SeSalta(t *testing.T) {
	fx := newWaveFixture()
	fx.seedInventory("loc-a", "prod-1", 10)
	fx.seedWave(entity.WaveStatusInCorso, &entity.PickingTask{
		ID: "task-1", ProductID: "prod-1", SourceLocationID: "loc-a",
		RequestedQuantity: 4, Status: entity.TaskStatusPending, Sequence: 1,
	})
	fx.picking.tasks["task-ajena"] = &entity.PickingTask{
		ID: "task-ajena", WaveID: "wave-otra", ProductID: "prod-1", SourceLocationID: "loc-a",
		RequestedQuantity: 9, Status: entity.TaskStatusPending,
	}

	out, err := fx.uc.Confirm(context.Background(), "wave-1", "user-1",
		[]dto.PickConfirmLine{{TaskID: "task-ajena", PickedQuantity: 9}})
	require.NoError(t, err)

	assert.Equal(t, entity.TaskStatusPending, fx.picking.tasks["task-ajena"].Status)
	assert.Equal(t, 10, fx.locInv.rows["loc-a/prod-1"].Quantity, "el inventario no debe tocarse")
	assert.Equal(t, entity.WaveStatusInCorso, out.Status, "la tarea propia sigue pendiente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteWave_Completada_Conflicto(t *testing.T) {
	fx := newWaveFixture()
	fx.seedWave(entity.WaveStatusCompletato)

	err := fx.uc.Delete(context.Background(), "wave-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteWave_NoCompletada(t *testing.T) {
	fx := newWaveFixture()
	fx.seedWave(entity.WaveStatusCreato)

	require.NoError(t, fx.uc.Delete(context.Background(), "wave-1"))
	assert.Nil(t, fx.picking.waves["wave-1"])
}
