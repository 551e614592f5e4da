package picking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// WaveUseCase gestiona las waves de picking: creación desde ordini, avvio,
// confirmación de picks (que descuenta inventario por ubicación) y borrado.
type WaveUseCase struct {
	txRunner      TxRunner
	pickingRepo   repository.PickingRepository
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	locInvRepo    repository.LocationInventoryRepository
	documentGen   DocumentGenerator
	notifier      Notifier
}

// NewWaveUseCase construye el caso de uso.
func NewWaveUseCase(
	txRunner TxRunner,
	pickingRepo repository.PickingRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	locInvRepo repository.LocationInventoryRepository,
	documentGen DocumentGenerator,
	notifier Notifier,
) *WaveUseCase {
	return &WaveUseCase{
		txRunner:      txRunner,
		pickingRepo:   pickingRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		locInvRepo:    locInvRepo,
		documentGen:   documentGen,
		notifier:      notifier,
	}
}

// generateWaveNumber genera un número de documento WAVE-YYYYMMDD-XXXXXX.
func generateWaveNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("WAVE-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

// Create genera la wave y una tarea por cada línea de los ordini indicados.
// La ubicación origen de cada tarea es la que tiene más stock del producto;
// los ordini inexistentes se omiten en silencio, como hace la release actual
// del flujo de creación.
func (uc *WaveUseCase) Create(ctx context.Context, userID string, in dto.CreateWaveRequest) (*dto.PickingWaveResponse, error) {
	if in.WarehouseID == "" || len(in.OrderIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	waveType := in.WaveType
	if waveType == "" {
		waveType = "single"
	}
	priority := in.Priority
	if priority == 0 {
		priority = 5
	}

	wave := &entity.PickingWave{
		ID:             uuid.New().String(),
		WaveNumber:     generateWaveNumber(),
		WarehouseID:    in.WarehouseID,
		WaveType:       waveType,
		Status:         entity.WaveStatusCreato,
		Priority:       priority,
		AssignedUserID: in.AssignedUserID,
		Notes:          in.Notes,
		CreatedBy:      userID,
		CreatedAt:      time.Now(),
	}

	sequence := 0
	for _, orderID := range in.OrderIDs {
		order, err := uc.orderRepo.GetByID(orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			continue
		}
		for _, item := range order.Items {
			inv, err := uc.locInvRepo.FindPickLocation(item.ProductID)
			if err != nil {
				return nil, err
			}
			if inv == nil {
				// Sin stock ubicado: la tarea no se puede asignar a una ubicación
				continue
			}
			sequence++
			wave.Tasks = append(wave.Tasks, entity.PickingTask{
				ID:                uuid.New().String(),
				WaveID:            wave.ID,
				OrderID:           orderID,
				ProductID:         item.ProductID,
				SourceLocationID:  inv.LocationID,
				RequestedQuantity: item.Quantity,
				Status:            entity.TaskStatusPending,
				Sequence:          sequence,
			})
		}
	}

	if err := uc.pickingRepo.CreateWave(wave); err != nil {
		return nil, err
	}
	return toWaveResponse(wave), nil
}

// GetByID devuelve la wave con sus tareas.
func (uc *WaveUseCase) GetByID(ctx context.Context, id string) (*dto.PickingWaveResponse, error) {
	wave, err := uc.pickingRepo.GetWave(id)
	if err != nil {
		return nil, err
	}
	if wave == nil {
		return nil, domain.ErrNotFound
	}
	return toWaveResponse(wave), nil
}

// List devuelve las waves con filtros.
func (uc *WaveUseCase) List(ctx context.Context, q dto.WaveListQuery) ([]dto.PickingWaveResponse, error) {
	q.DefaultPage()
	list, err := uc.pickingRepo.ListWaves(repository.WaveFilter{
		Status:         q.Status,
		WarehouseID:    q.WarehouseID,
		AssignedUserID: q.AssignedUserID,
		Limit:          q.Limit,
		Offset:         q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.PickingWaveResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *toWaveResponse(w))
	}
	return out, nil
}

// Start pasa una wave de "creato" a "in_corso" y la asigna al operador si
// nadie la tenía asignada.
func (uc *WaveUseCase) Start(ctx context.Context, waveID, userID string) (*dto.PickingWaveResponse, error) {
	wave, err := uc.pickingRepo.GetWave(waveID)
	if err != nil {
		return nil, err
	}
	if wave == nil {
		return nil, domain.ErrNotFound
	}
	if wave.Status != entity.WaveStatusCreato {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	wave.Status = entity.WaveStatusInCorso
	wave.StartedAt = &now
	if wave.AssignedUserID == "" {
		wave.AssignedUserID = userID
	}
	if err := uc.pickingRepo.UpdateWave(wave); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.NotifyPickingUpdate(waveID, wave.Status)
	}
	return toWaveResponse(wave), nil
}

// Confirm registra picks sobre las tareas de la wave. Por cada pick: fija
// picked_quantity, marca la tarea "completed" si picked >= requested (si no
// "partial"), sella picked_at/picked_by y descuenta la fila de inventario de
// la ubicación origen recortada a cero. Si la fila de inventario no existe,
// el descuento se omite en silencio. Las tareas que no pertenecen a la wave
// se saltan. La wave se auto-completa cuando no queda ninguna tarea
// "pending"; una tarea "partial" cuenta como hecha a estos efectos.
func (uc *WaveUseCase) Confirm(ctx context.Context, waveID, userID string, picks []dto.PickConfirmLine) (*dto.PickingWaveResponse, error) {
	if len(picks) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var finalStatus string
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		wave, err := r.Picking.GetWaveForUpdate(waveID)
		if err != nil {
			return err
		}
		if wave == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		for _, pick := range picks {
			task, err := r.Picking.GetTask(pick.TaskID)
			if err != nil {
				return err
			}
			if task == nil || task.WaveID != waveID {
				continue
			}

			task.PickedQuantity = pick.PickedQuantity
			if pick.PickedQuantity >= task.RequestedQuantity {
				task.Status = entity.TaskStatusCompleted
			} else {
				task.Status = entity.TaskStatusPartial
			}
			task.PickedAt = &now
			task.PickedBy = userID
			if err := r.Picking.UpdateTask(task); err != nil {
				return err
			}

			inv, err := r.LocationInv.GetForUpdate(task.SourceLocationID, task.ProductID)
			if err != nil {
				return err
			}
			if inv == nil {
				continue
			}
			inv.Quantity -= pick.PickedQuantity
			if inv.Quantity < 0 {
				inv.Quantity = 0
			}
			inv.UpdatedAt = now
			if err := r.LocationInv.Update(inv); err != nil {
				return err
			}
		}

		pending, err := r.Picking.CountPendingTasks(waveID)
		if err != nil {
			return err
		}
		if pending == 0 {
			wave.Status = entity.WaveStatusCompletato
			wave.CompletedAt = &now
			if err := r.Picking.UpdateWave(wave); err != nil {
				return err
			}
		}
		finalStatus = wave.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyPickingUpdate(waveID, finalStatus)
	}
	return uc.GetByID(ctx, waveID)
}

// Delete elimina una wave no completada; las tareas caen por cascade.
func (uc *WaveUseCase) Delete(ctx context.Context, id string) error {
	wave, err := uc.pickingRepo.GetWave(id)
	if err != nil {
		return err
	}
	if wave == nil {
		return domain.ErrNotFound
	}
	if wave.Status == entity.WaveStatusCompletato {
		return domain.ErrConflict
	}
	return uc.pickingRepo.DeleteWave(id)
}

// Document genera el PDF de la lista de prelievo con las líneas ordenadas
// por secuencia y los datos denormalizados de ubicación y producto.
func (uc *WaveUseCase) Document(ctx context.Context, waveID string) ([]byte, error) {
	wave, err := uc.pickingRepo.GetWave(waveID)
	if err != nil {
		return nil, err
	}
	if wave == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]DocumentLine, 0, len(wave.Tasks))
	for _, task := range wave.Tasks {
		line := DocumentLine{
			Sequence:  task.Sequence,
			Requested: task.RequestedQuantity,
		}
		if location, err := uc.warehouseRepo.GetLocation(task.SourceLocationID); err != nil {
			return nil, err
		} else if location != nil {
			line.LocationBarcode = location.Barcode
		}
		if product, err := uc.productRepo.GetByID(task.ProductID); err != nil {
			return nil, err
		} else if product != nil {
			line.ProductSKU = product.SKU
			line.ProductName = product.Name
		}
		lines = append(lines, line)
	}
	return uc.documentGen.GeneratePickingDocument(ctx, wave, lines)
}

func toWaveResponse(w *entity.PickingWave) *dto.PickingWaveResponse {
	out := &dto.PickingWaveResponse{
		ID:             w.ID,
		WaveNumber:     w.WaveNumber,
		WarehouseID:    w.WarehouseID,
		WaveType:       w.WaveType,
		Status:         w.Status,
		Priority:       w.Priority,
		AssignedUserID: w.AssignedUserID,
		StartedAt:      w.StartedAt,
		CompletedAt:    w.CompletedAt,
		Notes:          w.Notes,
		Tasks:          make([]dto.PickingTaskResponse, 0, len(w.Tasks)),
		CreatedAt:      w.CreatedAt,
	}
	for _, t := range w.Tasks {
		out.Tasks = append(out.Tasks, dto.PickingTaskResponse{
			ID:                t.ID,
			OrderID:           t.OrderID,
			ProductID:         t.ProductID,
			SourceLocationID:  t.SourceLocationID,
			RequestedQuantity: t.RequestedQuantity,
			PickedQuantity:    t.PickedQuantity,
			Status:            t.Status,
			Sequence:          t.Sequence,
			PickedAt:          t.PickedAt,
			PickedBy:          t.PickedBy,
		})
	}
	return out
}
