package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.PickingRepository = (*PickingRepo)(nil)

const waveColumns = `id, wave_number, warehouse_id, wave_type, status, priority,
	assigned_user_id, started_at, completed_at, notes, created_by, created_at`

// PickingRepo implementación del puerto PickingRepository sobre PostgreSQL (usable con pool o tx).
type PickingRepo struct {
	q Querier
}

// NewPickingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPickingRepository(q Querier) *PickingRepo {
	return &PickingRepo{q: q}
}

// CreateWave persiste la wave y sus tareas.
func (r *PickingRepo) CreateWave(wave *entity.PickingWave) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO picking_waves (id, wave_number, warehouse_id, wave_type, status, priority,
			assigned_user_id, started_at, completed_at, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		wave.ID, wave.WaveNumber, wave.WarehouseID, wave.WaveType, wave.Status, wave.Priority,
		nullIfEmpty(wave.AssignedUserID), wave.StartedAt, wave.CompletedAt, wave.Notes, wave.CreatedBy, wave.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert picking wave: %w", err)
	}
	for _, task := range wave.Tasks {
		_, err := r.q.Exec(ctx, `
			INSERT INTO picking_tasks (id, wave_id, order_id, product_id, source_location_id, lot_id,
				requested_quantity, picked_quantity, status, sequence, picked_at, picked_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			task.ID, task.WaveID, nullIfEmpty(task.OrderID), task.ProductID, task.SourceLocationID,
			nullIfEmpty(task.LotID), task.RequestedQuantity, task.PickedQuantity, task.Status,
			task.Sequence, task.PickedAt, nullIfEmpty(task.PickedBy),
		)
		if err != nil {
			return fmt.Errorf("insert picking task: %w", err)
		}
	}
	return nil
}

func (r *PickingRepo) scanWave(row pgx.Row) (*entity.PickingWave, error) {
	var w entity.PickingWave
	var assignedUserID *string
	err := row.Scan(
		&w.ID, &w.WaveNumber, &w.WarehouseID, &w.WaveType, &w.Status, &w.Priority,
		&assignedUserID, &w.StartedAt, &w.CompletedAt, &w.Notes, &w.CreatedBy, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if assignedUserID != nil {
		w.AssignedUserID = *assignedUserID
	}
	return &w, nil
}

func (r *PickingRepo) getBy(query, id string) (*entity.PickingWave, error) {
	w, err := r.scanWave(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get picking wave: %w", err)
	}
	if w == nil {
		return nil, nil
	}
	tasks, err := r.loadTasks(w.ID)
	if err != nil {
		return nil, err
	}
	w.Tasks = tasks
	return w, nil
}

// GetWave devuelve la wave con sus tareas cargadas.
func (r *PickingRepo) GetWave(id string) (*entity.PickingWave, error) {
	return r.getBy(`SELECT `+waveColumns+` FROM picking_waves WHERE id = $1`, id)
}

// GetWaveForUpdate bloquea la fila cabecera de la wave dentro de la transacción.
func (r *PickingRepo) GetWaveForUpdate(id string) (*entity.PickingWave, error) {
	return r.getBy(`SELECT `+waveColumns+` FROM picking_waves WHERE id = $1 FOR UPDATE`, id)
}

func (r *PickingRepo) loadTasks(waveID string) ([]entity.PickingTask, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, wave_id, order_id, product_id, source_location_id, lot_id,
			requested_quantity, picked_quantity, status, sequence, picked_at, picked_by
		FROM picking_tasks WHERE wave_id = $1 ORDER BY sequence`, waveID)
	if err != nil {
		return nil, fmt.Errorf("list picking tasks: %w", err)
	}
	defer rows.Close()
	var tasks []entity.PickingTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func scanTask(row pgx.Row) (*entity.PickingTask, error) {
	var t entity.PickingTask
	var orderID, lotID, pickedBy *string
	err := row.Scan(
		&t.ID, &t.WaveID, &orderID, &t.ProductID, &t.SourceLocationID, &lotID,
		&t.RequestedQuantity, &t.PickedQuantity, &t.Status, &t.Sequence, &t.PickedAt, &pickedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("scan picking task: %w", err)
	}
	if orderID != nil {
		t.OrderID = *orderID
	}
	if lotID != nil {
		t.LotID = *lotID
	}
	if pickedBy != nil {
		t.PickedBy = *pickedBy
	}
	return &t, nil
}

// ListWaves lista waves con filtros.
func (r *PickingRepo) ListWaves(f repository.WaveFilter) ([]*entity.PickingWave, error) {
	query := `SELECT ` + waveColumns + ` FROM picking_waves WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, f.WarehouseID)
		pos++
	}
	if f.AssignedUserID != "" {
		query += fmt.Sprintf(" AND assigned_user_id = $%d", pos)
		args = append(args, f.AssignedUserID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY priority DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list picking waves: %w", err)
	}
	defer rows.Close()
	var list []*entity.PickingWave
	for rows.Next() {
		w, err := r.scanWave(rows)
		if err != nil {
			return nil, fmt.Errorf("scan picking wave: %w", err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, w := range list {
		tasks, err := r.loadTasks(w.ID)
		if err != nil {
			return nil, err
		}
		w.Tasks = tasks
	}
	return list, nil
}

// UpdateWave actualiza status, timestamps y asignación de la cabecera.
func (r *PickingRepo) UpdateWave(wave *entity.PickingWave) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE picking_waves SET status = $2, assigned_user_id = $3, started_at = $4, completed_at = $5
		WHERE id = $1`,
		wave.ID, wave.Status, nullIfEmpty(wave.AssignedUserID), wave.StartedAt, wave.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update picking wave: %w", err)
	}
	return nil
}

// GetTask devuelve una tarea por ID (nil si no existe).
func (r *PickingRepo) GetTask(taskID string) (*entity.PickingTask, error) {
	row := r.q.QueryRow(context.Background(), `
		SELECT id, wave_id, order_id, product_id, source_location_id, lot_id,
			requested_quantity, picked_quantity, status, sequence, picked_at, picked_by
		FROM picking_tasks WHERE id = $1`, taskID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// UpdateTask actualiza picked_quantity, status y sello del pick.
func (r *PickingRepo) UpdateTask(task *entity.PickingTask) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE picking_tasks SET picked_quantity = $2, status = $3, picked_at = $4, picked_by = $5
		WHERE id = $1`,
		task.ID, task.PickedQuantity, task.Status, task.PickedAt, nullIfEmpty(task.PickedBy),
	)
	if err != nil {
		return fmt.Errorf("update picking task: %w", err)
	}
	return nil
}

// CountPendingTasks cuenta las tareas de la wave en estado "pending".
func (r *PickingRepo) CountPendingTasks(waveID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM picking_tasks WHERE wave_id = $1 AND status = $2`,
		waveID, entity.TaskStatusPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending tasks: %w", err)
	}
	return n, nil
}

// DeleteWave elimina la wave; las tareas caen por cascade.
func (r *PickingRepo) DeleteWave(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM picking_waves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete picking wave: %w", err)
	}
	return nil
}
