package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// WaveFilter filtros de listado de waves.
type WaveFilter struct {
	Status         string
	WarehouseID    string
	AssignedUserID string
	Limit          int
	Offset         int
}

// PickingRepository define el puerto de persistencia para waves y tareas.
type PickingRepository interface {
	// CreateWave persiste la wave y sus tareas.
	CreateWave(wave *entity.PickingWave) error
	// GetWave devuelve la wave con sus tareas cargadas.
	GetWave(id string) (*entity.PickingWave, error)
	// GetWaveForUpdate bloquea la fila cabecera de la wave (SELECT FOR UPDATE).
	GetWaveForUpdate(id string) (*entity.PickingWave, error)
	ListWaves(f WaveFilter) ([]*entity.PickingWave, error)
	// UpdateWave actualiza status, timestamps y asignación de la cabecera.
	UpdateWave(wave *entity.PickingWave) error
	// GetTask devuelve una tarea por ID (nil si no existe).
	GetTask(taskID string) (*entity.PickingTask, error)
	UpdateTask(task *entity.PickingTask) error
	// CountPendingTasks cuenta las tareas de la wave en estado "pending".
	CountPendingTasks(waveID string) (int, error)
	DeleteWave(id string) error
}
