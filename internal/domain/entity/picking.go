package entity

import "time"

// Estados de una wave de picking.
const (
	WaveStatusCreato     = "creato"
	WaveStatusInCorso    = "in_corso"
	WaveStatusCompletato = "completato"
	WaveStatusAnnullato  = "annullato"
)

// Estados de una tarea de picking.
const (
	TaskStatusPending   = "pending"
	TaskStatusPartial   = "partial"
	TaskStatusCompleted = "completed"
)

// PickingWave agrupa tareas de picking liberadas juntas.
type PickingWave struct {
	ID             string
	WaveNumber     string // único, formato WAVE-YYYYMMDD-XXXXXX
	WarehouseID    string
	WaveType       string // single, batch, zone
	Status         string
	Priority       int
	AssignedUserID string
	StartedAt      *time.Time
	CompletedAt    *time.Time
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time

	Tasks []PickingTask
}

// PickingTask es una tarea de prelievo desde una ubicación origen.
// Confirmar el pick descuenta LocationInventory (recortado a cero).
type PickingTask struct {
	ID                string
	WaveID            string
	OrderID           string
	ProductID         string
	SourceLocationID  string
	LotID             string
	RequestedQuantity int
	PickedQuantity    int
	Status            string
	Sequence          int
	PickedAt          *time.Time
	PickedBy          string
}
