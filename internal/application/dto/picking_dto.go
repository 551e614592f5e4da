package dto

import "time"

// CreateWaveRequest entrada para crear una wave de picking desde ordini.
type CreateWaveRequest struct {
	WarehouseID    string   `json:"warehouse_id"`
	WaveType       string   `json:"wave_type"`
	Priority       int      `json:"priority"`
	AssignedUserID string   `json:"assigned_user_id"`
	Notes          string   `json:"notes"`
	OrderIDs       []string `json:"order_ids"`
}

// PickConfirmLine confirmación de una tarea de picking.
type PickConfirmLine struct {
	TaskID         string `json:"task_id"`
	PickedQuantity int    `json:"picked_quantity"`
}

// ConfirmWaveRequest cuerpo de POST /api/picking/{id}/confirm.
type ConfirmWaveRequest struct {
	Picks []PickConfirmLine `json:"picks"`
}

// PickingTaskResponse tarea en las respuestas.
type PickingTaskResponse struct {
	ID                string     `json:"id"`
	OrderID           string     `json:"order_id,omitempty"`
	ProductID         string     `json:"product_id"`
	SourceLocationID  string     `json:"source_location_id"`
	RequestedQuantity int        `json:"requested_quantity"`
	PickedQuantity    int        `json:"picked_quantity"`
	Status            string     `json:"status"`
	Sequence          int        `json:"sequence"`
	PickedAt          *time.Time `json:"picked_at,omitempty"`
	PickedBy          string     `json:"picked_by,omitempty"`
}

// PickingWaveResponse salida de una wave.
type PickingWaveResponse struct {
	ID             string                `json:"id"`
	WaveNumber     string                `json:"wave_number"`
	WarehouseID    string                `json:"warehouse_id"`
	WaveType       string                `json:"wave_type"`
	Status         string                `json:"status"`
	Priority       int                   `json:"priority"`
	AssignedUserID string                `json:"assigned_user_id,omitempty"`
	StartedAt      *time.Time            `json:"started_at,omitempty"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	Tasks          []PickingTaskResponse `json:"tasks"`
	CreatedAt      time.Time             `json:"created_at"`
}

// WaveListQuery filtros del listado de waves.
type WaveListQuery struct {
	PageRequest
	Status         string `query:"status"`
	WarehouseID    string `query:"warehouse_id"`
	AssignedUserID string `query:"assigned_user_id"`
}
