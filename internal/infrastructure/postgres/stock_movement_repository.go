package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre PostgreSQL.
// El libro es append-only: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste una fila del libro de movimientos.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity, notes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ProductID, m.MovementType, m.Quantity, m.Notes, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List lista el libro de movimientos con filtros, del más reciente al más antiguo.
func (r *StockMovementRepo) List(f repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, notes, user_id, created_at
		FROM stock_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.MovementType != "" {
		query += fmt.Sprintf(" AND movement_type = $%d", pos)
		args = append(args, f.MovementType)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.MovementType, &m.Quantity, &m.Notes, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
