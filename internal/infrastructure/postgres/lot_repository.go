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

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, product_id, lot_number, production_date, expiry_date, supplier_lot, status, notes, created_at`

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(&l.ID, &l.ProductID, &l.LotNumber, &l.ProductionDate, &l.ExpiryDate,
		&l.SupplierLot, &l.Status, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// Create persiste un lote.
func (r *LotRepo) Create(lot *entity.Lot) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO lots (id, product_id, lot_number, production_date, expiry_date, supplier_lot, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		lot.ID, lot.ProductID, lot.LotNumber, lot.ProductionDate, lot.ExpiryDate,
		lot.SupplierLot, lot.Status, lot.Notes, lot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	l, err := scanLot(r.q.QueryRow(context.Background(),
		`SELECT `+lotColumns+` FROM lots WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return l, nil
}

// GetByProductAndNumber busca por la clave natural (product_id, lot_number); nil si no existe.
func (r *LotRepo) GetByProductAndNumber(productID, lotNumber string) (*entity.Lot, error) {
	l, err := scanLot(r.q.QueryRow(context.Background(),
		`SELECT `+lotColumns+` FROM lots WHERE product_id = $1 AND lot_number = $2`, productID, lotNumber))
	if err != nil {
		return nil, fmt.Errorf("get lot by product and number: %w", err)
	}
	return l, nil
}

// List lista lotes con filtros de producto y estado.
func (r *LotRepo) List(f repository.LotFilter) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE 1=1`
	args := []any{}
	pos := 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
