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

var _ repository.ASNRepository = (*ASNRepo)(nil)

const asnColumns = `id, asn_number, supplier, warehouse_id, status, expected_date,
	arrived_at, completed_at, carrier, tracking_number, notes, user_id, created_at`

// ASNRepo implementación del puerto ASNRepository sobre PostgreSQL (usable con pool o tx).
type ASNRepo struct {
	q Querier
}

// NewASNRepository construye el adaptador. Pasar pool o tx (Querier).
func NewASNRepository(q Querier) *ASNRepo {
	return &ASNRepo{q: q}
}

// Create persiste el ASN y sus líneas.
func (r *ASNRepo) Create(asn *entity.ASN) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO asns (id, asn_number, supplier, warehouse_id, status, expected_date,
			arrived_at, completed_at, carrier, tracking_number, notes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		asn.ID, asn.ASNNumber, asn.Supplier, asn.WarehouseID, asn.Status, asn.ExpectedDate,
		asn.ArrivedAt, asn.CompletedAt, asn.Carrier, asn.TrackingNumber, asn.Notes, asn.UserID, asn.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asn: %w", err)
	}
	for _, item := range asn.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO asn_items (id, asn_id, product_id, expected_quantity, received_quantity,
				lot_number, target_location_id, unit_price, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			item.ID, item.ASNID, item.ProductID, item.ExpectedQuantity, item.ReceivedQuantity,
			item.LotNumber, nullIfEmpty(item.TargetLocationID), item.UnitPrice, item.Status,
		)
		if err != nil {
			return fmt.Errorf("insert asn item: %w", err)
		}
	}
	return nil
}

func (r *ASNRepo) scanHeader(row pgx.Row) (*entity.ASN, error) {
	var a entity.ASN
	err := row.Scan(
		&a.ID, &a.ASNNumber, &a.Supplier, &a.WarehouseID, &a.Status, &a.ExpectedDate,
		&a.ArrivedAt, &a.CompletedAt, &a.Carrier, &a.TrackingNumber, &a.Notes, &a.UserID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *ASNRepo) getBy(query, id string) (*entity.ASN, error) {
	a, err := r.scanHeader(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get asn: %w", err)
	}
	if a == nil {
		return nil, nil
	}
	items, err := r.loadItems(a.ID)
	if err != nil {
		return nil, err
	}
	a.Items = items
	return a, nil
}

// GetByID devuelve el ASN con sus líneas cargadas.
func (r *ASNRepo) GetByID(id string) (*entity.ASN, error) {
	return r.getBy(`SELECT `+asnColumns+` FROM asns WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila cabecera del ASN dentro de la transacción.
func (r *ASNRepo) GetForUpdate(id string) (*entity.ASN, error) {
	return r.getBy(`SELECT `+asnColumns+` FROM asns WHERE id = $1 FOR UPDATE`, id)
}

func (r *ASNRepo) loadItems(asnID string) ([]entity.ASNItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, asn_id, product_id, expected_quantity, received_quantity,
			lot_number, target_location_id, unit_price, status
		FROM asn_items WHERE asn_id = $1 ORDER BY id`, asnID)
	if err != nil {
		return nil, fmt.Errorf("list asn items: %w", err)
	}
	defer rows.Close()
	var items []entity.ASNItem
	for rows.Next() {
		var it entity.ASNItem
		var targetLocationID *string
		if err := rows.Scan(&it.ID, &it.ASNID, &it.ProductID, &it.ExpectedQuantity, &it.ReceivedQuantity,
			&it.LotNumber, &targetLocationID, &it.UnitPrice, &it.Status); err != nil {
			return nil, fmt.Errorf("scan asn item: %w", err)
		}
		if targetLocationID != nil {
			it.TargetLocationID = *targetLocationID
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista ASN con filtros de estado y magazzino.
func (r *ASNRepo) List(f repository.ASNFilter) ([]*entity.ASN, error) {
	query := `SELECT ` + asnColumns + ` FROM asns WHERE 1=1`
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
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list asns: %w", err)
	}
	defer rows.Close()
	var list []*entity.ASN
	for rows.Next() {
		a, err := r.scanHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asn: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, a := range list {
		items, err := r.loadItems(a.ID)
		if err != nil {
			return nil, err
		}
		a.Items = items
	}
	return list, nil
}

// UpdateHeader actualiza status, arrived_at y completed_at de la cabecera.
func (r *ASNRepo) UpdateHeader(asn *entity.ASN) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE asns SET status = $2, arrived_at = $3, completed_at = $4 WHERE id = $1`,
		asn.ID, asn.Status, asn.ArrivedAt, asn.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update asn header: %w", err)
	}
	return nil
}

// GetItem devuelve una línea por ID (nil si no existe).
func (r *ASNRepo) GetItem(itemID string) (*entity.ASNItem, error) {
	var it entity.ASNItem
	var targetLocationID *string
	err := r.q.QueryRow(context.Background(), `
		SELECT id, asn_id, product_id, expected_quantity, received_quantity,
			lot_number, target_location_id, unit_price, status
		FROM asn_items WHERE id = $1`, itemID).Scan(
		&it.ID, &it.ASNID, &it.ProductID, &it.ExpectedQuantity, &it.ReceivedQuantity,
		&it.LotNumber, &targetLocationID, &it.UnitPrice, &it.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asn item: %w", err)
	}
	if targetLocationID != nil {
		it.TargetLocationID = *targetLocationID
	}
	return &it, nil
}

// UpdateItem actualiza received_quantity y status de una línea.
func (r *ASNRepo) UpdateItem(item *entity.ASNItem) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE asn_items SET received_quantity = $2, status = $3 WHERE id = $1`,
		item.ID, item.ReceivedQuantity, item.Status,
	)
	if err != nil {
		return fmt.Errorf("update asn item: %w", err)
	}
	return nil
}

// CountItemsNotReceived cuenta las líneas cuyo estado no es "ricevuto".
func (r *ASNRepo) CountItemsNotReceived(asnID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM asn_items WHERE asn_id = $1 AND status <> $2`,
		asnID, entity.ASNItemStatusRicevuto,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count asn items not received: %w", err)
	}
	return n, nil
}

// Delete elimina el ASN; las líneas caen por cascade.
func (r *ASNRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM asns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asn: %w", err)
	}
	return nil
}
