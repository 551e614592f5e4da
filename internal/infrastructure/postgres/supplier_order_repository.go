package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.SupplierOrderRepository = (*SupplierOrderRepo)(nil)

// SupplierOrderRepo implementación del puerto SupplierOrderRepository sobre PostgreSQL.
type SupplierOrderRepo struct {
	q Querier
}

// NewSupplierOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierOrderRepository(q Querier) *SupplierOrderRepo {
	return &SupplierOrderRepo{q: q}
}

// Create persiste el ordine fornitore y sus líneas.
func (r *SupplierOrderRepo) Create(order *entity.SupplierOrder) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO supplier_orders (id, supplier, status, notes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.Supplier, order.Status, order.Notes, order.UserID, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier order: %w", err)
	}
	for _, item := range order.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO supplier_order_items (id, order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert supplier order item: %w", err)
		}
	}
	return nil
}

func (r *SupplierOrderRepo) getBy(query string, id string) (*entity.SupplierOrder, error) {
	var o entity.SupplierOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Supplier, &o.Status, &o.Notes, &o.UserID, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier order: %w", err)
	}
	items, err := r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// GetByID devuelve el ordine fornitore con sus líneas.
func (r *SupplierOrderRepo) GetByID(id string) (*entity.SupplierOrder, error) {
	return r.getBy(`
		SELECT id, supplier, status, notes, user_id, created_at
		FROM supplier_orders WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del ordine fornitore dentro de la transacción.
func (r *SupplierOrderRepo) GetForUpdate(id string) (*entity.SupplierOrder, error) {
	return r.getBy(`
		SELECT id, supplier, status, notes, user_id, created_at
		FROM supplier_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *SupplierOrderRepo) loadItems(orderID string) ([]entity.SupplierOrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM supplier_order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list supplier order items: %w", err)
	}
	defer rows.Close()
	var items []entity.SupplierOrderItem
	for rows.Next() {
		var it entity.SupplierOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan supplier order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista ordini fornitore con filtro de estado.
func (r *SupplierOrderRepo) List(f repository.SupplierOrderFilter) ([]*entity.SupplierOrder, error) {
	query := `SELECT id, supplier, status, notes, user_id, created_at FROM supplier_orders WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supplier orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierOrder
	for rows.Next() {
		var o entity.SupplierOrder
		if err := rows.Scan(&o.ID, &o.Supplier, &o.Status, &o.Notes, &o.UserID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.loadItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateStatus actualiza solo el estado del ordine fornitore.
func (r *SupplierOrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE supplier_orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update supplier order status: %w", err)
	}
	return nil
}

// Delete elimina el ordine fornitore; las líneas caen por cascade.
func (r *SupplierOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM supplier_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier order: %w", err)
	}
	return nil
}
