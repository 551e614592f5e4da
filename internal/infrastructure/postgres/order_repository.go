package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el ordine y sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, customer_id, address_id, user_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.CustomerID, nullIfEmpty(order.AddressID), order.UserID,
		order.Status, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range order.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) getBy(query string, id string) (*entity.Order, error) {
	var o entity.Order
	var addressID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &addressID, &o.UserID, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if addressID != nil {
		o.AddressID = *addressID
	}
	items, err := r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// GetByID devuelve el ordine con sus líneas cargadas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getBy(`
		SELECT id, customer_id, address_id, user_id, status, notes, created_at, updated_at
		FROM orders WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del ordine dentro de la transacción.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return r.getBy(`
		SELECT id, customer_id, address_id, user_id, status, notes, created_at, updated_at
		FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) loadItems(orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista ordini con filtros; las líneas se cargan por cada cabecera.
func (r *OrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, address_id, user_id, status, notes, created_at, updated_at
		FROM orders WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.CustomerID != "" {
		query += fmt.Sprintf(" AND customer_id = $%d", pos)
		args = append(args, f.CustomerID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var addressID *string
		if err := rows.Scan(&o.ID, &o.CustomerID, &addressID, &o.UserID, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if addressID != nil {
			o.AddressID = *addressID
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

// UpdateStatus actualiza solo el estado del ordine.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Delete elimina el ordine; las líneas caen por cascade.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
