package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de KPIs del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountOrdersByStatus cuenta ordini en cualquiera de los estados dados.
func (r *AnalyticsRepo) CountOrdersByStatus(statuses ...string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE status = ANY($1)`, statuses).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return n, nil
}

// CountShippedSince cuenta ordini "spedito" actualizados desde el instante dado.
func (r *AnalyticsRepo) CountShippedSince(since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE status = $1 AND updated_at >= $2`,
		entity.OrderStatusSpedito, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count shipped since: %w", err)
	}
	return n, nil
}

// CountLowStock cuenta productos con quantity <= min_stock.
func (r *AnalyticsRepo) CountLowStock() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products WHERE quantity <= min_stock AND is_active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// MonthlyRevenue suma quantity*unit_price de ordini spediti o consegnati creados desde el instante dado.
func (r *AnalyticsRepo) MonthlyRevenue(since time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT coalesce(sum(oi.quantity * oi.unit_price), 0)
		FROM orders o JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status IN ($1, $2) AND o.created_at >= $3`,
		entity.OrderStatusSpedito, entity.OrderStatusConsegnato, since).Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monthly revenue: %w", err)
	}
	return revenue, nil
}

// CountProducts cuenta los productos del catálogo.
func (r *AnalyticsRepo) CountProducts() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountCustomers cuenta los clientes registrados.
func (r *AnalyticsRepo) CountCustomers() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// RecentOrders devuelve los ordini más recientes (solo cabeceras).
func (r *AnalyticsRepo) RecentOrders(limit int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, customer_id, user_id, status, notes, created_at, updated_at
		FROM orders ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.UserID, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recent order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
