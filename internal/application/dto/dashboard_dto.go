package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats KPIs del dashboard; todos calculados de forma síncrona.
type DashboardStats struct {
	PendingOrders    int             `json:"pending_orders"`
	DailyShipments   int             `json:"daily_shipments"`
	LowStockProducts int             `json:"low_stock_products"`
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"`
	TotalProducts    int             `json:"total_products"`
	TotalCustomers   int             `json:"total_customers"`
}

// RecentOrder resumen de un ordine reciente.
type RecentOrder struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
