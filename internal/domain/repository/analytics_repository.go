package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
)

// AnalyticsRepository agrupa las consultas read-only de KPIs del dashboard.
// Todas corren de forma síncrona dentro del request.
type AnalyticsRepository interface {
	// CountOrdersByStatus cuenta ordini en cualquiera de los estados dados.
	CountOrdersByStatus(statuses ...string) (int, error)
	// CountShippedSince cuenta ordini "spedito" actualizados desde el instante dado.
	CountShippedSince(since time.Time) (int, error)
	// CountLowStock cuenta productos con quantity <= min_stock.
	CountLowStock() (int, error)
	// MonthlyRevenue suma quantity*unit_price de ordini spediti/consegnati creados desde el instante dado.
	MonthlyRevenue(since time.Time) (decimal.Decimal, error)
	CountProducts() (int, error)
	CountCustomers() (int, error)
	RecentOrders(limit int) ([]*entity.Order, error)
}
