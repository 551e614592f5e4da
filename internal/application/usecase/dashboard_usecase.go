package usecase

import (
	"context"
	"time"

	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// DashboardUseCase calcula los KPIs del panel de forma síncrona.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo}
}

// Stats devuelve los KPIs: ordini pendientes, spedizioni del día, productos
// bajo mínimo, fatturato del mes y totales de catálogo.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	pending, err := uc.analyticsRepo.CountOrdersByStatus(entity.OrderStatusInLavorazione, entity.OrderStatusInPreparazione, entity.OrderStatusPronto)
	if err != nil {
		return nil, err
	}
	shipped, err := uc.analyticsRepo.CountShippedSince(startOfDay)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analyticsRepo.CountLowStock()
	if err != nil {
		return nil, err
	}
	revenue, err := uc.analyticsRepo.MonthlyRevenue(startOfMonth)
	if err != nil {
		return nil, err
	}
	products, err := uc.analyticsRepo.CountProducts()
	if err != nil {
		return nil, err
	}
	customers, err := uc.analyticsRepo.CountCustomers()
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		PendingOrders:    pending,
		DailyShipments:   shipped,
		LowStockProducts: lowStock,
		MonthlyRevenue:   revenue,
		TotalProducts:    products,
		TotalCustomers:   customers,
	}, nil
}

// LowStock devuelve los productos en o por debajo del stock mínimo.
func (uc *DashboardUseCase) LowStock(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	list, err := uc.productRepo.LowStock(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// RecentOrders devuelve los ordini más recientes para el panel.
func (uc *DashboardUseCase) RecentOrders(ctx context.Context, limit int) ([]dto.RecentOrder, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	list, err := uc.analyticsRepo.RecentOrders(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecentOrder, 0, len(list))
	for _, o := range list {
		out = append(out, dto.RecentOrder{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		})
	}
	return out, nil
}
