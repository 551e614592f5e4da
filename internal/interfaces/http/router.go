package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpcastillo/warehouse-api/internal/application/auth"
	"github.com/jpcastillo/warehouse-api/internal/application/inbound"
	"github.com/jpcastillo/warehouse-api/internal/application/orders"
	"github.com/jpcastillo/warehouse-api/internal/application/picking"
	"github.com/jpcastillo/warehouse-api/internal/application/stock"
	"github.com/jpcastillo/warehouse-api/internal/application/supplier"
	"github.com/jpcastillo/warehouse-api/internal/application/usecase"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	CustomerUC      *usecase.CustomerUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	LotUC           *usecase.LotUseCase
	DashboardUC     *usecase.DashboardUseCase
	OrderUC         *orders.OrderUseCase
	SupplierOrderUC *supplier.SupplierOrderUseCase
	ASNUC           *inbound.ASNUseCase
	WaveUC          *picking.WaveUseCase
	StockUC         *stock.StockUseCase
	Hub             *ws.Hub
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, el resto protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Gestión de usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)

	manageStock := RequireRole(entity.RoleAdmin, entity.RoleResponsabile, entity.RoleMagazziniere)
	manageSales := RequireRole(entity.RoleAdmin, entity.RoleResponsabile, entity.RoleCommerciale)
	manage := RequireRole(entity.RoleAdmin, entity.RoleResponsabile)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", manage, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/lookup/:code", productHandler.Lookup)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", manage, productHandler.Update)
	products.Delete("/:id", manage, productHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", manageSales, customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", manageSales, customerHandler.Update)
	customers.Delete("/:id", manage, customerHandler.Delete)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", manageSales, orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", manageStock, orderHandler.SetStatus)
	ordersGroup.Delete("/:id", manage, orderHandler.Delete)

	// Supplier orders (protegido)
	supplierOrders := protected.Group("/supplier-orders")
	supplierOrderHandler := NewSupplierOrderHandler(deps.SupplierOrderUC)
	supplierOrders.Post("/", manage, supplierOrderHandler.Create)
	supplierOrders.Get("/", supplierOrderHandler.List)
	supplierOrders.Get("/:id", supplierOrderHandler.GetByID)
	supplierOrders.Patch("/:id/status", manageStock, supplierOrderHandler.SetStatus)
	supplierOrders.Delete("/:id", manage, supplierOrderHandler.Delete)

	// ASN entranti (protegido)
	asn := protected.Group("/asn")
	asnHandler := NewASNHandler(deps.ASNUC)
	asn.Post("/", manageStock, asnHandler.Create)
	asn.Get("/", asnHandler.List)
	asn.Get("/:id", asnHandler.GetByID)
	asn.Patch("/:id/status", manageStock, asnHandler.SetStatus)
	asn.Post("/:id/receive", manageStock, asnHandler.Receive)
	asn.Delete("/:id", manage, asnHandler.Delete)

	// Picking waves (protegido)
	pickingGroup := protected.Group("/picking")
	pickingHandler := NewPickingHandler(deps.WaveUC)
	pickingGroup.Post("/", manageStock, pickingHandler.Create)
	pickingGroup.Get("/", pickingHandler.List)
	pickingGroup.Get("/:id", pickingHandler.GetByID)
	pickingGroup.Post("/:id/start", manageStock, pickingHandler.Start)
	pickingGroup.Post("/:id/confirm", manageStock, pickingHandler.Confirm)
	pickingGroup.Get("/:id/document", pickingHandler.Document)
	pickingGroup.Delete("/:id", manage, pickingHandler.Delete)

	// Warehouses, zones, locations (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", manage, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/:id/zones", manage, warehouseHandler.CreateZone)
	warehouses.Get("/:id/zones", warehouseHandler.ListZones)

	locations := protected.Group("/locations")
	locations.Post("/", manage, warehouseHandler.CreateLocation)
	locations.Get("/", warehouseHandler.ListLocations)
	locations.Get("/:id/inventory", warehouseHandler.LocationInventory)

	// Lots (protegido)
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC)
	lots.Post("/", manageStock, lotHandler.Create)
	lots.Get("/", lotHandler.List)
	lots.Get("/:id", lotHandler.GetByID)

	// Stock movements e inventario (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/movements", manageStock, stockHandler.CreateMovement)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	protected.Get("/inventory/export", stockHandler.ExportInventory)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/recent-orders", dashboardHandler.RecentOrders)

	// WebSocket (notificaciones en tiempo real por canal)
	app.Use("/ws/:channel", ws.UpgradeRequired)
	app.Get("/ws/:channel", ws.Handler(deps.Hub))
}
