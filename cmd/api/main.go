package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jpcastillo/warehouse-api/internal/application/auth"
	"github.com/jpcastillo/warehouse-api/internal/application/inbound"
	"github.com/jpcastillo/warehouse-api/internal/application/orders"
	"github.com/jpcastillo/warehouse-api/internal/application/picking"
	"github.com/jpcastillo/warehouse-api/internal/application/stock"
	"github.com/jpcastillo/warehouse-api/internal/application/supplier"
	"github.com/jpcastillo/warehouse-api/internal/application/usecase"
	infraexcel "github.com/jpcastillo/warehouse-api/internal/infrastructure/excel"
	infrapdf "github.com/jpcastillo/warehouse-api/internal/infrastructure/pdf"
	"github.com/jpcastillo/warehouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/jpcastillo/warehouse-api/internal/interfaces/http"
	"github.com/jpcastillo/warehouse-api/internal/interfaces/ws"
	"github.com/jpcastillo/warehouse-api/pkg/config"
	"github.com/jpcastillo/warehouse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	supplierOrderRepo := postgres.NewSupplierOrderRepository(pool)
	asnRepo := postgres.NewASNRepository(pool)
	pickingRepo := postgres.NewPickingRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	locInvRepo := postgres.NewLocationInventoryRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Hub de WebSocket: fan-out de eventos a los canales suscritos
	hub := ws.NewHub(log.With().Str("component", "ws").Logger())

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	inventoryExporter := infraexcel.NewInventoryExporter()

	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locInvRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, productRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, productRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, productRepo, customerRepo, hub)
	supplierOrderUC := supplier.NewSupplierOrderUseCase(txRunner, supplierOrderRepo, productRepo, hub)
	asnUC := inbound.NewASNUseCase(txRunner, asnRepo, productRepo, warehouseRepo, hub)
	waveUC := picking.NewWaveUseCase(txRunner, pickingRepo, orderRepo, productRepo, warehouseRepo, locInvRepo, pdfGenerator, hub)
	stockUC := stock.NewStockUseCase(txRunner, movementRepo, locInvRepo, inventoryExporter, hub)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Warehouse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		CustomerUC:      customerUC,
		WarehouseUC:     warehouseUC,
		LotUC:           lotUC,
		DashboardUC:     dashboardUC,
		OrderUC:         orderUC,
		SupplierOrderUC: supplierOrderUC,
		ASNUC:           asnUC,
		WaveUC:          waveUC,
		StockUC:         stockUC,
		Hub:             hub,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
