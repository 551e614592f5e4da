package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpcastillo/warehouse-api/internal/application/inbound"
	"github.com/jpcastillo/warehouse-api/internal/application/orders"
	"github.com/jpcastillo/warehouse-api/internal/application/picking"
	"github.com/jpcastillo/warehouse-api/internal/application/stock"
	"github.com/jpcastillo/warehouse-api/internal/application/supplier"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// Un solo runner sirve a todos los casos de uso transaccionales.
var (
	_ orders.TxRunner   = (*TxRunner)(nil)
	_ inbound.TxRunner  = (*TxRunner)(nil)
	_ picking.TxRunner  = (*TxRunner)(nil)
	_ supplier.TxRunner = (*TxRunner)(nil)
	_ stock.TxRunner    = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback según el resultado.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.TxRepos{
		Orders:         NewOrderRepository(tx),
		SupplierOrders: NewSupplierOrderRepository(tx),
		ASNs:           NewASNRepository(tx),
		Picking:        NewPickingRepository(tx),
		Products:       NewProductRepository(tx),
		Movements:      NewStockMovementRepository(tx),
		Lots:           NewLotRepository(tx),
		LocationInv:    NewLocationInventoryRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
