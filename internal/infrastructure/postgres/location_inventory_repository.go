package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.LocationInventoryRepository = (*LocationInventoryRepo)(nil)

// LocationInventoryRepo implementación del puerto LocationInventoryRepository sobre PostgreSQL.
type LocationInventoryRepo struct {
	q Querier
}

// NewLocationInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationInventoryRepository(q Querier) *LocationInventoryRepo {
	return &LocationInventoryRepo{q: q}
}

func scanLocationInventory(row pgx.Row) (*entity.LocationInventory, error) {
	var inv entity.LocationInventory
	var lotID *string
	err := row.Scan(&inv.ID, &inv.LocationID, &inv.ProductID, &lotID,
		&inv.Quantity, &inv.ReservedQuantity, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if lotID != nil {
		inv.LotID = *lotID
	}
	return &inv, nil
}

// Get devuelve la fila (location, product) sin considerar lote; nil si no existe.
func (r *LocationInventoryRepo) Get(locationID, productID string) (*entity.LocationInventory, error) {
	inv, err := scanLocationInventory(r.q.QueryRow(context.Background(), `
		SELECT id, location_id, product_id, lot_id, quantity, reserved_quantity, updated_at
		FROM location_inventory WHERE location_id = $1 AND product_id = $2
		ORDER BY quantity DESC LIMIT 1`, locationID, productID))
	if err != nil {
		return nil, fmt.Errorf("get location inventory: %w", err)
	}
	return inv, nil
}

// GetForUpdate bloquea la fila para update; nil si no existe.
func (r *LocationInventoryRepo) GetForUpdate(locationID, productID string) (*entity.LocationInventory, error) {
	inv, err := scanLocationInventory(r.q.QueryRow(context.Background(), `
		SELECT id, location_id, product_id, lot_id, quantity, reserved_quantity, updated_at
		FROM location_inventory WHERE location_id = $1 AND product_id = $2
		ORDER BY quantity DESC LIMIT 1 FOR UPDATE`, locationID, productID))
	if err != nil {
		return nil, fmt.Errorf("get location inventory for update: %w", err)
	}
	return inv, nil
}

// Upsert inserta o incrementa la cantidad de la fila (location, product).
// lot_id es nullable, así que un índice único sobre (location, product, lot)
// no sirve como target de ON CONFLICT para filas sin lote; en su lugar se
// bloquea la fila existente y se incrementa. Llamar siempre dentro de una tx.
func (r *LocationInventoryRepo) Upsert(inv *entity.LocationInventory) error {
	existing, err := r.GetForUpdate(inv.LocationID, inv.ProductID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Quantity += inv.Quantity
		existing.UpdatedAt = inv.UpdatedAt
		return r.Update(existing)
	}
	_, err = r.q.Exec(context.Background(), `
		INSERT INTO location_inventory (id, location_id, product_id, lot_id, quantity, reserved_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inv.ID, inv.LocationID, inv.ProductID, nullIfEmpty(inv.LotID),
		inv.Quantity, inv.ReservedQuantity, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert location inventory: %w", err)
	}
	return nil
}

// Update sobreescribe quantity y reserved_quantity de una fila existente.
func (r *LocationInventoryRepo) Update(inv *entity.LocationInventory) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE location_inventory SET quantity = $2, reserved_quantity = $3, updated_at = $4
		WHERE id = $1`,
		inv.ID, inv.Quantity, inv.ReservedQuantity, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location inventory: %w", err)
	}
	return nil
}

// FindPickLocation devuelve la ubicación con más stock disponible del producto.
func (r *LocationInventoryRepo) FindPickLocation(productID string) (*entity.LocationInventory, error) {
	inv, err := scanLocationInventory(r.q.QueryRow(context.Background(), `
		SELECT li.id, li.location_id, li.product_id, li.lot_id, li.quantity, li.reserved_quantity, li.updated_at
		FROM location_inventory li
		JOIN locations l ON l.id = li.location_id
		WHERE li.product_id = $1 AND li.quantity > 0 AND l.is_active AND NOT l.is_blocked
		ORDER BY li.quantity DESC LIMIT 1`, productID))
	if err != nil {
		return nil, fmt.Errorf("find pick location: %w", err)
	}
	return inv, nil
}

// ListByLocation devuelve las filas de inventario de una ubicación.
func (r *LocationInventoryRepo) ListByLocation(locationID string) ([]*entity.LocationInventory, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, location_id, product_id, lot_id, quantity, reserved_quantity, updated_at
		FROM location_inventory WHERE location_id = $1 ORDER BY product_id`, locationID)
	if err != nil {
		return nil, fmt.Errorf("list location inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.LocationInventory
	for rows.Next() {
		inv, err := scanLocationInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Report devuelve el inventario por ubicación denormalizado para el export.
func (r *LocationInventoryRepo) Report() ([]repository.LocationInventoryRow, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT l.barcode, l.aisle, l.rack, l.level, l.bin,
			p.sku, p.name, coalesce(lt.lot_number, ''), li.quantity, li.reserved_quantity
		FROM location_inventory li
		JOIN locations l ON l.id = li.location_id
		JOIN products p ON p.id = li.product_id
		LEFT JOIN lots lt ON lt.id = li.lot_id
		ORDER BY l.aisle, l.rack, l.level, l.bin, p.sku`)
	if err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	defer rows.Close()
	var list []repository.LocationInventoryRow
	for rows.Next() {
		var row repository.LocationInventoryRow
		if err := rows.Scan(&row.LocationBarcode, &row.Aisle, &row.Rack, &row.Level, &row.Bin,
			&row.ProductSKU, &row.ProductName, &row.LotNumber, &row.Quantity, &row.Reserved); err != nil {
			return nil, fmt.Errorf("scan inventory report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
