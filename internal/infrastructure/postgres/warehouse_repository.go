package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste un magazzino.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO warehouses (id, code, name, address, city, country, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.Code, w.Name, w.Address, w.City, w.Country, w.IsActive, w.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene un magazzino por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), `
		SELECT id, code, name, address, city, country, is_active, created_at
		FROM warehouses WHERE id = $1`, id).Scan(
		&w.ID, &w.Code, &w.Name, &w.Address, &w.City, &w.Country, &w.IsActive, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// List lista magazzini con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, code, name, address, city, country, is_active, created_at
		FROM warehouses ORDER BY code LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Address, &w.City, &w.Country, &w.IsActive, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// CreateZone persiste una zona de magazzino.
func (r *WarehouseRepo) CreateZone(z *entity.WarehouseZone) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO warehouse_zones (id, warehouse_id, code, name, zone_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		z.ID, z.WarehouseID, z.Code, z.Name, z.ZoneType, z.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse zone: %w", err)
	}
	return nil
}

// ListZones lista las zonas de un magazzino.
func (r *WarehouseRepo) ListZones(warehouseID string) ([]*entity.WarehouseZone, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, warehouse_id, code, name, zone_type, is_active
		FROM warehouse_zones WHERE warehouse_id = $1 ORDER BY code`, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list warehouse zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseZone
	for rows.Next() {
		var z entity.WarehouseZone
		if err := rows.Scan(&z.ID, &z.WarehouseID, &z.Code, &z.Name, &z.ZoneType, &z.IsActive); err != nil {
			return nil, fmt.Errorf("scan warehouse zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}

// CreateLocation persiste una ubicación.
func (r *WarehouseRepo) CreateLocation(l *entity.Location) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO locations (id, zone_id, aisle, rack, level, bin, barcode, location_type, is_active, is_blocked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		l.ID, l.ZoneID, l.Aisle, l.Rack, l.Level, l.Bin, l.Barcode, l.LocationType, l.IsActive, l.IsBlocked,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetLocation obtiene una ubicación por ID.
func (r *WarehouseRepo) GetLocation(id string) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(), `
		SELECT id, zone_id, aisle, rack, level, bin, barcode, location_type, is_active, is_blocked
		FROM locations WHERE id = $1`, id).Scan(
		&l.ID, &l.ZoneID, &l.Aisle, &l.Rack, &l.Level, &l.Bin, &l.Barcode, &l.LocationType, &l.IsActive, &l.IsBlocked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListLocations lista ubicaciones, opcionalmente por zona.
func (r *WarehouseRepo) ListLocations(zoneID string, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, zone_id, aisle, rack, level, bin, barcode, location_type, is_active, is_blocked
		FROM locations`
	args := []any{}
	pos := 1
	if zoneID != "" {
		query += fmt.Sprintf(" WHERE zone_id = $%d", pos)
		args = append(args, zoneID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY aisle, rack, level, bin LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.ZoneID, &l.Aisle, &l.Rack, &l.Level, &l.Bin, &l.Barcode,
			&l.LocationType, &l.IsActive, &l.IsBlocked); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
