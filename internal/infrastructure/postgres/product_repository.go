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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, barcode, name, description, category, subcategory, supplier,
	purchase_price, sale_price, quantity, min_stock, max_stock, reorder_point, reorder_quantity,
	weight_kg, width_cm, height_cm, depth_cm, lot_tracking, serial_tracking, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Barcode, &p.Name, &p.Description, &p.Category, &p.Subcategory, &p.Supplier,
		&p.PurchasePrice, &p.SalePrice, &p.Quantity, &p.MinStock, &p.MaxStock, &p.ReorderPoint, &p.ReorderQuantity,
		&p.WeightKg, &p.WidthCm, &p.HeightCm, &p.DepthCm, &p.LotTracking, &p.SerialTracking, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, barcode, name, description, category, subcategory, supplier,
			purchase_price, sale_price, quantity, min_stock, max_stock, reorder_point, reorder_quantity,
			weight_kg, width_cm, height_cm, depth_cm, lot_tracking, serial_tracking, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Barcode, product.Name, product.Description,
		product.Category, product.Subcategory, product.Supplier,
		product.PurchasePrice, product.SalePrice, product.Quantity,
		product.MinStock, product.MaxStock, product.ReorderPoint, product.ReorderQuantity,
		product.WeightKg, product.WidthCm, product.HeightCm, product.DepthCm,
		product.LotTracking, product.SerialTracking, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku))
	if err != nil {
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// GetByCode busca por barcode o SKU (lookup del scanner).
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE barcode = $1 OR sku = $1`, code))
	if err != nil {
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// GetForUpdate bloquea la fila del producto dentro de la transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. Quantity no se toca aquí: lo maneja el motor de stock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, barcode = $3, name = $4, description = $5, category = $6,
			subcategory = $7, supplier = $8, purchase_price = $9, sale_price = $10,
			min_stock = $11, max_stock = $12, reorder_point = $13, reorder_quantity = $14,
			lot_tracking = $15, is_active = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Barcode, product.Name, product.Description, product.Category,
		product.Subcategory, product.Supplier, product.PurchasePrice, product.SalePrice,
		product.MinStock, product.MaxStock, product.ReorderPoint, product.ReorderQuantity,
		product.LotTracking, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo el on-hand denormalizado (motor de stock).
func (r *ProductRepo) UpdateQuantity(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista productos con filtros de búsqueda, categoría y bajo stock.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d OR barcode ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, f.Category)
		pos++
	}
	if f.LowStock {
		query += " AND quantity <= min_stock"
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Categories devuelve las categorías distintas en uso.
func (r *ProductRepo) Categories() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// LowStock devuelve productos con quantity <= min_stock.
func (r *ProductRepo) LowStock(limit int) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE quantity <= min_stock AND is_active ORDER BY quantity LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
