package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste el cliente y sus direcciones.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO customers (id, company_name, contact_name, email, phone, customer_type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.CompanyName, c.ContactName, c.Email, c.Phone, c.CustomerType, c.Notes, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return r.insertAddresses(ctx, c.Addresses)
}

func (r *CustomerRepo) insertAddresses(ctx context.Context, addresses []entity.CustomerAddress) error {
	for _, a := range addresses {
		_, err := r.q.Exec(ctx, `
			INSERT INTO customer_addresses (id, customer_id, label, address, city, zip_code, province, country, is_default)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			a.ID, a.CustomerID, a.Label, a.Address, a.City, a.ZipCode, a.Province, a.Country, a.IsDefault,
		)
		if err != nil {
			return fmt.Errorf("insert customer address: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el cliente con sus direcciones.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), `
		SELECT id, company_name, contact_name, email, phone, customer_type, notes, created_at
		FROM customers WHERE id = $1`, id).Scan(
		&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.Phone, &c.CustomerType, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	addresses, err := r.loadAddresses(c.ID)
	if err != nil {
		return nil, err
	}
	c.Addresses = addresses
	return &c, nil
}

func (r *CustomerRepo) loadAddresses(customerID string) ([]entity.CustomerAddress, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, customer_id, label, address, city, zip_code, province, country, is_default
		FROM customer_addresses WHERE customer_id = $1 ORDER BY is_default DESC, id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer addresses: %w", err)
	}
	defer rows.Close()
	var list []entity.CustomerAddress
	for rows.Next() {
		var a entity.CustomerAddress
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Label, &a.Address, &a.City, &a.ZipCode,
			&a.Province, &a.Country, &a.IsDefault); err != nil {
			return nil, fmt.Errorf("scan customer address: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// List lista clientes, buscando opcionalmente por nombre o email.
func (r *CustomerRepo) List(search string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, company_name, contact_name, email, phone, customer_type, notes, created_at
		FROM customers`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE company_name ILIKE $%d OR contact_name ILIKE $%d OR email ILIKE $%d", pos, pos, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY contact_name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.Phone,
			&c.CustomerType, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		addresses, err := r.loadAddresses(c.ID)
		if err != nil {
			return nil, err
		}
		c.Addresses = addresses
	}
	return list, nil
}

// Update reemplaza los datos del cliente y sus direcciones.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		UPDATE customers SET company_name = $2, contact_name = $3, email = $4, phone = $5,
			customer_type = $6, notes = $7
		WHERE id = $1`,
		c.ID, c.CompanyName, c.ContactName, c.Email, c.Phone, c.CustomerType, c.Notes,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM customer_addresses WHERE customer_id = $1`, c.ID); err != nil {
		return fmt.Errorf("delete customer addresses: %w", err)
	}
	return r.insertAddresses(ctx, c.Addresses)
}

// Delete elimina el cliente; las direcciones caen por cascade.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
