package dto

import "time"

// AddressInput dirección de un cliente.
type AddressInput struct {
	Label     string `json:"label"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	CompanyName  string         `json:"company_name"`
	ContactName  string         `json:"contact_name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	CustomerType string         `json:"customer_type"`
	Notes        string         `json:"notes"`
	Addresses    []AddressInput `json:"addresses"`
}

// AddressResponse dirección en las respuestas.
type AddressResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

// CustomerListQuery filtros del listado de clientes.
type CustomerListQuery struct {
	PageRequest
	Search string `query:"search"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID           string            `json:"id"`
	CompanyName  string            `json:"company_name,omitempty"`
	ContactName  string            `json:"contact_name"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	CustomerType string            `json:"customer_type"`
	Notes        string            `json:"notes,omitempty"`
	Addresses    []AddressResponse `json:"addresses"`
	CreatedAt    time.Time         `json:"created_at"`
}
