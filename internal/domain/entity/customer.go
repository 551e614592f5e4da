package entity

import "time"

// Customer es un cliente B2B o B2C.
type Customer struct {
	ID           string
	CompanyName  string
	ContactName  string
	Email        string
	Phone        string
	CustomerType string // B2B | B2C
	Notes        string
	CreatedAt    time.Time

	Addresses []CustomerAddress
}

// CustomerAddress es una dirección de envío del cliente (cascade on delete).
type CustomerAddress struct {
	ID         string
	CustomerID string
	Label      string
	Address    string
	City       string
	ZipCode    string
	Province   string
	Country    string
	IsDefault  bool
}
