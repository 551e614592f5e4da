package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// CustomerUseCase gestiona clientes y sus direcciones de envío.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create da de alta un cliente con sus direcciones.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.ContactName == "" && in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	customerType := in.CustomerType
	if customerType == "" {
		customerType = "B2C"
	}
	if customerType != "B2B" && customerType != "B2C" {
		return nil, domain.ErrInvalidInput
	}

	customer := &entity.Customer{
		ID:           uuid.New().String(),
		CompanyName:  in.CompanyName,
		ContactName:  in.ContactName,
		Email:        in.Email,
		Phone:        in.Phone,
		CustomerType: customerType,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}
	for _, a := range in.Addresses {
		customer.Addresses = append(customer.Addresses, entity.CustomerAddress{
			ID:         uuid.New().String(),
			CustomerID: customer.ID,
			Label:      a.Label,
			Address:    a.Address,
			City:       a.City,
			ZipCode:    a.ZipCode,
			Province:   a.Province,
			Country:    a.Country,
			IsDefault:  a.IsDefault,
		})
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID devuelve un cliente con sus direcciones.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List devuelve los clientes, buscando opcionalmente por nombre o email.
func (uc *CustomerUseCase) List(ctx context.Context, q dto.CustomerListQuery) ([]dto.CustomerResponse, error) {
	q.DefaultPage()
	list, err := uc.customerRepo.List(q.Search, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza los datos del cliente y sus direcciones.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	customer.CompanyName = in.CompanyName
	customer.ContactName = in.ContactName
	customer.Email = in.Email
	customer.Phone = in.Phone
	if in.CustomerType != "" {
		customer.CustomerType = in.CustomerType
	}
	customer.Notes = in.Notes
	customer.Addresses = customer.Addresses[:0]
	for _, a := range in.Addresses {
		customer.Addresses = append(customer.Addresses, entity.CustomerAddress{
			ID:         uuid.New().String(),
			CustomerID: customer.ID,
			Label:      a.Label,
			Address:    a.Address,
			City:       a.City,
			ZipCode:    a.ZipCode,
			Province:   a.Province,
			Country:    a.Country,
			IsDefault:  a.IsDefault,
		})
	}
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente; sus direcciones caen por cascade.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customerRepo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	out := &dto.CustomerResponse{
		ID:           c.ID,
		CompanyName:  c.CompanyName,
		ContactName:  c.ContactName,
		Email:        c.Email,
		Phone:        c.Phone,
		CustomerType: c.CustomerType,
		Notes:        c.Notes,
		Addresses:    make([]dto.AddressResponse, 0, len(c.Addresses)),
		CreatedAt:    c.CreatedAt,
	}
	for _, a := range c.Addresses {
		out.Addresses = append(out.Addresses, dto.AddressResponse{
			ID:        a.ID,
			Label:     a.Label,
			Address:   a.Address,
			City:      a.City,
			ZipCode:   a.ZipCode,
			Province:  a.Province,
			Country:   a.Country,
			IsDefault: a.IsDefault,
		})
	}
	return out
}
