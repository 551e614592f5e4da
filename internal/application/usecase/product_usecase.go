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

// ProductUseCase gestiona el catálogo de productos. El campo quantity solo se
// muta desde aquí en el alta inicial; después lo mueven los casos de uso de
// stock, ordini y ricezione.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create da de alta un producto. SKU duplicado devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		SKU:             in.SKU,
		Barcode:         in.Barcode,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Subcategory:     in.Subcategory,
		Supplier:        in.Supplier,
		PurchasePrice:   in.PurchasePrice,
		SalePrice:       in.SalePrice,
		Quantity:        in.Quantity,
		MinStock:        in.MinStock,
		MaxStock:        in.MaxStock,
		ReorderPoint:    in.ReorderPoint,
		ReorderQuantity: in.ReorderQuantity,
		WeightKg:        in.WeightKg,
		WidthCm:         in.WidthCm,
		HeightCm:        in.HeightCm,
		DepthCm:         in.DepthCm,
		LotTracking:     in.LotTracking,
		SerialTracking:  in.SerialTracking,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetByCode busca por barcode o SKU (lookup del scanner de magazzino).
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve los productos con filtros de búsqueda, categoría y bajo stock.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) ([]dto.ProductResponse, error) {
	q.DefaultPage()
	list, err := uc.productRepo.List(repository.ProductFilter{
		Search:   q.Search,
		Category: q.Category,
		LowStock: q.LowStock,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Categories devuelve las categorías distintas en uso.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.productRepo.Categories()
}

// Update aplica un partial update; los campos nil no se tocan.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.SKU != nil && *in.SKU != product.SKU {
		existing, err := uc.productRepo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Subcategory != nil {
		product.Subcategory = *in.Subcategory
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = *in.MaxStock
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.ReorderQuantity != nil {
		product.ReorderQuantity = *in.ReorderQuantity
	}
	if in.LotTracking != nil {
		product.LotTracking = *in.LotTracking
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Barcode:         p.Barcode,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Supplier:        p.Supplier,
		PurchasePrice:   p.PurchasePrice,
		SalePrice:       p.SalePrice,
		Quantity:        p.Quantity,
		MinStock:        p.MinStock,
		MaxStock:        p.MaxStock,
		ReorderPoint:    p.ReorderPoint,
		ReorderQuantity: p.ReorderQuantity,
		LotTracking:     p.LotTracking,
		SerialTracking:  p.SerialTracking,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
