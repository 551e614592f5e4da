package inbound

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// ASNUseCase gestiona el ciclo de vida de los ASN: creación, transición de
// estado y recepción de mercancía. La recepción acumula cantidades por línea,
// incrementa stock, registra "carico" en el libro de movimientos, hace upsert
// de lote e inventario por ubicación, y auto-completa el ASN cuando todas las
// líneas quedan "ricevuto".
type ASNUseCase struct {
	txRunner      TxRunner
	asnRepo       repository.ASNRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	notifier      Notifier
}

// NewASNUseCase construye el caso de uso.
func NewASNUseCase(
	txRunner TxRunner,
	asnRepo repository.ASNRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	notifier Notifier,
) *ASNUseCase {
	return &ASNUseCase{
		txRunner:      txRunner,
		asnRepo:       asnRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		notifier:      notifier,
	}
}

// generateASNNumber genera un número de documento ASN-YYYYMMDD-XXXXXX.
func generateASNNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("ASN-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

// Create valida magazzino y productos, y persiste el ASN con sus líneas.
func (uc *ASNUseCase) Create(ctx context.Context, userID string, in dto.CreateASNRequest) (*dto.ASNResponse, error) {
	if in.Supplier == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	asn := &entity.ASN{
		ID:             uuid.New().String(),
		ASNNumber:      generateASNNumber(),
		Supplier:       in.Supplier,
		WarehouseID:    in.WarehouseID,
		Status:         entity.ASNStatusAtteso,
		ExpectedDate:   in.ExpectedDate,
		Carrier:        in.Carrier,
		TrackingNumber: in.TrackingNumber,
		Notes:          in.Notes,
		UserID:         userID,
		CreatedAt:      time.Now(),
	}
	for _, item := range in.Items {
		if item.ExpectedQuantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidInput
		}
		asn.Items = append(asn.Items, entity.ASNItem{
			ID:               uuid.New().String(),
			ASNID:            asn.ID,
			ProductID:        item.ProductID,
			ExpectedQuantity: item.ExpectedQuantity,
			LotNumber:        item.LotNumber,
			TargetLocationID: item.TargetLocationID,
			UnitPrice:        item.UnitPrice,
			Status:           entity.ASNItemStatusAtteso,
		})
	}

	if err := uc.asnRepo.Create(asn); err != nil {
		return nil, err
	}
	return toASNResponse(asn), nil
}

// GetByID devuelve el ASN con sus líneas.
func (uc *ASNUseCase) GetByID(ctx context.Context, id string) (*dto.ASNResponse, error) {
	asn, err := uc.asnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asn == nil {
		return nil, domain.ErrNotFound
	}
	return toASNResponse(asn), nil
}

// List devuelve los ASN con filtros de estado y magazzino.
func (uc *ASNUseCase) List(ctx context.Context, q dto.ASNListQuery) ([]dto.ASNResponse, error) {
	q.DefaultPage()
	list, err := uc.asnRepo.List(repository.ASNFilter{
		Status:      q.Status,
		WarehouseID: q.WarehouseID,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ASNResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toASNResponse(a))
	}
	return out, nil
}

// SetStatus aplica una transición manual de estado. Al entrar en
// "in_ricezione" sella arrived_at si todavía no estaba.
func (uc *ASNUseCase) SetStatus(ctx context.Context, asnID, newStatus string) (*dto.ASNResponse, error) {
	if !entity.ValidASNStatus(newStatus) {
		return nil, domain.ErrInvalidStatus
	}
	asn, err := uc.asnRepo.GetByID(asnID)
	if err != nil {
		return nil, err
	}
	if asn == nil {
		return nil, domain.ErrNotFound
	}
	if newStatus == entity.ASNStatusInRicezione && asn.ArrivedAt == nil {
		now := time.Now()
		asn.ArrivedAt = &now
	}
	asn.Status = newStatus
	if err := uc.asnRepo.UpdateHeader(asn); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.NotifyASNUpdate(asnID, newStatus)
	}
	return toASNResponse(asn), nil
}

type stockChange struct {
	productID string
	quantity  int
}

// Receive procesa líneas de recepción sobre un ASN en estado ricevibile
// (atteso, in_arrivo o in_ricezione). Por cada línea: acumula
// received_quantity, marca la línea "ricevuto" si lo acumulado alcanza lo
// esperado (si no "parziale"), incrementa el stock del producto, registra un
// movimiento "carico", hace upsert del lote si el producto lo trackea y del
// inventario de la ubicación destino. Todo en una sola transacción; tras
// procesar, si ninguna línea queda sin recibir el ASN pasa a "completato".
func (uc *ASNUseCase) Receive(ctx context.Context, asnID, userID string, lines []dto.ASNReceiveLine) (*dto.ASNResponse, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var changes []stockChange
	var finalStatus string
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		asn, err := r.ASNs.GetForUpdate(asnID)
		if err != nil {
			return err
		}
		if asn == nil {
			return domain.ErrNotFound
		}
		if !asn.Receivable() {
			return domain.ErrNotReceivable
		}

		now := time.Now()
		asn.Status = entity.ASNStatusInRicezione
		if asn.ArrivedAt == nil {
			asn.ArrivedAt = &now
		}

		for _, line := range lines {
			item, err := r.ASNs.GetItem(line.ASNItemID)
			if err != nil {
				return err
			}
			if item == nil || item.ASNID != asnID {
				return domain.ErrInvalidInput
			}
			if line.ReceivedQuantity <= 0 {
				return domain.ErrInvalidInput
			}

			item.ReceivedQuantity += line.ReceivedQuantity
			if item.ReceivedQuantity >= item.ExpectedQuantity {
				item.Status = entity.ASNItemStatusRicevuto
			} else {
				item.Status = entity.ASNItemStatusParziale
			}
			if err := r.ASNs.UpdateItem(item); err != nil {
				return err
			}

			product, err := r.Products.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product != nil {
				newQty := product.Quantity + line.ReceivedQuantity
				if err := r.Products.UpdateQuantity(product.ID, newQty); err != nil {
					return err
				}
				mov := &entity.StockMovement{
					ID:           uuid.New().String(),
					ProductID:    product.ID,
					MovementType: entity.MovementCarico,
					Quantity:     line.ReceivedQuantity,
					Notes:        fmt.Sprintf("ASN #%s", asn.ASNNumber),
					UserID:       userID,
					CreatedAt:    now,
				}
				if err := r.Movements.Create(mov); err != nil {
					return err
				}
				changes = append(changes, stockChange{product.ID, newQty})

				// Upsert del lote por clave natural (product_id, lot_number)
				lotNumber := line.LotNumber
				if lotNumber == "" {
					lotNumber = item.LotNumber
				}
				if lotNumber != "" && product.LotTracking {
					lot, err := r.Lots.GetByProductAndNumber(product.ID, lotNumber)
					if err != nil {
						return err
					}
					if lot == nil {
						lot = &entity.Lot{
							ID:        uuid.New().String(),
							ProductID: product.ID,
							LotNumber: lotNumber,
							Status:    "active",
							CreatedAt: now,
						}
						if err := r.Lots.Create(lot); err != nil {
							return err
						}
					}
				}
			}

			// Upsert del inventario en la ubicación destino (override del
			// request, si no la ubicación objetivo de la línea)
			locationID := line.LocationID
			if locationID == "" {
				locationID = item.TargetLocationID
			}
			if locationID != "" {
				inv := &entity.LocationInventory{
					ID:         uuid.New().String(),
					LocationID: locationID,
					ProductID:  item.ProductID,
					Quantity:   line.ReceivedQuantity,
					UpdatedAt:  now,
				}
				if err := r.LocationInv.Upsert(inv); err != nil {
					return err
				}
			}
		}

		remaining, err := r.ASNs.CountItemsNotReceived(asnID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			asn.Status = entity.ASNStatusCompletato
			asn.CompletedAt = &now
		}
		finalStatus = asn.Status
		return r.ASNs.UpdateHeader(asn)
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyASNUpdate(asnID, finalStatus)
		for _, c := range changes {
			uc.notifier.NotifyStockChange(c.productID, c.quantity, entity.MovementCarico)
		}
	}

	return uc.GetByID(ctx, asnID)
}

// Delete elimina un ASN no completado; las líneas caen por cascade.
func (uc *ASNUseCase) Delete(ctx context.Context, id string) error {
	asn, err := uc.asnRepo.GetByID(id)
	if err != nil {
		return err
	}
	if asn == nil {
		return domain.ErrNotFound
	}
	if asn.Status == entity.ASNStatusCompletato {
		return domain.ErrConflict
	}
	return uc.asnRepo.Delete(id)
}

func toASNResponse(a *entity.ASN) *dto.ASNResponse {
	out := &dto.ASNResponse{
		ID:             a.ID,
		ASNNumber:      a.ASNNumber,
		Supplier:       a.Supplier,
		WarehouseID:    a.WarehouseID,
		Status:         a.Status,
		ExpectedDate:   a.ExpectedDate,
		ArrivedAt:      a.ArrivedAt,
		CompletedAt:    a.CompletedAt,
		Carrier:        a.Carrier,
		TrackingNumber: a.TrackingNumber,
		Notes:          a.Notes,
		Items:          make([]dto.ASNItemResponse, 0, len(a.Items)),
		CreatedAt:      a.CreatedAt,
	}
	for _, it := range a.Items {
		out.Items = append(out.Items, dto.ASNItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			ExpectedQuantity: it.ExpectedQuantity,
			ReceivedQuantity: it.ReceivedQuantity,
			LotNumber:        it.LotNumber,
			TargetLocationID: it.TargetLocationID,
			UnitPrice:        it.UnitPrice,
			Status:           it.Status,
		})
	}
	return out
}
