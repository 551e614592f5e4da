package picking

import (
	"context"

	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.TxRepos) error) error
}

// Notifier publica eventos post-commit hacia los suscriptores WebSocket.
type Notifier interface {
	NotifyPickingUpdate(waveID, status string)
}

// DocumentLine línea del documento de prelievo con datos denormalizados.
type DocumentLine struct {
	Sequence        int
	LocationBarcode string
	ProductSKU      string
	ProductName     string
	Requested       int
}

// DocumentGenerator genera el PDF de la lista de prelievo de una wave.
type DocumentGenerator interface {
	GeneratePickingDocument(ctx context.Context, wave *entity.PickingWave, lines []DocumentLine) ([]byte, error)
}
