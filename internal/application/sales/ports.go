package sales

import (
	"context"

	"github.com/tu-usuario/shop-manager/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que lectura de precios, agotamiento
// de lotes e inserción de la venta sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.StockBatchRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
