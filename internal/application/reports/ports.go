package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/shop-manager/internal/domain/entity"
)

// SalesPDFGenerator puerto para la representación PDF del historial de ventas.
type SalesPDFGenerator interface {
	GenerateSalesReport(ctx context.Context, sales []*entity.Sale, generatedAt time.Time) ([]byte, error)
}
