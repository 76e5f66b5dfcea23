package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
)

// SaleRepository define el puerto del registro de ventas. Las ventas son
// inmutables: solo inserción y lectura, sin update ni delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// ListAll devuelve todas las ventas en orden de almacenamiento.
	ListAll() ([]*entity.Sale, error)
	ListBetween(from, to time.Time) ([]*entity.Sale, error)
	SumProfitBetween(from, to time.Time) (decimal.Decimal, error)
}
