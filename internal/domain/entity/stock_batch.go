package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBatch representa un lote de compra: un registro por evento de compra.
// Varios lotes pueden compartir el mismo nombre de artículo con precios y
// vencimientos distintos; eso es intencional (cambios de precio en el tiempo
// y venta por frescura).
type StockBatch struct {
	ID        string
	Name      string
	Quantity  int64 // siempre > 0; un lote agotado se elimina, nunca queda en cero
	Expiry    time.Time
	BuyPrice  decimal.Decimal
	SellPrice decimal.Decimal
	CreatedAt time.Time
}
