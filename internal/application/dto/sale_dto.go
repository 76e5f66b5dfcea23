package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest confirmación de una venta.
type RecordSaleRequest struct {
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
}

// SaleResponse una venta registrada.
type SaleResponse struct {
	ID        string          `json:"id"`
	ItemName  string          `json:"item_name"`
	Quantity  int64           `json:"quantity"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Profit    decimal.Decimal `json:"profit"`
	Date      time.Time       `json:"date"`
}
