package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddBatchRequest alta de un lote de compra.
type AddBatchRequest struct {
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Expiry    string          `json:"expiry"` // YYYY-MM-DD
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
}

// BatchResponse un lote en respuestas.
type BatchResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Expiry    string          `json:"expiry"` // YYYY-MM-DD
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// ItemAggregateResponse agregado por artículo: total, vencimiento más próximo
// y precios promedio simples entre sus lotes.
type ItemAggregateResponse struct {
	Name          string          `json:"name"`
	TotalQuantity int64           `json:"total_quantity"`
	NearestExpiry string          `json:"nearest_expiry"` // YYYY-MM-DD
	AvgBuyPrice   decimal.Decimal `json:"avg_buy_price"`
	AvgSellPrice  decimal.Decimal `json:"avg_sell_price"`
}
