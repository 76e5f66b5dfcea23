package dto

import "github.com/shopspring/decimal"

// TodaySummaryDTO resumen del día para el dashboard: utilidad de hoy, artículos
// con stock bajo y lotes por vencer. Los tres valores se recalculan en vivo en
// cada llamada; no hay estado de alertas persistido.
type TodaySummaryDTO struct {
	Date          string          `json:"date"` // YYYY-MM-DD
	TodayProfit   decimal.Decimal `json:"today_profit"`
	LowStockCount int             `json:"low_stock_count"`
	ExpiringCount int             `json:"expiring_count"`
}

// ProfitDetailDTO línea de detalle de utilidad de hoy (una por venta).
type ProfitDetailDTO struct {
	ItemName string          `json:"item_name"`
	Quantity int64           `json:"quantity"`
	Profit   decimal.Decimal `json:"profit"`
}
