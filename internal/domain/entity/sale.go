package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta confirmada. Inmutable una vez creada: el core no
// soporta devoluciones ni ajustes sobre ventas registradas.
type Sale struct {
	ID        string
	ItemName  string
	Quantity  int64
	SellPrice decimal.Decimal // snapshot del precio promedio de venta al momento de vender
	Profit    decimal.Decimal
	Date      time.Time
	CreatedBy string
}
