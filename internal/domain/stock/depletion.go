// Package stock implementa el motor de agotamiento de lotes y rentabilidad
// (servicio de dominio puro, sin dependencias de infraestructura).
//
// Disciplina FIFO-por-vencimiento: una venta consume siempre primero el lote
// con la fecha de vencimiento más próxima, independiente del orden de compra
// o del precio de cada lote.
package stock

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/shop-manager/internal/domain"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
)

// ItemAggregate resume los lotes de un artículo: cantidad total, vencimiento
// más próximo y precios promedio simples (no ponderados por cantidad).
type ItemAggregate struct {
	Name          string
	TotalQuantity int64
	NearestExpiry time.Time
	AvgBuyPrice   decimal.Decimal
	AvgSellPrice  decimal.Decimal
}

// Aggregate calcula el agregado de un artículo a partir de sus lotes actuales.
//
// Los promedios son la media simple de buy_price/sell_price entre lotes, NO la
// media ponderada por cantidad. El precio de venta y la utilidad se atribuyen
// con estos promedios aunque el agotamiento físico sea FIFO por vencimiento
// lote a lote; cuando los lotes tienen precios distintos ambas cosas no
// coinciden. Comportamiento heredado a propósito.
func Aggregate(name string, batches []*entity.StockBatch) ItemAggregate {
	agg := ItemAggregate{
		Name:         name,
		AvgBuyPrice:  decimal.Zero,
		AvgSellPrice: decimal.Zero,
	}
	if len(batches) == 0 {
		return agg
	}

	buySum := decimal.Zero
	sellSum := decimal.Zero
	agg.NearestExpiry = batches[0].Expiry
	for _, b := range batches {
		agg.TotalQuantity += b.Quantity
		buySum = buySum.Add(b.BuyPrice)
		sellSum = sellSum.Add(b.SellPrice)
		if b.Expiry.Before(agg.NearestExpiry) {
			agg.NearestExpiry = b.Expiry
		}
	}
	n := decimal.NewFromInt(int64(len(batches)))
	agg.AvgBuyPrice = buySum.Div(n)
	agg.AvgSellPrice = sellSum.Div(n)
	return agg
}

// Profit calcula la utilidad de una venta: (promedioVenta − promedioCompra) × cantidad.
func Profit(avgSell, avgBuy decimal.Decimal, quantity int64) decimal.Decimal {
	return avgSell.Sub(avgBuy).Mul(decimal.NewFromInt(quantity))
}

// BatchUpdate lote que queda con cantidad reducida tras el agotamiento.
type BatchUpdate struct {
	ID          string
	NewQuantity int64 // siempre > 0
}

// Plan resultado del agotamiento: lotes a actualizar y lotes a eliminar.
// Un lote consumido por completo se elimina; jamás persiste con cantidad cero.
type Plan struct {
	Updates []BatchUpdate
	Deletes []string
}

// PlanDepletion recorre los lotes del artículo en orden ascendente de
// vencimiento y reparte la cantidad solicitada: si el lote alcanza, se reduce
// y termina; si no, se consume entero (se marca para eliminar) y se continúa
// con el siguiente.
//
// Garantías: la suma consumida es exactamente quantity; los lotes de
// vencimiento más lejano quedan intactos hasta agotar los anteriores; ningún
// lote resultante queda con cantidad <= 0.
//
// Devuelve domain.ErrInsufficientStock si el total disponible no cubre la
// cantidad. El caller valida el tope antes de llamar, pero el chequeo se
// repite aquí porque el total puede cambiar entre validación y agotamiento.
func PlanDepletion(batches []*entity.StockBatch, quantity int64) (Plan, error) {
	ordered := make([]*entity.StockBatch, len(batches))
	copy(ordered, batches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Expiry.Before(ordered[j].Expiry)
	})

	var plan Plan
	remaining := quantity
	for _, b := range ordered {
		if remaining == 0 {
			break
		}
		if b.Quantity <= remaining {
			plan.Deletes = append(plan.Deletes, b.ID)
			remaining -= b.Quantity
			continue
		}
		plan.Updates = append(plan.Updates, BatchUpdate{ID: b.ID, NewQuantity: b.Quantity - remaining})
		remaining = 0
	}
	if remaining > 0 {
		return Plan{}, domain.ErrInsufficientStock
	}
	return plan, nil
}
