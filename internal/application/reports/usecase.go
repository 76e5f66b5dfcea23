// Package reports contiene los casos de uso del dashboard y los reportes.
// Todas las vistas son derivaciones de lectura recalculadas bajo demanda;
// no se persiste ningún estado de alertas.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/shop-manager/internal/application/dto"
	"github.com/tu-usuario/shop-manager/internal/domain/repository"
)

// Umbrales fijos del dashboard.
const (
	LowStockThreshold = 5 // unidades: en o por debajo, el artículo se marca
	ExpiryWindowDays  = 7 // días: lotes que vencen dentro de la ventana
)

// ReportsUseCase deriva las métricas del dashboard y los historiales
// consultando el libro de lotes y el registro de ventas.
type ReportsUseCase struct {
	batchRepo repository.StockBatchRepository
	saleRepo  repository.SaleRepository
	pdfGen    SalesPDFGenerator
}

// NewReportsUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone exportación PDF.
func NewReportsUseCase(
	batchRepo repository.StockBatchRepository,
	saleRepo repository.SaleRepository,
	pdfGen SalesPDFGenerator,
) *ReportsUseCase {
	return &ReportsUseCase{batchRepo: batchRepo, saleRepo: saleRepo, pdfGen: pdfGen}
}

// TodaySummary construye el resumen del día: utilidad de hoy, artículos con
// stock bajo y lotes por vencer dentro de la ventana.
//
// Tres consultas en paralelo:
//  1. SumProfitBetween(hoy)          → TodayProfit
//  2. AggregateByItem() + umbral     → LowStockCount
//  3. ListExpiringBefore(hoy + 7d)   → ExpiringCount
func (uc *ReportsUseCase) TodaySummary(ctx context.Context) (*dto.TodaySummaryDTO, error) {
	now := time.Now()
	start, end := dayRange(now)

	type profitResult struct {
		profit decimal.Decimal
		err    error
	}
	type lowStockResult struct {
		count int
		err   error
	}
	type expiringResult struct {
		count int
		err   error
	}

	profitCh := make(chan profitResult, 1)
	lowCh := make(chan lowStockResult, 1)
	expCh := make(chan expiringResult, 1)

	go func() {
		p, err := uc.saleRepo.SumProfitBetween(start, end)
		profitCh <- profitResult{p, err}
	}()
	go func() {
		aggs, err := uc.batchRepo.AggregateByItem()
		n := 0
		for _, a := range aggs {
			if a.TotalQuantity <= LowStockThreshold {
				n++
			}
		}
		lowCh <- lowStockResult{n, err}
	}()
	go func() {
		batches, err := uc.batchRepo.ListExpiringBefore(now.AddDate(0, 0, ExpiryWindowDays))
		expCh <- expiringResult{len(batches), err}
	}()

	profit := <-profitCh
	low := <-lowCh
	exp := <-expCh

	if profit.err != nil {
		return nil, fmt.Errorf("resumen: utilidad de hoy: %w", profit.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("resumen: stock bajo: %w", low.err)
	}
	if exp.err != nil {
		return nil, fmt.Errorf("resumen: lotes por vencer: %w", exp.err)
	}

	return &dto.TodaySummaryDTO{
		Date:          now.Format(dto.DateLayout),
		TodayProfit:   profit.profit.Round(2),
		LowStockCount: low.count,
		ExpiringCount: exp.count,
	}, nil
}

// ProfitDetails devuelve las ventas de hoy con su utilidad (detalle del widget
// de utilidad del dashboard).
func (uc *ReportsUseCase) ProfitDetails() ([]dto.ProfitDetailDTO, error) {
	start, end := dayRange(time.Now())
	sales, err := uc.saleRepo.ListBetween(start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfitDetailDTO, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.ProfitDetailDTO{ItemName: s.ItemName, Quantity: s.Quantity, Profit: s.Profit})
	}
	return out, nil
}

// LowStockItems devuelve los artículos cuyo agregado está en o por debajo del
// umbral de stock bajo.
func (uc *ReportsUseCase) LowStockItems() ([]dto.ItemAggregateResponse, error) {
	aggs, err := uc.batchRepo.AggregateByItem()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemAggregateResponse, 0)
	for _, a := range aggs {
		if a.TotalQuantity > LowStockThreshold {
			continue
		}
		out = append(out, dto.ItemAggregateResponse{
			Name:          a.Name,
			TotalQuantity: a.TotalQuantity,
			NearestExpiry: a.NearestExpiry.Format(dto.DateLayout),
			AvgBuyPrice:   a.AvgBuyPrice,
			AvgSellPrice:  a.AvgSellPrice,
		})
	}
	return out, nil
}

// ExpiringBatches devuelve los lotes que vencen dentro de la ventana de alerta.
func (uc *ReportsUseCase) ExpiringBatches() ([]dto.BatchResponse, error) {
	batches, err := uc.batchRepo.ListExpiringBefore(time.Now().AddDate(0, 0, ExpiryWindowDays))
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.BatchResponse{
			ID:        b.ID,
			Name:      b.Name,
			Quantity:  b.Quantity,
			Expiry:    b.Expiry.Format(dto.DateLayout),
			BuyPrice:  b.BuyPrice,
			SellPrice: b.SellPrice,
			CreatedAt: b.CreatedAt,
		})
	}
	return out, nil
}

// SalesHistory devuelve todas las ventas en orden de almacenamiento, sin filtro.
func (uc *ReportsUseCase) SalesHistory() ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.SaleResponse{
			ID:        s.ID,
			ItemName:  s.ItemName,
			Quantity:  s.Quantity,
			SellPrice: s.SellPrice,
			Profit:    s.Profit,
			Date:      s.Date,
		})
	}
	return out, nil
}

// StockStatus devuelve el mismo agregado por artículo del libro de lotes.
func (uc *ReportsUseCase) StockStatus() ([]dto.ItemAggregateResponse, error) {
	aggs, err := uc.batchRepo.AggregateByItem()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemAggregateResponse, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, dto.ItemAggregateResponse{
			Name:          a.Name,
			TotalQuantity: a.TotalQuantity,
			NearestExpiry: a.NearestExpiry.Format(dto.DateLayout),
			AvgBuyPrice:   a.AvgBuyPrice,
			AvgSellPrice:  a.AvgSellPrice,
		})
	}
	return out, nil
}

// SalesHistoryPDF genera el historial de ventas como PDF.
func (uc *ReportsUseCase) SalesHistoryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("exportación PDF no configurada")
	}
	sales, err := uc.saleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateSalesReport(ctx, sales, time.Now())
}

// dayRange devuelve el día calendario de t: 00:00:00.000 – 23:59:59.999...
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}
