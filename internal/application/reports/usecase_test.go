package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/shop-manager/internal/application/reports"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
	"github.com/tu-usuario/shop-manager/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo las operaciones de lectura que usa el dashboard)
// ──────────────────────────────────────────────────────────────────────────────

type fakeBatchReader struct {
	batches []*entity.StockBatch
}

func (r *fakeBatchReader) Create(b *entity.StockBatch) error {
	r.batches = append(r.batches, b)
	return nil
}

func (r *fakeBatchReader) ListByItem(name string) ([]*entity.StockBatch, error) {
	var out []*entity.StockBatch
	for _, b := range r.batches {
		if b.Name == name {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchReader) ListByItemForUpdate(name string) ([]*entity.StockBatch, error) {
	return r.ListByItem(name)
}

func (r *fakeBatchReader) ListAll() ([]*entity.StockBatch, error) {
	return r.batches, nil
}

func (r *fakeBatchReader) AggregateByItem() ([]stock.ItemAggregate, error) {
	byName := make(map[string][]*entity.StockBatch)
	var order []string
	for _, b := range r.batches {
		if _, seen := byName[b.Name]; !seen {
			order = append(order, b.Name)
		}
		byName[b.Name] = append(byName[b.Name], b)
	}
	out := make([]stock.ItemAggregate, 0, len(order))
	for _, name := range order {
		out = append(out, stock.Aggregate(name, byName[name]))
	}
	return out, nil
}

func (r *fakeBatchReader) ListExpiringBefore(limit time.Time) ([]*entity.StockBatch, error) {
	var out []*entity.StockBatch
	for _, b := range r.batches {
		if !b.Expiry.After(limit) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchReader) UpdateQuantity(id string, quantity int64) error { return nil }
func (r *fakeBatchReader) Delete(id string) error                        { return nil }

type fakeSaleReader struct {
	sales []*entity.Sale
}

func (r *fakeSaleReader) Create(s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}

func (r *fakeSaleReader) ListAll() ([]*entity.Sale, error) { return r.sales, nil }

func (r *fakeSaleReader) ListBetween(from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleReader) SumProfitBetween(from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		if !s.Date.Before(from) && !s.Date.After(to) {
			total = total.Add(s.Profit)
		}
	}
	return total, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func batchExpiringIn(name string, qty int64, days int) *entity.StockBatch {
	return &entity.StockBatch{
		ID:        name + "-" + time.Now().AddDate(0, 0, days).Format("20060102"),
		Name:      name,
		Quantity:  qty,
		Expiry:    time.Now().AddDate(0, 0, days),
		BuyPrice:  decimal.RequireFromString("10.00"),
		SellPrice: decimal.RequireFromString("15.00"),
		CreatedAt: time.Now(),
	}
}

func saleToday(item string, qty int64, profit string) *entity.Sale {
	return &entity.Sale{
		ID:       item + "-sale",
		ItemName: item,
		Quantity: qty,
		Profit:   decimal.RequireFromString(profit),
		Date:     time.Now(),
	}
}

func saleDaysAgo(item string, profit string, days int) *entity.Sale {
	s := saleToday(item, 1, profit)
	s.Date = time.Now().AddDate(0, 0, -days)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Tienda vacía: resumen en cero y listas vacías, sin errores.
func TestTodaySummary_TiendaVacia(t *testing.T) {
	uc := reports.NewReportsUseCase(&fakeBatchReader{}, &fakeSaleReader{}, nil)

	summary, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TodayProfit.IsZero(), "sin ventas la utilidad de hoy es cero")
	assert.Zero(t, summary.LowStockCount)
	assert.Zero(t, summary.ExpiringCount)

	details, err := uc.ProfitDetails()
	require.NoError(t, err)
	assert.Empty(t, details)

	low, err := uc.LowStockItems()
	require.NoError(t, err)
	assert.Empty(t, low)
}

// Solo las ventas de hoy suman a la utilidad del día.
func TestTodaySummary_SoloVentasDeHoy(t *testing.T) {
	saleRepo := &fakeSaleReader{sales: []*entity.Sale{
		saleToday("Arroz", 2, "40.00"),
		saleToday("Leche", 1, "5.50"),
		saleDaysAgo("Arroz", "100.00", 1),
		saleDaysAgo("Pan", "33.00", 7),
	}}
	uc := reports.NewReportsUseCase(&fakeBatchReader{}, saleRepo, nil)

	summary, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.TodayProfit.Equal(decimal.RequireFromString("45.50")),
		"40.00 + 5.50 de hoy, sin las de días anteriores: got %s", summary.TodayProfit)

	details, err := uc.ProfitDetails()
	require.NoError(t, err)
	assert.Len(t, details, 2, "el detalle solo incluye las ventas de hoy")
}

// Un artículo con 5 unidades (el umbral) se marca; con 6 no.
func TestLowStock_UmbralInclusivo(t *testing.T) {
	batchRepo := &fakeBatchReader{batches: []*entity.StockBatch{
		batchExpiringIn("Arroz", 3, 30),
		batchExpiringIn("Leche", reports.LowStockThreshold, 30),
		batchExpiringIn("Pan", reports.LowStockThreshold+1, 30),
	}}
	uc := reports.NewReportsUseCase(batchRepo, &fakeSaleReader{}, nil)

	low, err := uc.LowStockItems()
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Arroz", low[0].Name)
	assert.Equal(t, "Leche", low[1].Name)

	summary, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.LowStockCount)
}

// El stock bajo mira el agregado del artículo, no los lotes individuales.
func TestLowStock_AgregadoPorArticulo(t *testing.T) {
	// Dos lotes de 3: cada uno está bajo el umbral, el agregado (6) no.
	batchRepo := &fakeBatchReader{batches: []*entity.StockBatch{
		batchExpiringIn("Arroz", 3, 10),
		batchExpiringIn("Arroz", 3, 40),
	}}
	uc := reports.NewReportsUseCase(batchRepo, &fakeSaleReader{}, nil)

	low, err := uc.LowStockItems()
	require.NoError(t, err)
	assert.Empty(t, low, "el umbral aplica sobre la cantidad total del artículo")
}

// Lotes por vencer: dentro de la ventana sí, fuera no.
func TestExpiring_VentanaDeSieteDias(t *testing.T) {
	batchRepo := &fakeBatchReader{batches: []*entity.StockBatch{
		batchExpiringIn("Yogur", 10, 2),
		batchExpiringIn("Queso", 10, reports.ExpiryWindowDays-1),
		batchExpiringIn("Arroz", 10, 60),
	}}
	uc := reports.NewReportsUseCase(batchRepo, &fakeSaleReader{}, nil)

	expiring, err := uc.ExpiringBatches()
	require.NoError(t, err)
	assert.Len(t, expiring, 2)

	summary, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ExpiringCount)
}

// Las lecturas del dashboard no modifican estado: dos llamadas seguidas
// devuelven lo mismo.
func TestDashboard_LecturasIdempotentes(t *testing.T) {
	batchRepo := &fakeBatchReader{batches: []*entity.StockBatch{
		batchExpiringIn("Arroz", 4, 3),
	}}
	saleRepo := &fakeSaleReader{sales: []*entity.Sale{saleToday("Arroz", 1, "20.00")}}
	uc := reports.NewReportsUseCase(batchRepo, saleRepo, nil)

	first, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)
	second, err := uc.TodaySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.LowStockCount, second.LowStockCount)
	assert.Equal(t, first.ExpiringCount, second.ExpiringCount)
	assert.True(t, first.TodayProfit.Equal(second.TodayProfit))
}

// El historial devuelve todas las ventas sin filtro de fecha.
func TestSalesHistory_SinFiltro(t *testing.T) {
	saleRepo := &fakeSaleReader{sales: []*entity.Sale{
		saleDaysAgo("Arroz", "10.00", 30),
		saleDaysAgo("Leche", "5.00", 1),
		saleToday("Pan", 2, "8.00"),
	}}
	uc := reports.NewReportsUseCase(&fakeBatchReader{}, saleRepo, nil)

	history, err := uc.SalesHistory()
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

// Sin generador PDF configurado, la exportación falla con error claro.
func TestSalesHistoryPDF_SinGenerador(t *testing.T) {
	uc := reports.NewReportsUseCase(&fakeBatchReader{}, &fakeSaleReader{}, nil)

	_, err := uc.SalesHistoryPDF(context.Background())
	assert.Error(t, err)
}
