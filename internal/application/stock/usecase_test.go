package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/shop-manager/internal/application/dto"
	"github.com/tu-usuario/shop-manager/internal/application/stock"
	"github.com/tu-usuario/shop-manager/internal/domain"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
	domstock "github.com/tu-usuario/shop-manager/internal/domain/stock"
)

// fakeLedger repo mínimo: solo guarda lo creado.
type fakeLedger struct {
	created []*entity.StockBatch
}

func (r *fakeLedger) Create(b *entity.StockBatch) error {
	r.created = append(r.created, b)
	return nil
}
func (r *fakeLedger) ListByItem(string) ([]*entity.StockBatch, error)          { return r.created, nil }
func (r *fakeLedger) ListByItemForUpdate(string) ([]*entity.StockBatch, error) { return r.created, nil }
func (r *fakeLedger) ListAll() ([]*entity.StockBatch, error)                   { return r.created, nil }
func (r *fakeLedger) AggregateByItem() ([]domstock.ItemAggregate, error)       { return nil, nil }
func (r *fakeLedger) ListExpiringBefore(time.Time) ([]*entity.StockBatch, error) {
	return nil, nil
}
func (r *fakeLedger) UpdateQuantity(string, int64) error { return nil }
func (r *fakeLedger) Delete(string) error                { return nil }

func TestAddBatch_AltaValida(t *testing.T) {
	repo := &fakeLedger{}
	uc := stock.NewLedgerUseCase(repo)

	resp, err := uc.AddBatch(dto.AddBatchRequest{
		Name:      "  Arroz  ",
		Quantity:  10,
		Expiry:    "2026-09-30",
		BuyPrice:  decimal.RequireFromString("50.00"),
		SellPrice: decimal.RequireFromString("70.00"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID, "el lote debe recibir un identificador propio")
	assert.Equal(t, "Arroz", resp.Name, "el nombre se guarda sin espacios de borde")
	assert.Equal(t, "2026-09-30", resp.Expiry)
	require.Len(t, repo.created, 1)
}

func TestAddBatch_EntradasInvalidas(t *testing.T) {
	uc := stock.NewLedgerUseCase(&fakeLedger{})

	valid := dto.AddBatchRequest{
		Name:      "Arroz",
		Quantity:  10,
		Expiry:    "2026-09-30",
		BuyPrice:  decimal.RequireFromString("50.00"),
		SellPrice: decimal.RequireFromString("70.00"),
	}

	cases := map[string]func(r *dto.AddBatchRequest){
		"nombre vacío":        func(r *dto.AddBatchRequest) { r.Name = "   " },
		"cantidad cero":       func(r *dto.AddBatchRequest) { r.Quantity = 0 },
		"cantidad negativa":   func(r *dto.AddBatchRequest) { r.Quantity = -5 },
		"precio compra < 0":   func(r *dto.AddBatchRequest) { r.BuyPrice = decimal.RequireFromString("-1") },
		"precio venta < 0":    func(r *dto.AddBatchRequest) { r.SellPrice = decimal.RequireFromString("-1") },
		"fecha mal formada":   func(r *dto.AddBatchRequest) { r.Expiry = "30/09/2026" },
		"fecha inexistente":   func(r *dto.AddBatchRequest) { r.Expiry = "2026-02-30" },
		"vencimiento vacío":   func(r *dto.AddBatchRequest) { r.Expiry = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := uc.AddBatch(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Dos lotes del mismo artículo conviven con vencimientos y precios distintos.
func TestAddBatch_LotesIndependientes(t *testing.T) {
	repo := &fakeLedger{}
	uc := stock.NewLedgerUseCase(repo)

	a, err := uc.AddBatch(dto.AddBatchRequest{
		Name: "Arroz", Quantity: 10, Expiry: "2026-09-05",
		BuyPrice: decimal.RequireFromString("50.00"), SellPrice: decimal.RequireFromString("70.00"),
	})
	require.NoError(t, err)
	b, err := uc.AddBatch(dto.AddBatchRequest{
		Name: "Arroz", Quantity: 5, Expiry: "2026-09-20",
		BuyPrice: decimal.RequireFromString("55.00"), SellPrice: decimal.RequireFromString("75.00"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "cada lote tiene identidad propia")
	assert.Len(t, repo.created, 2)
}
