// Package stock contiene los casos de uso del libro de lotes (Stock Ledger).
package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/shop-manager/internal/application/dto"
	"github.com/tu-usuario/shop-manager/internal/domain"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
	"github.com/tu-usuario/shop-manager/internal/domain/repository"
)

// LedgerUseCase operaciones de consulta y alta sobre el libro de lotes.
// El agotamiento de lotes vive en el caso de uso de ventas (transaccional).
type LedgerUseCase struct {
	batchRepo repository.StockBatchRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(batchRepo repository.StockBatchRepository) *LedgerUseCase {
	return &LedgerUseCase{batchRepo: batchRepo}
}

// AddBatch registra un lote de compra nuevo con identificador propio.
// Devuelve domain.ErrInvalidInput si el nombre está vacío, la cantidad es
// menor a 1, algún precio es negativo o la fecha de vencimiento no parsea.
func (uc *LedgerUseCase) AddBatch(in dto.AddBatchRequest) (*dto.BatchResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.BuyPrice.LessThan(decimal.Zero) || in.SellPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.Parse(dto.DateLayout, in.Expiry)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	batch := &entity.StockBatch{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  in.Quantity,
		Expiry:    expiry,
		BuyPrice:  in.BuyPrice,
		SellPrice: in.SellPrice,
		CreatedAt: time.Now(),
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	resp := toBatchResponse(batch)
	return &resp, nil
}

// ListBatches devuelve todos los lotes del libro.
func (uc *LedgerUseCase) ListBatches() ([]dto.BatchResponse, error) {
	batches, err := uc.batchRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toBatchResponses(batches), nil
}

// BatchesForItem devuelve los lotes de un artículo en orden ascendente de
// vencimiento (el primero en venderse va primero).
func (uc *LedgerUseCase) BatchesForItem(name string) ([]dto.BatchResponse, error) {
	batches, err := uc.batchRepo.ListByItem(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return toBatchResponses(batches), nil
}

// AggregateByItem devuelve el agregado por artículo, calculado en vivo.
func (uc *LedgerUseCase) AggregateByItem() ([]dto.ItemAggregateResponse, error) {
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

func toBatchResponse(b *entity.StockBatch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Quantity:  b.Quantity,
		Expiry:    b.Expiry.Format(dto.DateLayout),
		BuyPrice:  b.BuyPrice,
		SellPrice: b.SellPrice,
		CreatedAt: b.CreatedAt,
	}
}

func toBatchResponses(batches []*entity.StockBatch) []dto.BatchResponse {
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchResponse(b))
	}
	return out
}
