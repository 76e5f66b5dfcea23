// Package sales contiene el caso de uso de registro de ventas.
package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/shop-manager/internal/application/dto"
	"github.com/tu-usuario/shop-manager/internal/domain"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
	"github.com/tu-usuario/shop-manager/internal/domain/repository"
	domstock "github.com/tu-usuario/shop-manager/internal/domain/stock"
)

// RecordSaleUseCase registra ventas de forma transaccional: bloquea los lotes
// del artículo (SELECT FOR UPDATE), calcula la utilidad con los precios
// promedio vigentes, agota stock FIFO por vencimiento y apendiza la venta.
// Commit si todo sale bien, Rollback si algo falla: una venta fallida no deja
// estado parcial (ni lotes a medio consumir ni ventas huérfanas).
type RecordSaleUseCase struct {
	txRunner TxRunner
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner}
}

// RecordSale valida, agota y registra una venta.
//
// Errores: domain.ErrInvalidInput (nombre vacío), domain.ErrUnknownItem (el
// artículo no tiene lotes), domain.ErrOutOfStock (disponible en cero),
// domain.ErrInvalidQuantity (cantidad fuera de [1, disponible]) y
// domain.ErrInsufficientStock (chequeo defensivo dentro del agotamiento).
//
// La utilidad se calcula con los promedios simples por artículo leídos dentro
// de la misma transacción, no con los precios de los lotes físicamente
// consumidos (comportamiento heredado; ver domstock.Aggregate).
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, userID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	name := strings.TrimSpace(in.ItemName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.StockBatchRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea los lotes del artículo para serializar ventas concurrentes
		// del mismo artículo.
		batches, err := batchRepo.ListByItemForUpdate(name)
		if err != nil {
			return err
		}
		if len(batches) == 0 {
			return domain.ErrUnknownItem
		}

		agg := domstock.Aggregate(name, batches)
		if agg.TotalQuantity == 0 {
			return domain.ErrOutOfStock
		}
		if in.Quantity > agg.TotalQuantity {
			return domain.ErrInvalidQuantity
		}

		plan, err := domstock.PlanDepletion(batches, in.Quantity)
		if err != nil {
			return err
		}
		for _, id := range plan.Deletes {
			if err := batchRepo.Delete(id); err != nil {
				return err
			}
		}
		for _, u := range plan.Updates {
			if err := batchRepo.UpdateQuantity(u.ID, u.NewQuantity); err != nil {
				return err
			}
		}

		sale = &entity.Sale{
			ID:        uuid.New().String(),
			ItemName:  name,
			Quantity:  in.Quantity,
			SellPrice: agg.AvgSellPrice,
			Profit:    domstock.Profit(agg.AvgSellPrice, agg.AvgBuyPrice, in.Quantity),
			Date:      time.Now(),
			CreatedBy: userID,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:        sale.ID,
		ItemName:  sale.ItemName,
		Quantity:  sale.Quantity,
		SellPrice: sale.SellPrice,
		Profit:    sale.Profit,
		Date:      sale.Date,
	}, nil
}
