package repository

import (
	"time"

	"github.com/tu-usuario/shop-manager/internal/domain/entity"
	"github.com/tu-usuario/shop-manager/internal/domain/stock"
)

// StockBatchRepository define el puerto de persistencia del libro de lotes.
// Los listados por artículo devuelven siempre orden ascendente de vencimiento
// (la disciplina FIFO del motor de agotamiento depende de ese orden).
type StockBatchRepository interface {
	Create(batch *entity.StockBatch) error
	ListByItem(name string) ([]*entity.StockBatch, error)
	// ListByItemForUpdate bloquea las filas del artículo (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	ListByItemForUpdate(name string) ([]*entity.StockBatch, error)
	ListAll() ([]*entity.StockBatch, error)
	// AggregateByItem calcula en vivo, por artículo: cantidad total, vencimiento
	// mínimo y promedios simples de precios. Sin caché.
	AggregateByItem() ([]stock.ItemAggregate, error)
	ListExpiringBefore(limit time.Time) ([]*entity.StockBatch, error)
	UpdateQuantity(id string, quantity int64) error
	Delete(id string) error
}
