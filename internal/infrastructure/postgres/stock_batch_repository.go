package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/shop-manager/internal/domain"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
	"github.com/tu-usuario/shop-manager/internal/domain/repository"
	"github.com/tu-usuario/shop-manager/internal/domain/stock"
)

var _ repository.StockBatchRepository = (*StockBatchRepo)(nil)

// StockBatchRepo implementación de StockBatchRepository sobre PostgreSQL (usable con pool o tx).
type StockBatchRepo struct {
	q Querier
}

// NewStockBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewStockBatchRepository(q Querier) *StockBatchRepo {
	return &StockBatchRepo{q: q}
}

const batchColumns = "id, name, quantity, expiry, buy_price, sell_price, created_at"

// Create persiste un lote nuevo.
func (r *StockBatchRepo) Create(batch *entity.StockBatch) error {
	query := `
		INSERT INTO stock_batches (id, name, quantity, expiry, buy_price, sell_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Name, batch.Quantity, batch.Expiry,
		batch.BuyPrice, batch.SellPrice, batch.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock batch: %w", err)
	}
	return nil
}

// ListByItem devuelve los lotes de un artículo en orden ascendente de vencimiento.
func (r *StockBatchRepo) ListByItem(name string) ([]*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches WHERE name = $1
		ORDER BY expiry ASC, created_at ASC`
	return r.queryBatches(query, name)
}

// ListByItemForUpdate devuelve los lotes del artículo bloqueando las filas
// (SELECT FOR UPDATE). Usar solo dentro de una transacción: serializa ventas
// concurrentes del mismo artículo.
func (r *StockBatchRepo) ListByItemForUpdate(name string) ([]*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches WHERE name = $1
		ORDER BY expiry ASC, created_at ASC
		FOR UPDATE`
	return r.queryBatches(query, name)
}

// ListAll devuelve todos los lotes del libro.
func (r *StockBatchRepo) ListAll() ([]*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches
		ORDER BY name ASC, expiry ASC`
	return r.queryBatches(query)
}

// ListExpiringBefore devuelve los lotes cuyo vencimiento es menor o igual al límite.
func (r *StockBatchRepo) ListExpiringBefore(limit time.Time) ([]*entity.StockBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM stock_batches WHERE expiry <= $1
		ORDER BY expiry ASC`
	return r.queryBatches(query, limit)
}

// AggregateByItem agrega por artículo en vivo: suma de cantidades, vencimiento
// mínimo y promedios simples de precios (AVG por fila, no ponderado por cantidad).
func (r *StockBatchRepo) AggregateByItem() ([]stock.ItemAggregate, error) {
	query := `
		SELECT name, SUM(quantity)::BIGINT, MIN(expiry), AVG(buy_price), AVG(sell_price)
		FROM stock_batches
		GROUP BY name
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("aggregate by item: %w", err)
	}
	defer rows.Close()

	var aggs []stock.ItemAggregate
	for rows.Next() {
		var a stock.ItemAggregate
		if err := rows.Scan(&a.Name, &a.TotalQuantity, &a.NearestExpiry, &a.AvgBuyPrice, &a.AvgSellPrice); err != nil {
			return nil, fmt.Errorf("scan aggregate: %w", err)
		}
		aggs = append(aggs, a)
	}
	return aggs, rows.Err()
}

// UpdateQuantity fija la cantidad restante de un lote (siempre > 0; un lote
// agotado se elimina con Delete, nunca se deja en cero).
func (r *StockBatchRepo) UpdateQuantity(id string, quantity int64) error {
	query := `UPDATE stock_batches SET quantity = $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lote consumido por completo.
func (r *StockBatchRepo) Delete(id string) error {
	query := `DELETE FROM stock_batches WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockBatchRepo) queryBatches(query string, args ...any) ([]*entity.StockBatch, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock batches: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockBatch
	for rows.Next() {
		var b entity.StockBatch
		if err := rows.Scan(&b.ID, &b.Name, &b.Quantity, &b.Expiry, &b.BuyPrice, &b.SellPrice, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
