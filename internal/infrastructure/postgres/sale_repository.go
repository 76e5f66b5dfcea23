package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
	"github.com/tu-usuario/shop-manager/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// Solo inserción y lectura: las ventas son inmutables.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = "id, item_name, quantity, sell_price, profit, date, created_by"

// Create persiste una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, item_name, quantity, sell_price, profit, date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	createdBy := (*string)(nil)
	if sale.CreatedBy != "" {
		createdBy = &sale.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ItemName, sale.Quantity, sale.SellPrice, sale.Profit, sale.Date, createdBy,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListAll devuelve todas las ventas en orden de registro.
func (r *SaleRepo) ListAll() ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		ORDER BY date ASC, id ASC`
	return r.querySales(query)
}

// ListBetween devuelve las ventas con fecha dentro del rango [from, to].
func (r *SaleRepo) ListBetween(from, to time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC, id ASC`
	return r.querySales(query, from, to)
}

// SumProfitBetween suma la utilidad de las ventas del rango. COALESCE devuelve
// cero si no hay filas (período sin ventas).
func (r *SaleRepo) SumProfitBetween(from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(profit), 0)
		FROM sales WHERE date BETWEEN $1 AND $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum profit: %w", err)
	}
	return total, nil
}

func (r *SaleRepo) querySales(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var createdBy *string
		if err := rows.Scan(&s.ID, &s.ItemName, &s.Quantity, &s.SellPrice, &s.Profit, &s.Date, &createdBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if createdBy != nil {
			s.CreatedBy = *createdBy
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
