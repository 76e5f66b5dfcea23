package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/shop-manager/internal/application/dto"
	"github.com/tu-usuario/shop-manager/internal/application/stock"
	"github.com/tu-usuario/shop-manager/internal/domain"
)

// StockHandler maneja el libro de lotes: alta de compras y consultas.
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddBatch godoc
// @Summary      Registrar lote de compra
// @Description  Alta de un lote nuevo: artículo, cantidad, vencimiento y precios.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBatchRequest  true  "datos del lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/stock [post]
func (h *StockHandler) AddBatch(c *fiber.Ctx) error {
	var in dto.AddBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.AddBatch(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, cantidad, precios o fecha de vencimiento inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// ListBatches godoc
// @Summary      Listar todos los lotes
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.BatchResponse
// @Security     BearerAuth
// @Router       /api/stock [get]
func (h *StockHandler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.uc.ListBatches()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(batches)
}

// Aggregate godoc
// @Summary      Agregado por artículo
// @Description  Cantidad total, vencimiento más próximo y precios promedio por artículo.
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.ItemAggregateResponse
// @Security     BearerAuth
// @Router       /api/stock/aggregate [get]
func (h *StockHandler) Aggregate(c *fiber.Ctx) error {
	aggs, err := h.uc.AggregateByItem()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(aggs)
}

// BatchesForItem godoc
// @Summary      Lotes de un artículo
// @Description  Lotes del artículo en orden ascendente de vencimiento.
// @Tags         stock
// @Produce      json
// @Param        name  path  string  true  "nombre del artículo"
// @Success      200  {array}   dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/stock/{name}/batches [get]
func (h *StockHandler) BatchesForItem(c *fiber.Ctx) error {
	name := c.Params("name")
	batches, err := h.uc.BatchesForItem(name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(batches) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_ITEM", Message: "artículo sin lotes registrados"})
	}
	return c.JSON(batches)
}
