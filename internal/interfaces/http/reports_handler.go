package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/shop-manager/internal/application/dto"
	"github.com/tu-usuario/shop-manager/internal/application/reports"
)

// ReportsHandler expone los historiales completos y la exportación PDF.
type ReportsHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// SalesHistory godoc
// @Summary      Historial de ventas
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Security     BearerAuth
// @Router       /api/reports/sales [get]
func (h *ReportsHandler) SalesHistory(c *fiber.Ctx) error {
	sales, err := h.uc.SalesHistory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sales)
}

// StockStatus godoc
// @Summary      Estado del stock por artículo
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ItemAggregateResponse
// @Security     BearerAuth
// @Router       /api/reports/stock [get]
func (h *ReportsHandler) StockStatus(c *fiber.Ctx) error {
	aggs, err := h.uc.StockStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(aggs)
}

// SalesHistoryPDF godoc
// @Summary      Historial de ventas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/sales/pdf [get]
func (h *ReportsHandler) SalesHistoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.SalesHistoryPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("ventas_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
