package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/shop-manager/internal/application/dto"
	"github.com/tu-usuario/shop-manager/internal/application/reports"
)

// DashboardHandler expone las vistas del dashboard: resumen del día, detalle de
// utilidad, stock bajo y lotes por vencer. Todo se recalcula en cada llamada.
type DashboardHandler struct {
	uc *reports.ReportsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.ReportsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del día
// @Description  Utilidad de hoy, cantidad de artículos con stock bajo y lotes
// @Description  por vencer dentro de la ventana de alerta.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.TodaySummaryDTO
// @Security     BearerAuth
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.TodaySummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// ProfitDetails godoc
// @Summary      Detalle de utilidad de hoy
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.ProfitDetailDTO
// @Security     BearerAuth
// @Router       /api/dashboard/profit-details [get]
func (h *DashboardHandler) ProfitDetails(c *fiber.Ctx) error {
	details, err := h.uc.ProfitDetails()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(details)
}

// LowStock godoc
// @Summary      Artículos con stock bajo
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.ItemAggregateResponse
// @Security     BearerAuth
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStockItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Expiring godoc
// @Summary      Lotes por vencer
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.BatchResponse
// @Security     BearerAuth
// @Router       /api/dashboard/expiring [get]
func (h *DashboardHandler) Expiring(c *fiber.Ctx) error {
	batches, err := h.uc.ExpiringBatches()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(batches)
}
