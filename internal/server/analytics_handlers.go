package server

import (
	"fmt"
	"time"

	"finbay/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetRevenueStats handles GET /api/analytics/revenue
// @Summary Seller revenue stats
// @Description Per-sale revenue series and category breakdown for the authenticated seller
// @Tags analytics
// @Produce json
// @Success 200 {object} service.SellerStats
// @Router /analytics/revenue [get]
func (s *Server) GetRevenueStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stats, err := s.analyticsService.Stats(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(stats)
}

// ExportRevenue handles GET /api/analytics/revenue/export
// @Summary Export seller revenue as a spreadsheet
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /analytics/revenue/export [get]
func (s *Server) ExportRevenue(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	raw, err := s.analyticsService.ExportXLSX(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	filename := fmt.Sprintf("revenue-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
