package server

import (
	"finbay/internal/models"
	"finbay/internal/service"

	"github.com/gofiber/fiber/v2"
)

// BuyItem handles POST /api/items/:id/buy
// @Summary Buy a listing
// @Description Atomically marks the item as bought and records the transaction
// @Tags checkout
// @Produce json
// @Param id path int true "Item ID"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /items/{id}/buy [post]
func (s *Server) BuyItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	itemID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	txn, err := s.checkoutService.Purchase(c.Context(), userID, itemID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(txn)
}

// GetPurchases handles GET /api/transactions
func (s *Server) GetPurchases(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	txns, err := s.checkoutService.PurchaseHistory(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(txns)
}

// GetSales handles GET /api/transactions/sales
func (s *Server) GetSales(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	txns, err := s.checkoutService.SalesHistory(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(txns)
}

// SubmitReview handles POST /api/transactions/:id/review
// @Summary Review a completed purchase
// @Description One review per transaction, buyer only
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body object{rating=int,comment=string} true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /transactions/{id}/review [post]
func (s *Server) SubmitReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	txnID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.checkoutService.SubmitReview(c.Context(), service.SubmitReviewInput{
		BuyerID:       userID,
		TransactionID: txnID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
