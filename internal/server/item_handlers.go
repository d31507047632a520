package server

import (
	"io"
	"strings"

	"finbay/internal/models"
	"finbay/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetItems handles GET /api/items?category=...
// @Summary Browse available listings
// @Description Lists available items, newest first, optionally filtered by category
// @Tags items
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Item
// @Failure 400 {object} object{error=string}
// @Router /items [get]
func (s *Server) GetItems(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	page := parsePagination(c, 20)
	category := models.ItemCategory(strings.TrimSpace(c.Query("category")))

	items, err := s.itemService.Browse(c.Context(), viewerID, category, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(items)
}

// GetCategories handles GET /api/items/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	return c.JSON(models.Categories)
}

// SearchItems handles GET /api/items/search?q=...
// @Summary Search available listings
// @Tags items
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.Item
// @Failure 400 {object} object{error=string}
// @Router /items/search [get]
func (s *Server) SearchItems(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	page := parsePagination(c, 20)
	q := c.Query("q")

	items, err := s.itemService.Search(c.Context(), q, viewerID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(items)
}

// GetItem handles GET /api/items/:id
func (s *Server) GetItem(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	item, err := s.itemService.GetItem(c.Context(), id, viewerID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(item)
}

// CreateItem handles POST /api/items
// @Summary Create a listing
// @Tags items
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,category=string,base_price=number} true "Listing"
// @Success 201 {object} models.Item
// @Failure 400 {object} object{error=string}
// @Router /items [post]
func (s *Server) CreateItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		BasePrice   float64 `json:"base_price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.itemService.CreateListing(c.Context(), service.CreateListingInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Category:    models.ItemCategory(req.Category),
		BasePrice:   req.BasePrice,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem handles PUT /api/items/:id
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		BasePrice   float64 `json:"base_price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.itemService.UpdateListing(c.Context(), service.UpdateListingInput{
		UserID:      userID,
		ItemID:      id,
		Name:        req.Name,
		Description: req.Description,
		Category:    models.ItemCategory(req.Category),
		BasePrice:   req.BasePrice,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(item)
}

// DeleteItem handles DELETE /api/items/:id
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.itemService.DeleteListing(c.Context(), userID, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Listing deleted"})
}

// UploadItemImage handles POST /api/items/:id/image
// @Summary Upload a listing photo
// @Description Accepts a multipart image, stores a bounded rendition and returns the updated item
// @Tags items
// @Accept mpfd
// @Produce json
// @Param id path int true "Item ID"
// @Param image formData file true "Listing image"
// @Success 200 {object} models.Item
// @Failure 400 {object} object{error=string}
// @Router /items/{id}/image [post]
func (s *Server) UploadItemImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	// Ownership and mutability checks live in the service; load first so an
	// upload against someone else's listing fails before any file is written.
	current, err := s.itemService.GetItem(c.Context(), id, userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if current.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the owner can modify this listing"))
	}

	url, err := s.imageService.ProcessListingImage(c.UserContext(), userID,
		file.Header.Get("Content-Type"), content)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	item, err := s.itemService.UpdateListing(c.Context(), service.UpdateListingInput{
		UserID:      userID,
		ItemID:      id,
		Name:        current.Name,
		Description: current.Description,
		Category:    current.Category,
		BasePrice:   current.BasePrice,
		ImageURL:    url,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(item)
}
