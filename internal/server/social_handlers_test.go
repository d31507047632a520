package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finbay/internal/models"
	"finbay/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeRepository is a mock of the LikeRepository interface
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Like(ctx context.Context, userID, itemID uint) (bool, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Unlike(ctx context.Context, userID, itemID uint) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockLikeRepository) HasLiked(ctx context.Context, userID, itemID uint) (bool, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountForItem(ctx context.Context, itemID uint) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepository is a mock of the ItemRepository interface
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Item, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) ListAvailable(ctx context.Context, viewerID uint, category models.ItemCategory, limit, offset int) ([]models.Item, error) {
	args := m.Called(ctx, viewerID, category, limit, offset)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) ListByOwner(ctx context.Context, ownerID uint, viewerID uint, limit, offset int) ([]models.Item, error) {
	args := m.Called(ctx, ownerID, viewerID, limit, offset)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]models.Item, error) {
	args := m.Called(ctx, query, viewerID, limit, offset)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) LikedBy(ctx context.Context, userID uint, limit, offset int) ([]models.Item, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.Item), args.Error(1)
}

func newSocialTestServer(
	likes *MockLikeRepository,
	follows *MockFollowRepository,
	items *MockItemRepository,
	users *MockUserRepository,
) *Server {
	return &Server{
		socialService: service.NewSocialService(likes, follows, items, users),
	}
}

func withAuthedUser(app *fiber.App, userID uint) {
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
}

func TestLikeItem(t *testing.T) {
	app := fiber.New()
	likes := new(MockLikeRepository)
	items := new(MockItemRepository)
	s := newSocialTestServer(likes, new(MockFollowRepository), items, new(MockUserRepository))

	withAuthedUser(app, 1)
	app.Post("/items/:id/like", s.LikeItem)

	items.On("GetByID", mock.Anything, uint(5), uint(1)).
		Return(&models.Item{ID: 5, Name: "Guppy"}, nil)
	likes.On("Like", mock.Anything, uint(1), uint(5)).Return(true, nil)
	likes.On("CountForItem", mock.Anything, uint(5)).Return(int64(3), nil)

	req := httptest.NewRequest(http.MethodPost, "/items/5/like", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Liked)
	assert.Equal(t, int64(3), body.LikesCount)
}

func TestLikeItem_UnknownItem(t *testing.T) {
	app := fiber.New()
	items := new(MockItemRepository)
	s := newSocialTestServer(new(MockLikeRepository), new(MockFollowRepository), items, new(MockUserRepository))

	withAuthedUser(app, 1)
	app.Post("/items/:id/like", s.LikeItem)

	items.On("GetByID", mock.Anything, uint(99), uint(1)).
		Return(nil, models.NewNotFoundError("Item", 99))

	req := httptest.NewRequest(http.MethodPost, "/items/99/like", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFollowUser(t *testing.T) {
	app := fiber.New()
	follows := new(MockFollowRepository)
	users := new(MockUserRepository)
	s := newSocialTestServer(new(MockLikeRepository), follows, new(MockItemRepository), users)

	withAuthedUser(app, 1)
	app.Post("/users/:id/follow", s.FollowUser)

	users.On("GetByID", mock.Anything, uint(2)).
		Return(&models.User{ID: 2, Username: "gill"}, nil)
	follows.On("Follow", mock.Anything, uint(1), uint(2)).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/users/2/follow", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFollowUser_Self(t *testing.T) {
	app := fiber.New()
	s := newSocialTestServer(new(MockLikeRepository), new(MockFollowRepository),
		new(MockItemRepository), new(MockUserRepository))

	withAuthedUser(app, 1)
	app.Post("/users/:id/follow", s.FollowUser)

	req := httptest.NewRequest(http.MethodPost, "/users/1/follow", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetFollowers(t *testing.T) {
	app := fiber.New()
	follows := new(MockFollowRepository)
	users := new(MockUserRepository)
	s := newSocialTestServer(new(MockLikeRepository), follows, new(MockItemRepository), users)

	withAuthedUser(app, 1)
	app.Get("/users/:id/followers", s.GetFollowers)

	users.On("GetByID", mock.Anything, uint(2)).
		Return(&models.User{ID: 2, Username: "gill"}, nil)
	follows.On("Followers", mock.Anything, uint(2), 50, 0).
		Return([]models.User{{ID: 1, Username: "finn"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/2/followers", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []models.User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
}
