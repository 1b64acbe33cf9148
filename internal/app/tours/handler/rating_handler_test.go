package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"explorecali/internal/app/tours/entity"
	"explorecali/internal/app/tours/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRatingService мок для RatingService в тестах handler
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) CreateRating(ctx context.Context, tourID int, req *entity.RatingRequest) error {
	args := m.Called(ctx, tourID, req)
	return args.Error(0)
}

func (m *MockRatingService) GetRatings(ctx context.Context, tourID, page, size int) (*entity.RatingPageResponse, error) {
	args := m.Called(ctx, tourID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RatingPageResponse), args.Error(1)
}

func (m *MockRatingService) GetAverageScore(ctx context.Context, tourID int) (float64, error) {
	args := m.Called(ctx, tourID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingService) UpdateRating(ctx context.Context, tourID int, req *entity.RatingRequest) (*entity.TourRating, error) {
	args := m.Called(ctx, tourID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TourRating), args.Error(1)
}

func (m *MockRatingService) PatchRating(ctx context.Context, tourID int, req *entity.RatingPatchRequest) (*entity.TourRating, error) {
	args := m.Called(ctx, tourID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TourRating), args.Error(1)
}

func (m *MockRatingService) DeleteRating(ctx context.Context, tourID, customerID int) error {
	args := m.Called(ctx, tourID, customerID)
	return args.Error(0)
}

func setupRatingRouter(mockService *MockRatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewRatingHandler(mockService)
	ratings := router.Group("/tours/:tour_id/ratings")
	{
		ratings.POST("", h.CreateRating)
		ratings.GET("", h.GetRatings)
		ratings.GET("/average", h.GetAverage)
		ratings.PUT("", h.UpdateRating)
		ratings.PATCH("", h.PatchRating)
		ratings.DELETE("/:customer_id", h.DeleteRating)
	}

	return router
}

// ===================== CreateRating Handler Tests =====================

func TestCreateRatingHandler_Success(t *testing.T) {
	mockService := new(MockRatingService)
	mockService.On("CreateRating", mock.Anything, 1, mock.AnythingOfType("*entity.RatingRequest")).Return(nil)

	router := setupRatingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 123, "score": 5, "comment": "Great!"})
	req, _ := http.NewRequest(http.MethodPost, "/tours/1/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestCreateRatingHandler_InvalidTourID(t *testing.T) {
	mockService := new(MockRatingService)
	router := setupRatingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 123, "score": 5})
	req, _ := http.NewRequest(http.MethodPost, "/tours/abc/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRatingHandler_ScoreOutOfRange(t *testing.T) {
	mockService := new(MockRatingService)
	router := setupRatingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 123, "score": 6})
	req, _ := http.NewRequest(http.MethodPost, "/tours/1/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRatingHandler_TourNotFound(t *testing.T) {
	mockService := new(MockRatingService)
	notFound := fmt.Errorf("tour %d: %w", 999, service.ErrTourNotFound)
	mockService.On("CreateRating", mock.Anything, 999, mock.Anything).Return(notFound)

	router := setupRatingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 123, "score": 5})
	req, _ := http.NewRequest(http.MethodPost, "/tours/999/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	// Текст ошибки с идентификатором тура уходит клиенту как есть
	assert.Contains(t, w.Body.String(), "999")
}

// ===================== GetRatings Handler Tests =====================

func TestGetRatingsHandler_Success(t *testing.T) {
	mockService := new(MockRatingService)
	pageResponse := &entity.RatingPageResponse{
		Ratings: []entity.TourRating{
			{TourID: 1, CustomerID: 100, Score: 5},
			{TourID: 1, CustomerID: 101, Score: 3},
		},
		Total: 2,
		Page:  0,
		Size:  20,
	}
	mockService.On("GetRatings", mock.Anything, 1, 0, 20).Return(pageResponse, nil)

	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/tours/1/ratings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.RatingPageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Ratings, 2)
	assert.Equal(t, int64(2), response.Total)
}

func TestGetRatingsHandler_CustomPage(t *testing.T) {
	mockService := new(MockRatingService)
	pageResponse := &entity.RatingPageResponse{Ratings: []entity.TourRating{}, Total: 50, Page: 2, Size: 10}
	mockService.On("GetRatings", mock.Anything, 1, 2, 10).Return(pageResponse, nil)

	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/tours/1/ratings?page=2&size=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetRatingsHandler_InvalidPage(t *testing.T) {
	mockService := new(MockRatingService)
	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/tours/1/ratings?page=-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRatingsHandler_TourNotFound(t *testing.T) {
	mockService := new(MockRatingService)
	notFound := fmt.Errorf("tour %d: %w", 999, service.ErrTourNotFound)
	mockService.On("GetRatings", mock.Anything, 999, 0, 20).Return(nil, notFound)

	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/tours/999/ratings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ===================== GetAverage Handler Tests =====================

func TestGetAverageHandler_Success(t *testing.T) {
	mockService := new(MockRatingService)
	mockService.On("GetAverageScore", mock.Anything, 1).Return(4.0, nil)

	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/tours/1/ratings/average", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Ключ "Average" с большой буквы - внешний контракт
	assert.JSONEq(t, `{"Average": 4}`, w.Body.String())
}

func TestGetAverageHandler_NoRatings(t *testing.T) {
	mockService := new(MockRatingService)
	noRatings := fmt.Errorf("tour %d: %w", 1, service.ErrTourHasNoRatings)
	mockService.On("GetAverageScore", mock.Anything, 1).Return(0.0, noRatings)

	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodGet, "/tours/1/ratings/average", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no ratings")
}

// ===================== UpdateRating Handler Tests =====================

func TestUpdateRatingHandler_Success(t *testing.T) {
	mockService := new(MockRatingService)
	comment := "Updated!"
	updated := &entity.TourRating{TourID: 1, CustomerID: 123, Score: 5, Comment: &comment}
	mockService.On("UpdateRating", mock.Anything, 1, mock.AnythingOfType("*entity.RatingRequest")).Return(updated, nil)

	router := setupRatingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 123, "score": 5, "comment": "Updated!"})
	req, _ := http.NewRequest(http.MethodPut, "/tours/1/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.TourRating
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 5, response.Score)
	assert.Equal(t, "Updated!", *response.Comment)
}

func TestUpdateRatingHandler_RatingNotFound(t *testing.T) {
	mockService := new(MockRatingService)
	notFound := fmt.Errorf("tour %d, customer %d: %w", 1, 777, service.ErrRatingNotFound)
	mockService.On("UpdateRating", mock.Anything, 1, mock.Anything).Return(nil, notFound)

	router := setupRatingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 777, "score": 5})
	req, _ := http.NewRequest(http.MethodPut, "/tours/1/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "777")
}

// ===================== PatchRating Handler Tests =====================

func TestPatchRatingHandler_Success(t *testing.T) {
	mockService := new(MockRatingService)
	comment := "Kept comment"
	patched := &entity.TourRating{TourID: 1, CustomerID: 123, Score: 4, Comment: &comment}
	mockService.On("PatchRating", mock.Anything, 1, mock.AnythingOfType("*entity.RatingPatchRequest")).Return(patched, nil)

	router := setupRatingRouter(mockService)

	// Передаем только score, comment не трогаем
	body, _ := json.Marshal(map[string]interface{}{"customer_id": 123, "score": 4})
	req, _ := http.NewRequest(http.MethodPatch, "/tours/1/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.TourRating
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Kept comment", *response.Comment)
}

func TestPatchRatingHandler_MissingCustomerID(t *testing.T) {
	mockService := new(MockRatingService)
	router := setupRatingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{"score": 4})
	req, _ := http.NewRequest(http.MethodPatch, "/tours/1/ratings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "PatchRating", mock.Anything, mock.Anything, mock.Anything)
}

// ===================== DeleteRating Handler Tests =====================

func TestDeleteRatingHandler_Success(t *testing.T) {
	mockService := new(MockRatingService)
	mockService.On("DeleteRating", mock.Anything, 1, 123).Return(nil)

	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodDelete, "/tours/1/ratings/123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteRatingHandler_InvalidCustomerID(t *testing.T) {
	mockService := new(MockRatingService)
	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodDelete, "/tours/1/ratings/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "DeleteRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteRatingHandler_NotFound(t *testing.T) {
	mockService := new(MockRatingService)
	notFound := fmt.Errorf("tour %d, customer %d: %w", 1, 777, service.ErrRatingNotFound)
	mockService.On("DeleteRating", mock.Anything, 1, 777).Return(notFound)

	router := setupRatingRouter(mockService)

	req, _ := http.NewRequest(http.MethodDelete, "/tours/1/ratings/777", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
