package handler

import (
	"errors"
	"net/http"
	"strconv"

	"explorecali/internal/app/tours/entity"
	"explorecali/internal/app/tours/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RatingHandler обрабатывает HTTP запросы к оценкам туров.
// Все доменные "not found" транслируются в 404 одним свитчем - текст
// ошибки уходит клиенту как есть, с идентификаторами внутри
type RatingHandler struct {
	ratingService service.RatingServiceInterface
	validator     *validator.Validate
}

// NewRatingHandler создает новый обработчик оценок
func NewRatingHandler(ratingService service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		validator:     validator.New(),
	}
}

// CreateRating обрабатывает POST /tours/:tour_id/ratings
func (h *RatingHandler) CreateRating(c *gin.Context) {
	tourID, ok := h.tourID(c)
	if !ok {
		return
	}

	var req entity.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	if err := h.ratingService.CreateRating(c.Request.Context(), tourID, &req); err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rating"})
		return
	}

	c.Status(http.StatusCreated)
}

// GetRatings обрабатывает GET /tours/:tour_id/ratings с пагинацией
func (h *RatingHandler) GetRatings(c *gin.Context) {
	tourID, ok := h.tourID(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size < 1 || size > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size parameter"})
		return
	}

	pageResponse, err := h.ratingService.GetRatings(c.Request.Context(), tourID, page, size)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get ratings"})
		return
	}

	c.JSON(http.StatusOK, pageResponse)
}

// GetAverage обрабатывает GET /tours/:tour_id/ratings/average.
// Тур без оценок - это 404, не нулевое среднее
func (h *RatingHandler) GetAverage(c *gin.Context) {
	tourID, ok := h.tourID(c)
	if !ok {
		return
	}

	average, err := h.ratingService.GetAverageScore(c.Request.Context(), tourID)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) || errors.Is(err, service.ErrTourHasNoRatings) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get average score"})
		return
	}

	c.JSON(http.StatusOK, entity.AverageResponse{Average: average})
}

// UpdateRating обрабатывает PUT /tours/:tour_id/ratings (полная замена)
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	tourID, ok := h.tourID(c)
	if !ok {
		return
	}

	var req entity.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	rating, err := h.ratingService.UpdateRating(c.Request.Context(), tourID, &req)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) || errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// PatchRating обрабатывает PATCH /tours/:tour_id/ratings (частичное обновление)
func (h *RatingHandler) PatchRating(c *gin.Context) {
	tourID, ok := h.tourID(c)
	if !ok {
		return
	}

	var req entity.RatingPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	rating, err := h.ratingService.PatchRating(c.Request.Context(), tourID, &req)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) || errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// DeleteRating обрабатывает DELETE /tours/:tour_id/ratings/:customer_id
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	tourID, ok := h.tourID(c)
	if !ok {
		return
	}

	customerID, err := strconv.Atoi(c.Param("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	if err := h.ratingService.DeleteRating(c.Request.Context(), tourID, customerID); err != nil {
		if errors.Is(err, service.ErrTourNotFound) || errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}

	c.Status(http.StatusNoContent)
}

// tourID извлекает и валидирует tour_id из пути
func (h *RatingHandler) tourID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("tour_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return 0, false
	}
	return id, true
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
