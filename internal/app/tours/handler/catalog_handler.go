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

// CatalogHandler обрабатывает HTTP запросы к каталогу туров
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
	validator      *validator.Validate
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// === TOUR PACKAGES ===

// CreateTourPackage обрабатывает POST /packages
func (h *CatalogHandler) CreateTourPackage(c *gin.Context) {
	var req entity.CreateTourPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	pkg, err := h.catalogService.CreateTourPackage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrTourPackageAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tour package"})
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// GetTourPackage обрабатывает GET /packages/:code
func (h *CatalogHandler) GetTourPackage(c *gin.Context) {
	code := c.Param("code")

	pkg, err := h.catalogService.GetTourPackage(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrTourPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tour package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// GetAllTourPackages обрабатывает GET /packages (с кешированием).
// Параметр ?name= переключает на точечный поиск по имени
func (h *CatalogHandler) GetAllTourPackages(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		pkg, err := h.catalogService.GetTourPackageByName(c.Request.Context(), name)
		if err != nil {
			if errors.Is(err, service.ErrTourPackageNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tour package"})
			return
		}
		c.JSON(http.StatusOK, pkg)
		return
	}

	packages, err := h.catalogService.GetAllTourPackages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tour packages"})
		return
	}

	c.JSON(http.StatusOK, entity.TourPackageListResponse{
		Packages: packages,
		Total:    len(packages),
	})
}

// UpdateTourPackage обрабатывает PUT /packages/:code
func (h *CatalogHandler) UpdateTourPackage(c *gin.Context) {
	code := c.Param("code")

	var req entity.UpdateTourPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	pkg, err := h.catalogService.UpdateTourPackage(c.Request.Context(), code, &req)
	if err != nil {
		if errors.Is(err, service.ErrTourPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrTourPackageAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tour package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeleteTourPackage обрабатывает DELETE /packages/:code
func (h *CatalogHandler) DeleteTourPackage(c *gin.Context) {
	code := c.Param("code")

	if err := h.catalogService.DeleteTourPackage(c.Request.Context(), code); err != nil {
		if errors.Is(err, service.ErrTourPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrTourPackageHasTours) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tour package"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{
		Message: "Tour package deleted successfully",
	})
}

// === TOURS ===

// CreateTour обрабатывает POST /tours
func (h *CatalogHandler) CreateTour(c *gin.Context) {
	var req entity.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	tour, err := h.catalogService.CreateTour(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrTourPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tour"})
		return
	}

	c.JSON(http.StatusCreated, tour)
}

// GetTour обрабатывает GET /tours/:tour_id
func (h *CatalogHandler) GetTour(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("tour_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	tour, err := h.catalogService.GetTour(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tour"})
		return
	}

	c.JSON(http.StatusOK, tour)
}

// GetAllTours обрабатывает GET /tours
func (h *CatalogHandler) GetAllTours(c *gin.Context) {
	tours, err := h.catalogService.GetAllTours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tours"})
		return
	}

	c.JSON(http.StatusOK, entity.TourListResponse{
		Tours: tours,
		Total: len(tours),
	})
}

// GetToursByPackage обрабатывает GET /packages/:code/tours
func (h *CatalogHandler) GetToursByPackage(c *gin.Context) {
	code := c.Param("code")

	tours, err := h.catalogService.GetToursByPackage(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrTourPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tours"})
		return
	}

	c.JSON(http.StatusOK, entity.TourListResponse{
		Tours: tours,
		Total: len(tours),
	})
}

// DeleteTour обрабатывает DELETE /tours/:tour_id
func (h *CatalogHandler) DeleteTour(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("tour_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour ID"})
		return
	}

	if err := h.catalogService.DeleteTour(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tour"})
		return
	}

	c.JSON(http.StatusOK, entity.SuccessResponse{
		Message: "Tour deleted successfully",
	})
}

// GetRegions обрабатывает GET /regions
func (h *CatalogHandler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, entity.RegionListResponse{
		Regions: entity.Regions,
		Total:   len(entity.Regions),
	})
}
