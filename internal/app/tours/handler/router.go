package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"explorecali/pkg/logger"
	"explorecali/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(catalogHandler *CatalogHandler, ratingHandler *RatingHandler) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("tours-service"))

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "tours-service",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/regions", catalogHandler.GetRegions)

	packages := router.Group("/packages")
	{
		packages.POST("", catalogHandler.CreateTourPackage)
		packages.GET("", catalogHandler.GetAllTourPackages)
		packages.GET("/:code", catalogHandler.GetTourPackage)
		packages.PUT("/:code", catalogHandler.UpdateTourPackage)
		packages.DELETE("/:code", catalogHandler.DeleteTourPackage)
		packages.GET("/:code/tours", catalogHandler.GetToursByPackage)
	}

	tours := router.Group("/tours")
	{
		tours.POST("", catalogHandler.CreateTour)
		tours.GET("", catalogHandler.GetAllTours)
		tours.GET("/:tour_id", catalogHandler.GetTour)
		tours.DELETE("/:tour_id", catalogHandler.DeleteTour)

		// Оценки живут под туром: tour_id всегда берется из пути
		ratings := tours.Group("/:tour_id/ratings")
		{
			ratings.POST("", ratingHandler.CreateRating)
			ratings.GET("", ratingHandler.GetRatings)
			ratings.GET("/average", ratingHandler.GetAverage)
			ratings.PUT("", ratingHandler.UpdateRating)
			ratings.PATCH("", ratingHandler.PatchRating)
			ratings.DELETE("/:customer_id", ratingHandler.DeleteRating)
		}
	}

	return router
}
