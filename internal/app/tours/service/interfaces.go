package service

import (
	"context"

	"explorecali/internal/app/tours/entity"
)

type RatingServiceInterface interface {
	CreateRating(ctx context.Context, tourID int, req *entity.RatingRequest) error
	GetRatings(ctx context.Context, tourID, page, size int) (*entity.RatingPageResponse, error)
	GetAverageScore(ctx context.Context, tourID int) (float64, error)
	UpdateRating(ctx context.Context, tourID int, req *entity.RatingRequest) (*entity.TourRating, error)
	PatchRating(ctx context.Context, tourID int, req *entity.RatingPatchRequest) (*entity.TourRating, error)
	DeleteRating(ctx context.Context, tourID, customerID int) error
}

type CatalogServiceInterface interface {
	CreateTourPackage(ctx context.Context, req *entity.CreateTourPackageRequest) (*entity.TourPackage, error)
	GetTourPackage(ctx context.Context, code string) (*entity.TourPackage, error)
	GetTourPackageByName(ctx context.Context, name string) (*entity.TourPackage, error)
	GetAllTourPackages(ctx context.Context) ([]entity.TourPackage, error)
	UpdateTourPackage(ctx context.Context, code string, req *entity.UpdateTourPackageRequest) (*entity.TourPackage, error)
	DeleteTourPackage(ctx context.Context, code string) error
	CreateTour(ctx context.Context, req *entity.CreateTourRequest) (*entity.Tour, error)
	GetTour(ctx context.Context, id int) (*entity.Tour, error)
	GetAllTours(ctx context.Context) ([]entity.Tour, error)
	GetToursByPackage(ctx context.Context, code string) ([]entity.Tour, error)
	DeleteTour(ctx context.Context, id int) error
}
