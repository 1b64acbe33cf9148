package repository

import (
	"context"
	"errors"

	"explorecali/internal/app/tours/entity"
)

var (
	// Стандартные ошибки репозиториев для обработки в service layer
	ErrTourPackageNotFound      = errors.New("tour package not found")
	ErrTourPackageAlreadyExists = errors.New("tour package with this code or name already exists")
	ErrTourPackageHasTours      = errors.New("cannot delete tour package with existing tours")
	ErrTourNotFound             = errors.New("tour not found")
	ErrRatingNotFound           = errors.New("rating not found")
)

type TourPackageRepository interface {
	Create(ctx context.Context, pkg *entity.TourPackage) error
	GetByCode(ctx context.Context, code string) (*entity.TourPackage, error)
	GetByName(ctx context.Context, name string) (*entity.TourPackage, error)
	GetAll(ctx context.Context) ([]entity.TourPackage, error)
	Update(ctx context.Context, pkg *entity.TourPackage) error
	Delete(ctx context.Context, code string) error
}

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	GetByID(ctx context.Context, id int) (*entity.Tour, error)
	GetAll(ctx context.Context) ([]entity.Tour, error)
	GetByPackageCode(ctx context.Context, code string) ([]entity.Tour, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
}

type TourRatingRepository interface {
	Save(ctx context.Context, rating *entity.TourRating) error
	GetByTourAndCustomer(ctx context.Context, tourID, customerID int) (*entity.TourRating, error)
	GetByTour(ctx context.Context, tourID int) ([]entity.TourRating, error)
	GetByTourPaged(ctx context.Context, tourID, page, size int) ([]entity.TourRating, int64, error)
	Update(ctx context.Context, rating *entity.TourRating) error
	Delete(ctx context.Context, tourID, customerID int) error
}
