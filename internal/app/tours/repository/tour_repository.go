package repository

import (
	"context"
	"errors"
	"fmt"

	"explorecali/internal/app/tours/entity"

	"gorm.io/gorm"
)

type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository создает новый репозиторий туров
func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

// Create создает новый тур
func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	result := r.db.WithContext(ctx).Create(tour)
	return result.Error
}

// GetByID получает тур по ID
func (r *tourRepository) GetByID(ctx context.Context, id int) (*entity.Tour, error) {
	var tour entity.Tour
	result := r.db.WithContext(ctx).First(&tour, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", result.Error)
	}

	return &tour, nil
}

// GetAll получает все туры
func (r *tourRepository) GetAll(ctx context.Context) ([]entity.Tour, error) {
	var tours []entity.Tour
	result := r.db.WithContext(ctx).Order("id").Find(&tours)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to find tours: %w", result.Error)
	}

	return tours, nil
}

// GetByPackageCode получает все туры пакета
func (r *tourRepository) GetByPackageCode(ctx context.Context, code string) ([]entity.Tour, error) {
	var tours []entity.Tour
	result := r.db.WithContext(ctx).
		Where("tour_package_code = ?", code).
		Order("id").
		Find(&tours)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to find tours: %w", result.Error)
	}

	return tours, nil
}

// ExistsByID проверяет существование тура без загрузки записи.
// Используется как guard перед любой операцией над оценками
func (r *tourRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entity.Tour{}).
		Where("id = ?", id).
		Count(&count)

	if result.Error != nil {
		return false, fmt.Errorf("failed to check tour existence: %w", result.Error)
	}

	return count > 0, nil
}

// Delete удаляет тур
func (r *tourRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&entity.Tour{}, "id = ?", id)

	if result.Error != nil {
		return fmt.Errorf("failed to delete tour: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}
