package repository

import (
	"context"
	"errors"
	"fmt"

	"explorecali/internal/app/tours/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tourRatingRepository struct {
	db *gorm.DB // GORM DB для работы с PostgreSQL
}

// NewTourRatingRepository создает новый репозиторий оценок
func NewTourRatingRepository(db *gorm.DB) TourRatingRepository {
	return &tourRatingRepository{db: db}
}

// Save сохраняет оценку в PostgreSQL.
// Повторный POST для той же пары (tour_id, customer_id) перезаписывает
// score и comment - семантика upsert по составному ключу.
func (r *tourRatingRepository) Save(ctx context.Context, rating *entity.TourRating) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tour_id"}, {Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "comment", "updated_at"}),
	}).Create(rating)

	if result.Error != nil {
		return fmt.Errorf("failed to save rating: %w", result.Error)
	}

	return nil
}

// GetByTourAndCustomer получает оценку по составному ключу
func (r *tourRatingRepository) GetByTourAndCustomer(ctx context.Context, tourID, customerID int) (*entity.TourRating, error) {
	var rating entity.TourRating
	result := r.db.WithContext(ctx).
		First(&rating, "tour_id = ? AND customer_id = ?", tourID, customerID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to get rating: %w", result.Error)
	}

	return &rating, nil
}

// GetByTour получает все оценки тура
func (r *tourRatingRepository) GetByTour(ctx context.Context, tourID int) ([]entity.TourRating, error) {
	var ratings []entity.TourRating
	result := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Find(&ratings)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", result.Error)
	}

	return ratings, nil
}

// GetByTourPaged получает страницу оценок тура и общее количество.
// Нумерация страниц с нуля, как у Pageable
func (r *tourRatingRepository) GetByTourPaged(ctx context.Context, tourID, page, size int) ([]entity.TourRating, int64, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(&entity.TourRating{}).
		Where("tour_id = ?", tourID).
		Count(&total)

	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to count ratings: %w", result.Error)
	}

	var ratings []entity.TourRating
	result = r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Limit(size).
		Offset(page * size).
		Find(&ratings)

	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find ratings: %w", result.Error)
	}

	return ratings, total, nil
}

// Update обновляет score и comment существующей оценки
func (r *tourRatingRepository) Update(ctx context.Context, rating *entity.TourRating) error {
	result := r.db.WithContext(ctx).Model(rating).
		Where("tour_id = ? AND customer_id = ?", rating.TourID, rating.CustomerID).
		Updates(map[string]interface{}{
			"score":   rating.Score,
			"comment": rating.Comment,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update rating: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}

	return nil
}

// Delete удаляет оценку по составному ключу
func (r *tourRatingRepository) Delete(ctx context.Context, tourID, customerID int) error {
	result := r.db.WithContext(ctx).
		Delete(&entity.TourRating{}, "tour_id = ? AND customer_id = ?", tourID, customerID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete rating: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}

	return nil
}
