package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"explorecali/internal/app/tours/entity"
	"explorecali/internal/app/tours/infrastructure"
	"explorecali/internal/app/tours/repository"
	"explorecali/pkg/logger"
	"explorecali/pkg/metrics"
)

// RatingService обрабатывает бизнес-логику оценок туров.
// Каждая операция начинается с проверки существования тура: оценка
// не может ссылаться на несуществующий тур, FK-каскада в БД нет
type RatingService struct {
	ratingRepo    repository.TourRatingRepository
	tourRepo      repository.TourRepository
	kafkaProducer infrastructure.MessagePublisher
}

// NewRatingService создает новый сервис оценок с внедрением зависимостей
func NewRatingService(
	ratingRepo repository.TourRatingRepository,
	tourRepo repository.TourRepository,
	kafkaProducer infrastructure.MessagePublisher,
) *RatingService {
	return &RatingService{
		ratingRepo:    ratingRepo,
		tourRepo:      tourRepo,
		kafkaProducer: kafkaProducer,
	}
}

// CreateRating создает оценку тура.
// tour_id берется из пути, не из тела запроса.
// Повторная оценка той же парой (tour_id, customer_id) перезаписывает
// существующую - семантика upsert по составному ключу
func (s *RatingService) CreateRating(ctx context.Context, tourID int, req *entity.RatingRequest) error {
	if err := s.verifyTour(ctx, tourID); err != nil {
		return err
	}

	rating := &entity.TourRating{
		TourID:     tourID,
		CustomerID: req.CustomerID,
		Score:      req.Score,
		Comment:    req.Comment,
	}

	if err := s.ratingRepo.Save(ctx, rating); err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}

	metrics.RatingsCreated.Inc()
	metrics.RatingsScore.Observe(float64(rating.Score))

	// Отправляем событие RATING_CREATED в Kafka.
	// Оценка уже сохранена, проблемы с Kafka не критичны
	event := entity.RatingEvent{
		EventType:  "RATING_CREATED",
		TourID:     rating.TourID,
		CustomerID: rating.CustomerID,
		Score:      rating.Score,
		Timestamp:  time.Now(),
	}
	if err := s.publishRatingEvent(ctx, event); err != nil {
		logger.Warn().Err(err).Int("tour_id", tourID).Msg("Failed to publish rating created event")
	}

	return nil
}

// GetRatings получает страницу оценок тура с метаданными
func (s *RatingService) GetRatings(ctx context.Context, tourID, page, size int) (*entity.RatingPageResponse, error) {
	if err := s.verifyTour(ctx, tourID); err != nil {
		return nil, err
	}

	ratings, total, err := s.ratingRepo.GetByTourPaged(ctx, tourID, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}

	if ratings == nil {
		ratings = []entity.TourRating{}
	}

	return &entity.RatingPageResponse{
		Ratings: ratings,
		Total:   total,
		Page:    page,
		Size:    size,
	}, nil
}

// GetAverageScore вычисляет среднюю оценку тура.
// Среднее от пустого множества - явная ошибка, не 0.0
func (s *RatingService) GetAverageScore(ctx context.Context, tourID int) (float64, error) {
	if err := s.verifyTour(ctx, tourID); err != nil {
		return 0, err
	}

	ratings, err := s.ratingRepo.GetByTour(ctx, tourID)
	if err != nil {
		return 0, fmt.Errorf("failed to get ratings: %w", err)
	}

	if len(ratings) == 0 {
		return 0, fmt.Errorf("tour %d: %w", tourID, ErrTourHasNoRatings)
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}

	return float64(sum) / float64(len(ratings)), nil
}

// UpdateRating полностью заменяет оценку (PUT).
// score и comment перезаписываются безусловно: отсутствующий в запросе
// comment обнуляет сохраненный
func (s *RatingService) UpdateRating(ctx context.Context, tourID int, req *entity.RatingRequest) (*entity.TourRating, error) {
	if err := s.verifyTour(ctx, tourID); err != nil {
		return nil, err
	}

	rating, err := s.verifyRating(ctx, tourID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	rating.Score = req.Score
	rating.Comment = req.Comment

	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, fmt.Errorf("tour %d, customer %d: %w", tourID, req.CustomerID, ErrRatingNotFound)
		}
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	return rating, nil
}

// PatchRating частично обновляет оценку (PATCH).
// Меняются только переданные поля, остальные остаются как были
func (s *RatingService) PatchRating(ctx context.Context, tourID int, req *entity.RatingPatchRequest) (*entity.TourRating, error) {
	if err := s.verifyTour(ctx, tourID); err != nil {
		return nil, err
	}

	rating, err := s.verifyRating(ctx, tourID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	if req.Score != nil {
		rating.Score = *req.Score
	}
	if req.Comment != nil {
		rating.Comment = req.Comment
	}

	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, fmt.Errorf("tour %d, customer %d: %w", tourID, req.CustomerID, ErrRatingNotFound)
		}
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	return rating, nil
}

// DeleteRating удаляет оценку по составному ключу
func (s *RatingService) DeleteRating(ctx context.Context, tourID, customerID int) error {
	if err := s.verifyTour(ctx, tourID); err != nil {
		return err
	}

	if _, err := s.verifyRating(ctx, tourID, customerID); err != nil {
		return err
	}

	if err := s.ratingRepo.Delete(ctx, tourID, customerID); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return fmt.Errorf("tour %d, customer %d: %w", tourID, customerID, ErrRatingNotFound)
		}
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	return nil
}

// verifyTour проверяет существование тура перед любой операцией над оценками
func (s *RatingService) verifyTour(ctx context.Context, tourID int) error {
	exists, err := s.tourRepo.ExistsByID(ctx, tourID)
	if err != nil {
		return fmt.Errorf("failed to verify tour: %w", err)
	}
	if !exists {
		return fmt.Errorf("tour %d: %w", tourID, ErrTourNotFound)
	}
	return nil
}

// verifyRating находит существующую оценку пары (tour_id, customer_id)
func (s *RatingService) verifyRating(ctx context.Context, tourID, customerID int) (*entity.TourRating, error) {
	rating, err := s.ratingRepo.GetByTourAndCustomer(ctx, tourID, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, fmt.Errorf("tour %d, customer %d: %w", tourID, customerID, ErrRatingNotFound)
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return rating, nil
}

// publishRatingEvent отправляет событие об оценке в Kafka
func (s *RatingService) publishRatingEvent(ctx context.Context, event entity.RatingEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal rating event: %w", err)
	}

	// Ключ = tour_id для партиционирования
	if err := s.kafkaProducer.PublishMessage(ctx, strconv.Itoa(event.TourID), eventData); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}
