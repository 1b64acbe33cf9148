package mocks

import (
	"context"
	"time"

	"explorecali/internal/app/tours/entity"

	"github.com/stretchr/testify/mock"
)

// MockTourPackageRepository мок для TourPackageRepository
type MockTourPackageRepository struct {
	mock.Mock
}

func (m *MockTourPackageRepository) Create(ctx context.Context, pkg *entity.TourPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockTourPackageRepository) GetByCode(ctx context.Context, code string) (*entity.TourPackage, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TourPackage), args.Error(1)
}

func (m *MockTourPackageRepository) GetByName(ctx context.Context, name string) (*entity.TourPackage, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TourPackage), args.Error(1)
}

func (m *MockTourPackageRepository) GetAll(ctx context.Context) ([]entity.TourPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TourPackage), args.Error(1)
}

func (m *MockTourPackageRepository) Update(ctx context.Context, pkg *entity.TourPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockTourPackageRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockTourRepository мок для TourRepository
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) GetByID(ctx context.Context, id int) (*entity.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tour), args.Error(1)
}

func (m *MockTourRepository) GetAll(ctx context.Context) ([]entity.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tour), args.Error(1)
}

func (m *MockTourRepository) GetByPackageCode(ctx context.Context, code string) ([]entity.Tour, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tour), args.Error(1)
}

func (m *MockTourRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTourRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTourRatingRepository мок для TourRatingRepository
type MockTourRatingRepository struct {
	mock.Mock
}

func (m *MockTourRatingRepository) Save(ctx context.Context, rating *entity.TourRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockTourRatingRepository) GetByTourAndCustomer(ctx context.Context, tourID, customerID int) (*entity.TourRating, error) {
	args := m.Called(ctx, tourID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TourRating), args.Error(1)
}

func (m *MockTourRatingRepository) GetByTour(ctx context.Context, tourID int) ([]entity.TourRating, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TourRating), args.Error(1)
}

func (m *MockTourRatingRepository) GetByTourPaged(ctx context.Context, tourID, page, size int) ([]entity.TourRating, int64, error) {
	args := m.Called(ctx, tourID, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.TourRating), args.Get(1).(int64), args.Error(2)
}

func (m *MockTourRatingRepository) Update(ctx context.Context, rating *entity.TourRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockTourRatingRepository) Delete(ctx context.Context, tourID, customerID int) error {
	args := m.Called(ctx, tourID, customerID)
	return args.Error(0)
}

// MockTourPackageCache мок для TourPackageCache (Redis)
type MockTourPackageCache struct {
	mock.Mock
}

func (m *MockTourPackageCache) SetPackages(ctx context.Context, packages []entity.TourPackage, ttl time.Duration) error {
	args := m.Called(ctx, packages, ttl)
	return args.Error(0)
}

func (m *MockTourPackageCache) GetPackages(ctx context.Context) ([]entity.TourPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TourPackage), args.Error(1)
}

func (m *MockTourPackageCache) DeletePackages(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTourPackageCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockMessagePublisher мок для Kafka MessagePublisher
type MockMessagePublisher struct {
	mock.Mock
	Messages [][]byte
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	m.Messages = append(m.Messages, value)
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
