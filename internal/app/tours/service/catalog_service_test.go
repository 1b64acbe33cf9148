package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"explorecali/internal/app/tours/entity"
	"explorecali/internal/app/tours/repository"
	"explorecali/internal/app/tours/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Хелперы для создания тестовых данных

func newTestPackage() *entity.TourPackage {
	return &entity.TourPackage{
		Code:      "BC",
		Name:      "Backpack Cal",
		CreatedAt: time.Now(),
	}
}

func newTestTour() *entity.Tour {
	return &entity.Tour{
		ID:              1,
		Title:           "Big Sur Retreat",
		Description:     "Three days hiking the Big Sur coastline",
		Price:           750,
		Duration:        "3 days",
		Region:          entity.RegionCentralCoast,
		TourPackageCode: "BC",
	}
}

// ==================== Tour Package Tests ====================

func TestCatalogService_CreateTourPackage_Success(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("Create", ctx, mock.AnythingOfType("*entity.TourPackage")).Return(nil)
	cache.On("DeletePackages", ctx).Return(nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	pkg, err := service.CreateTourPackage(ctx, &entity.CreateTourPackageRequest{Code: "BC", Name: "Backpack Cal"})

	require.NoError(t, err)
	assert.Equal(t, "BC", pkg.Code)
	assert.Equal(t, "Backpack Cal", pkg.Name)

	packageRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogService_CreateTourPackage_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("Create", ctx, mock.Anything).Return(repository.ErrTourPackageAlreadyExists)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	pkg, err := service.CreateTourPackage(ctx, &entity.CreateTourPackageRequest{Code: "BC", Name: "Backpack Cal"})

	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, ErrTourPackageAlreadyExists)
	cache.AssertNotCalled(t, "DeletePackages", mock.Anything)
}

func TestCatalogService_CreateTourPackage_CacheErrorIgnored(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("Create", ctx, mock.Anything).Return(nil)
	cache.On("DeletePackages", ctx).Return(errors.New("redis error"))

	service := NewCatalogService(packageRepo, tourRepo, cache)

	pkg, err := service.CreateTourPackage(ctx, &entity.CreateTourPackageRequest{Code: "CC", Name: "California Calm"})

	// Ошибка кеша не должна прерывать выполнение
	require.NoError(t, err)
	assert.NotNil(t, pkg)
}

func TestCatalogService_GetTourPackage_NotFound(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByCode", ctx, "ZZ").Return(nil, repository.ErrTourPackageNotFound)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	pkg, err := service.GetTourPackage(ctx, "ZZ")

	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, ErrTourPackageNotFound)
	assert.Contains(t, err.Error(), "ZZ")
}

func TestCatalogService_GetTourPackageByName_Success(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByName", ctx, "Backpack Cal").Return(newTestPackage(), nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	pkg, err := service.GetTourPackageByName(ctx, "Backpack Cal")

	require.NoError(t, err)
	assert.Equal(t, "BC", pkg.Code)
}

func TestCatalogService_GetTourPackageByName_NotFound(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByName", ctx, "Nowhere").Return(nil, repository.ErrTourPackageNotFound)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	pkg, err := service.GetTourPackageByName(ctx, "Nowhere")

	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, ErrTourPackageNotFound)
}

func TestCatalogService_GetAllTourPackages_CacheHit(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	cached := []entity.TourPackage{*newTestPackage()}
	cache.On("GetPackages", ctx).Return(cached, nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	packages, err := service.GetAllTourPackages(ctx)

	require.NoError(t, err)
	assert.Len(t, packages, 1)
	// При попадании в кеш БД не трогаем
	packageRepo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestCatalogService_GetAllTourPackages_CacheMiss(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	fromDB := []entity.TourPackage{*newTestPackage()}
	cache.On("GetPackages", ctx).Return(nil, errors.New("cache miss"))
	packageRepo.On("GetAll", ctx).Return(fromDB, nil)
	cache.On("SetPackages", ctx, fromDB, packagesCacheTTL).Return(nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	packages, err := service.GetAllTourPackages(ctx)

	require.NoError(t, err)
	assert.Len(t, packages, 1)
	cache.AssertExpectations(t)
}

func TestCatalogService_UpdateTourPackage_Success(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	existing := newTestPackage()
	packageRepo.On("GetByCode", ctx, "BC").Return(existing, nil)
	packageRepo.On("Update", ctx, mock.AnythingOfType("*entity.TourPackage")).Return(nil)
	cache.On("DeletePackages", ctx).Return(nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	pkg, err := service.UpdateTourPackage(ctx, "BC", &entity.UpdateTourPackageRequest{Name: "Backpack California"})

	require.NoError(t, err)
	assert.Equal(t, "Backpack California", pkg.Name)
}

func TestCatalogService_DeleteTourPackage_HasTours(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("Delete", ctx, "BC").Return(repository.ErrTourPackageHasTours)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	err := service.DeleteTourPackage(ctx, "BC")

	assert.ErrorIs(t, err, ErrTourPackageHasTours)
	cache.AssertNotCalled(t, "DeletePackages", mock.Anything)
}

// ==================== Tour Tests ====================

func TestCatalogService_CreateTour_Success(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByCode", ctx, "BC").Return(newTestPackage(), nil)
	tourRepo.On("Create", ctx, mock.AnythingOfType("*entity.Tour")).Return(nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	req := &entity.CreateTourRequest{
		Title:           "Big Sur Retreat",
		Description:     "Three days hiking the Big Sur coastline",
		Price:           750,
		Duration:        "3 days",
		Region:          "Central Coast",
		TourPackageCode: "BC",
	}

	tour, err := service.CreateTour(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, entity.RegionCentralCoast, tour.Region)
	assert.Equal(t, "BC", tour.TourPackageCode)
}

func TestCatalogService_CreateTour_UnknownRegionDefaultsToVaries(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByCode", ctx, "BC").Return(newTestPackage(), nil)
	tourRepo.On("Create", ctx, mock.Anything).Return(nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	req := &entity.CreateTourRequest{
		Title:           "Mystery Tour",
		Price:           100,
		Duration:        "1 day",
		Region:          "Atlantis",
		TourPackageCode: "BC",
	}

	tour, err := service.CreateTour(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, entity.RegionVaries, tour.Region)
}

func TestCatalogService_CreateTour_PackageNotFound(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByCode", ctx, "ZZ").Return(nil, repository.ErrTourPackageNotFound)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	tour, err := service.CreateTour(ctx, &entity.CreateTourRequest{Title: "Orphan Tour", TourPackageCode: "ZZ"})

	assert.Nil(t, tour)
	assert.ErrorIs(t, err, ErrTourPackageNotFound)
	tourRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_GetTour_NotFound(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	tourRepo.On("GetByID", ctx, 999).Return(nil, repository.ErrTourNotFound)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	tour, err := service.GetTour(ctx, 999)

	assert.Nil(t, tour)
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestCatalogService_GetToursByPackage_Success(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByCode", ctx, "BC").Return(newTestPackage(), nil)
	tourRepo.On("GetByPackageCode", ctx, "BC").Return([]entity.Tour{*newTestTour()}, nil)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	tours, err := service.GetToursByPackage(ctx, "BC")

	require.NoError(t, err)
	assert.Len(t, tours, 1)
}

func TestCatalogService_GetToursByPackage_PackageNotFound(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	packageRepo.On("GetByCode", ctx, "ZZ").Return(nil, repository.ErrTourPackageNotFound)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	tours, err := service.GetToursByPackage(ctx, "ZZ")

	assert.Nil(t, tours)
	assert.ErrorIs(t, err, ErrTourPackageNotFound)
}

func TestCatalogService_DeleteTour_NotFound(t *testing.T) {
	ctx := context.Background()
	packageRepo := new(mocks.MockTourPackageRepository)
	tourRepo := new(mocks.MockTourRepository)
	cache := new(mocks.MockTourPackageCache)

	tourRepo.On("Delete", ctx, 999).Return(repository.ErrTourNotFound)

	service := NewCatalogService(packageRepo, tourRepo, cache)

	err := service.DeleteTour(ctx, 999)

	assert.ErrorIs(t, err, ErrTourNotFound)
}
