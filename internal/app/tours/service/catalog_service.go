package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"explorecali/internal/app/tours/entity"
	"explorecali/internal/app/tours/repository"
	"explorecali/internal/app/tours/util"
	"explorecali/pkg/logger"
)

const packagesCacheTTL = time.Hour

// CatalogService обрабатывает бизнес-логику каталога туров.
// Координирует работу репозиториев и Redis кеша списка пакетов
type CatalogService struct {
	packageRepo repository.TourPackageRepository
	tourRepo    repository.TourRepository
	cache       util.TourPackageCache
}

// NewCatalogService создает новый сервис каталога с внедрением зависимостей
func NewCatalogService(
	packageRepo repository.TourPackageRepository,
	tourRepo repository.TourRepository,
	cache util.TourPackageCache,
) *CatalogService {
	return &CatalogService{
		packageRepo: packageRepo,
		tourRepo:    tourRepo,
		cache:       cache,
	}
}

// === TOUR PACKAGES ===

// CreateTourPackage создает новый пакет и инвалидирует кеш
func (s *CatalogService) CreateTourPackage(ctx context.Context, req *entity.CreateTourPackageRequest) (*entity.TourPackage, error) {
	pkg := &entity.TourPackage{
		Code: req.Code,
		Name: req.Name,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrTourPackageAlreadyExists) {
			return nil, fmt.Errorf("package %s: %w", req.Code, ErrTourPackageAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create tour package: %w", err)
	}

	s.invalidatePackagesCache(ctx)

	return pkg, nil
}

// GetTourPackage получает пакет по коду
func (s *CatalogService) GetTourPackage(ctx context.Context, code string) (*entity.TourPackage, error) {
	pkg, err := s.packageRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrTourPackageNotFound) {
			return nil, fmt.Errorf("package %s: %w", code, ErrTourPackageNotFound)
		}
		return nil, fmt.Errorf("failed to get tour package: %w", err)
	}

	return pkg, nil
}

// GetTourPackageByName ищет пакет по имени без учета регистра
func (s *CatalogService) GetTourPackageByName(ctx context.Context, name string) (*entity.TourPackage, error) {
	pkg, err := s.packageRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrTourPackageNotFound) {
			return nil, fmt.Errorf("package %q: %w", name, ErrTourPackageNotFound)
		}
		return nil, fmt.Errorf("failed to get tour package: %w", err)
	}

	return pkg, nil
}

// GetAllTourPackages получает все пакеты с кешированием в Redis.
// Сначала проверяет кеш, при промахе загружает из БД и кеширует
func (s *CatalogService) GetAllTourPackages(ctx context.Context) ([]entity.TourPackage, error) {
	packages, err := s.cache.GetPackages(ctx)
	if err == nil && len(packages) > 0 {
		return packages, nil
	}

	packages, err = s.packageRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour packages: %w", err)
	}

	// Данные получены из БД, проблемы с кешем не критичны
	if err := s.cache.SetPackages(ctx, packages, packagesCacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache tour packages")
	}

	return packages, nil
}

// UpdateTourPackage переименовывает пакет и инвалидирует кеш
func (s *CatalogService) UpdateTourPackage(ctx context.Context, code string, req *entity.UpdateTourPackageRequest) (*entity.TourPackage, error) {
	pkg, err := s.packageRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrTourPackageNotFound) {
			return nil, fmt.Errorf("package %s: %w", code, ErrTourPackageNotFound)
		}
		return nil, fmt.Errorf("failed to get tour package: %w", err)
	}

	pkg.Name = req.Name

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrTourPackageAlreadyExists) {
			return nil, fmt.Errorf("package %s: %w", code, ErrTourPackageAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update tour package: %w", err)
	}

	s.invalidatePackagesCache(ctx)

	return pkg, nil
}

// DeleteTourPackage удаляет пакет и инвалидирует кеш
func (s *CatalogService) DeleteTourPackage(ctx context.Context, code string) error {
	if err := s.packageRepo.Delete(ctx, code); err != nil {
		if errors.Is(err, repository.ErrTourPackageNotFound) {
			return fmt.Errorf("package %s: %w", code, ErrTourPackageNotFound)
		}
		if errors.Is(err, repository.ErrTourPackageHasTours) {
			return fmt.Errorf("package %s: %w", code, ErrTourPackageHasTours)
		}
		return fmt.Errorf("failed to delete tour package: %w", err)
	}

	s.invalidatePackagesCache(ctx)

	return nil
}

// === TOURS ===

// CreateTour создает новый тур.
// Проверяет существование пакета перед созданием
func (s *CatalogService) CreateTour(ctx context.Context, req *entity.CreateTourRequest) (*entity.Tour, error) {
	if _, err := s.packageRepo.GetByCode(ctx, req.TourPackageCode); err != nil {
		if errors.Is(err, repository.ErrTourPackageNotFound) {
			return nil, fmt.Errorf("package %s: %w", req.TourPackageCode, ErrTourPackageNotFound)
		}
		return nil, fmt.Errorf("failed to verify tour package: %w", err)
	}

	tour := &entity.Tour{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Duration:        req.Duration,
		TourPackageCode: req.TourPackageCode,
		Region:          entity.RegionVaries,
	}
	if region := entity.FindRegionByLabel(req.Region); region != nil {
		tour.Region = *region
	}

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	return tour, nil
}

// GetTour получает тур по ID
func (s *CatalogService) GetTour(ctx context.Context, id int) (*entity.Tour, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return nil, fmt.Errorf("tour %d: %w", id, ErrTourNotFound)
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	return tour, nil
}

// GetAllTours получает все туры
func (s *CatalogService) GetAllTours(ctx context.Context) ([]entity.Tour, error) {
	tours, err := s.tourRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tours: %w", err)
	}

	return tours, nil
}

// GetToursByPackage получает туры пакета.
// Проверяет существование пакета, чтобы отличить пустой пакет от несуществующего
func (s *CatalogService) GetToursByPackage(ctx context.Context, code string) ([]entity.Tour, error) {
	if _, err := s.packageRepo.GetByCode(ctx, code); err != nil {
		if errors.Is(err, repository.ErrTourPackageNotFound) {
			return nil, fmt.Errorf("package %s: %w", code, ErrTourPackageNotFound)
		}
		return nil, fmt.Errorf("failed to verify tour package: %w", err)
	}

	tours, err := s.tourRepo.GetByPackageCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get tours: %w", err)
	}

	return tours, nil
}

// DeleteTour удаляет тур
func (s *CatalogService) DeleteTour(ctx context.Context, id int) error {
	if err := s.tourRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return fmt.Errorf("tour %d: %w", id, ErrTourNotFound)
		}
		return fmt.Errorf("failed to delete tour: %w", err)
	}

	return nil
}

// invalidatePackagesCache сбрасывает кеш списка пакетов после мутации
func (s *CatalogService) invalidatePackagesCache(ctx context.Context) {
	if err := s.cache.DeletePackages(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate tour packages cache")
	}
}
