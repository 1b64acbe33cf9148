package util

import (
	"context"
	"time"

	"explorecali/internal/app/tours/entity"
)

// TourPackageCache интерфейс для работы с Redis кешем списка пакетов
// Используется для dependency injection и упрощения тестирования
type TourPackageCache interface {
	SetPackages(ctx context.Context, packages []entity.TourPackage, ttl time.Duration) error
	GetPackages(ctx context.Context) ([]entity.TourPackage, error)
	DeletePackages(ctx context.Context) error
	Close() error
}
