package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"explorecali/internal/app/tours/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tourPackageRepository struct {
	db *pgxpool.Pool // Пул соединений с PostgreSQL для работы с пакетами
}

// NewTourPackageRepository создает новый репозиторий пакетов туров
func NewTourPackageRepository(db *pgxpool.Pool) TourPackageRepository {
	return &tourPackageRepository{db: db}
}

// Create создает новый пакет в PostgreSQL
// Уникальность кода и имени обеспечивается constraint-ами
func (r *tourPackageRepository) Create(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		INSERT INTO tour_packages (code, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query, pkg.Code, pkg.Name).Scan(&pkg.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrTourPackageAlreadyExists
		}
		return fmt.Errorf("failed to create tour package: %w", err)
	}

	return nil
}

// GetByCode получает пакет по двухбуквенному коду
func (r *tourPackageRepository) GetByCode(ctx context.Context, code string) (*entity.TourPackage, error) {
	query := `SELECT code, name, created_at FROM tour_packages WHERE code = $1`

	var pkg entity.TourPackage
	err := r.db.QueryRow(ctx, query, code).Scan(
		&pkg.Code,
		&pkg.Name,
		&pkg.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTourPackageNotFound
		}
		return nil, fmt.Errorf("failed to get tour package by code: %w", err)
	}

	return &pkg, nil
}

// GetByName получает пакет по имени без учета регистра
func (r *tourPackageRepository) GetByName(ctx context.Context, name string) (*entity.TourPackage, error) {
	query := `SELECT code, name, created_at FROM tour_packages WHERE LOWER(name) = LOWER($1)`

	var pkg entity.TourPackage
	err := r.db.QueryRow(ctx, query, strings.TrimSpace(name)).Scan(
		&pkg.Code,
		&pkg.Name,
		&pkg.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTourPackageNotFound
		}
		return nil, fmt.Errorf("failed to get tour package by name: %w", err)
	}

	return &pkg, nil
}

// GetAll получает все пакеты отсортированные по коду
// Результат кешируется в Redis на уровне service layer
func (r *tourPackageRepository) GetAll(ctx context.Context) ([]entity.TourPackage, error) {
	query := `SELECT code, name, created_at FROM tour_packages ORDER BY code ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour packages: %w", err)
	}
	defer rows.Close()

	var packages []entity.TourPackage
	for rows.Next() {
		var pkg entity.TourPackage
		if err := rows.Scan(&pkg.Code, &pkg.Name, &pkg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tour package: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tour packages: %w", err)
	}

	return packages, nil
}

// Update обновляет имя пакета
func (r *tourPackageRepository) Update(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		UPDATE tour_packages
		SET name = $1
		WHERE code = $2
	`

	result, err := r.db.Exec(ctx, query, pkg.Name, pkg.Code)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrTourPackageAlreadyExists
		}
		return fmt.Errorf("failed to update tour package: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTourPackageNotFound
	}

	return nil
}

// Delete удаляет пакет из PostgreSQL
// Пакет с турами удалить нельзя: туры ссылаются на него по коду
func (r *tourPackageRepository) Delete(ctx context.Context, code string) error {
	var tourCount int
	checkQuery := `SELECT COUNT(*) FROM tours WHERE tour_package_code = $1`
	if err := r.db.QueryRow(ctx, checkQuery, code).Scan(&tourCount); err != nil {
		return fmt.Errorf("failed to check tours in package: %w", err)
	}

	if tourCount > 0 {
		return ErrTourPackageHasTours
	}

	query := `DELETE FROM tour_packages WHERE code = $1`
	result, err := r.db.Exec(ctx, query, code)
	if err != nil {
		// foreign key constraint на случай race condition
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return ErrTourPackageHasTours
		}
		return fmt.Errorf("failed to delete tour package: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTourPackageNotFound
	}

	return nil
}
