package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"explorecali/internal/app/tours/entity"
	"explorecali/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const packagesCacheKey = "tour_packages:all"

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) SetPackages(ctx context.Context, packages []entity.TourPackage, ttl time.Duration) error {
	data, err := json.Marshal(packages)
	if err != nil {
		return fmt.Errorf("failed to marshal tour packages: %w", err)
	}

	if err := r.client.Set(ctx, packagesCacheKey, data, ttl).Err(); err != nil {
		metrics.RedisErrors.WithLabelValues("tours-service", "set").Inc()
		return fmt.Errorf("failed to set tour packages in cache: %w", err)
	}

	return nil
}

func (r *RedisClient) GetPackages(ctx context.Context) ([]entity.TourPackage, error) {
	data, err := r.client.Get(ctx, packagesCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.RedisCacheMisses.WithLabelValues("tours-service", "tour_packages").Inc()
			return nil, nil
		}
		metrics.RedisErrors.WithLabelValues("tours-service", "get").Inc()
		return nil, fmt.Errorf("failed to get tour packages from cache: %w", err)
	}

	var packages []entity.TourPackage
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tour packages: %w", err)
	}

	metrics.RedisCacheHits.WithLabelValues("tours-service", "tour_packages").Inc()
	return packages, nil
}

func (r *RedisClient) DeletePackages(ctx context.Context) error {
	if err := r.client.Del(ctx, packagesCacheKey).Err(); err != nil {
		metrics.RedisErrors.WithLabelValues("tours-service", "del").Inc()
		return fmt.Errorf("failed to delete tour packages from cache: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
