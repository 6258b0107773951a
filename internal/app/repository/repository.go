package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var ctx = context.Background()

type Repository struct {
	db    *gorm.DB
	redis *redis.Client
}

// New — подключение к Postgres и (опционально) к Redis для кеша записей.
// Пустой redisEndpoint отключает кеширование.
func New(dsn string, redisEndpoint string, redisPassword string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if redisEndpoint != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisEndpoint,
			Password: redisPassword,
			DB:       0,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, err
		}
	}

	return &Repository{
		db:    db,
		redis: rdb,
	}, nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}
