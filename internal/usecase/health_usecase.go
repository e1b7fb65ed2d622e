package usecase

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db      *pgxpool.Pool
	signals *redis.Client
}

func NewHealthUsecase(db *pgxpool.Pool, signals *redis.Client) HealthUsecase {
	return &healthUsecase{db: db, signals: signals}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
	}
	if u.db != nil {
		if err := u.db.Ping(ctx); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
		} else {
			status["database"] = "ok"
		}
	}
	if u.signals != nil {
		if err := u.signals.Ping(ctx).Err(); err != nil {
			status["signals"] = "unreachable"
		} else {
			status["signals"] = "ok"
		}
	}
	return status
}
