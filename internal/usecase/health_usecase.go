package usecase

import (
	"context"
	"time"
)

// Pinger is the slice of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthUsecase(db Pinger) HealthUsecase {
	return &healthUsecase{db: db, timeout: 2 * time.Second}
}

// Check reports overall status and whether the store answered a ping.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.db.Ping(ctx); err != nil {
		return map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		}, false
	}
	return map[string]string{
		"status":   "ok",
		"database": "ok",
	}, true
}
