package health

import (
	"context"

	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}
