package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
)

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()

	healthy := NewHealthUseCase(session.NewMemorySessionGateway(), "weatherapi", "key").CheckHealth(ctx)
	assert.Equal(t, model.StatusUp, healthy.Status)
	assert.Equal(t, model.StatusUp, healthy.Sessions.Status)
	assert.Equal(t, "weatherapi", healthy.Provider.Details["provider"])

	missingKey := NewHealthUseCase(session.NewMemorySessionGateway(), "openweathermap", "").CheckHealth(ctx)
	assert.Equal(t, model.StatusDown, missingKey.Status)
	assert.Equal(t, model.StatusDown, missingKey.Provider.Status)
	assert.Equal(t, "API Key is missing", missingKey.Provider.Details["error"])
}
