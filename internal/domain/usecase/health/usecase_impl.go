package health

import (
	"context"

	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
)

type healthUseCase struct {
	sessionGateway session.SessionGateway
	provider       string
	apiKey         string
}

// NewHealthUseCase reports the session store and whether the weather provider has a key configured.
// The provider itself is never called.
func NewHealthUseCase(sessionGateway session.SessionGateway, provider string, apiKey string) UseCase {
	return &healthUseCase{
		sessionGateway: sessionGateway,
		provider:       provider,
		apiKey:         apiKey,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	sessionHealth := useCase.sessionGateway.Health(ctx)
	providerHealth := useCase.providerHealth()

	overallStatus := model.StatusUp
	if sessionHealth.Status != model.StatusUp || providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Sessions: sessionHealth,
		Provider: providerHealth,
	}
}

func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	details := map[string]string{"provider": useCase.provider}
	if useCase.apiKey == "" {
		details["error"] = model.MessageMissingCredential
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
