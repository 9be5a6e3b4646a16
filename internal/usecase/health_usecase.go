package usecase

import (
	"context"

	"inboxops-contact-api/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender domain.EmailSender
}

func NewHealthUsecase(sender domain.EmailSender) HealthUsecase {
	return &healthUsecase{sender: sender}
}

// Check reports liveness plus whether submissions can currently be relayed.
// It never calls the provider.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"email":  "configured",
	}
	if !u.sender.IsConfigured() {
		status["email"] = "missing_api_key"
	}
	return status
}
