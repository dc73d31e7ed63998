package handlers

import (
	"jobboard_backend/internal/services"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth           *AuthHandler
	JobPost        *JobPostHandler
	JobApplication *JobApplicationHandler
	Health         *HealthHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		Auth:           NewAuthHandler(svc.Auth),
		JobPost:        NewJobPostHandler(svc.JobPost),
		JobApplication: NewJobApplicationHandler(svc.JobApplication),
		Health:         NewHealthHandler(),
	}
}
