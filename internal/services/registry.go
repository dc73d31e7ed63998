package services

import (
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
)

// ServiceContainer bundles the service layer for dependency injection into
// the handlers.
type ServiceContainer struct {
	Auth           AuthService
	JobPost        JobPostService
	JobApplication JobApplicationService
}

func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobPostRepo := repositories.NewJobPostRepository()
	applicationRepo := repositories.NewJobApplicationRepository()

	return &ServiceContainer{
		Auth:           NewAuthService(userRepo),
		JobPost:        NewJobPostService(jobPostRepo, userRepo),
		JobApplication: NewJobApplicationService(applicationRepo, jobPostRepo, userRepo, emailProvider),
	}
}
