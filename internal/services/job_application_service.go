package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobApplicationService interface {
	Create(db *gorm.DB, req *dto.CreateJobApplicationRequest) (*dto.JobApplicationResponse, error)
	ListForJobPost(db *gorm.DB, jobPostID, employerID string) ([]dto.JobApplicationResponse, error)
}

type JobApplicationServiceImpl struct {
	applicationRepo repositories.JobApplicationRepository
	jobPostRepo     repositories.JobPostRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider
}

func NewJobApplicationService(
	applicationRepo repositories.JobApplicationRepository,
	jobPostRepo repositories.JobPostRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) JobApplicationService {
	return &JobApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobPostRepo:     jobPostRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

func (s *JobApplicationServiceImpl) Create(db *gorm.DB, req *dto.CreateJobApplicationRequest) (*dto.JobApplicationResponse, error) {
	post, err := s.jobPostRepo.FindByID(db, req.JobPostID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, apperrors.NotFound("job post")
		}
		return nil, apperrors.DatabaseError(err)
	}

	application := &models.JobApplication{
		JobPostID:      req.JobPostID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ShortAnswer:    req.ShortAnswer,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.notifyEmployer(db, post, application)

	return toJobApplicationResponse(application), nil
}

// ListForJobPost returns the applications for jobPostID, but only when
// employerID owns the post. Anyone else gets an empty list.
func (s *JobApplicationServiceImpl) ListForJobPost(db *gorm.DB, jobPostID, employerID string) ([]dto.JobApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByJobPostForEmployer(db, jobPostID, employerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	out := make([]dto.JobApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, *toJobApplicationResponse(&applications[i]))
	}
	return out, nil
}

// notifyEmployer emails the post owner about the new application. The owner
// lookup runs on the request's DB handle; delivery happens in the background
// and never affects the response.
func (s *JobApplicationServiceImpl) notifyEmployer(db *gorm.DB, post *models.JobPost, application *models.JobApplication) {
	if s.emailProvider == nil {
		return
	}

	owner, err := s.userRepo.FindByID(db, post.EmployerID)
	if err != nil {
		logger.Warn("Failed to load job post owner for notification",
			"job_post_id", post.ID, "employer_id", post.EmployerID, "error", err)
		return
	}

	msg := &email.Email{
		To:      owner.Email,
		Subject: fmt.Sprintf("New application for %s", post.Title),
		Body: fmt.Sprintf("%s (%s) applied to your listing %q.\n\nTheir answer:\n%s\n",
			application.ApplicantName, application.ApplicantEmail, post.Title, application.ShortAnswer),
	}

	go func() {
		if err := s.emailProvider.Send(msg); err != nil {
			logger.Warn("Failed to send application notification",
				"job_post_id", post.ID, "to", owner.Email, "error", err)
		}
	}()
}

func toJobApplicationResponse(application *models.JobApplication) *dto.JobApplicationResponse {
	return &dto.JobApplicationResponse{
		ID:             application.ID,
		JobPostID:      application.JobPostID,
		ApplicantName:  application.ApplicantName,
		ApplicantEmail: application.ApplicantEmail,
		ShortAnswer:    application.ShortAnswer,
		CreatedAt:      application.CreatedAt,
	}
}
