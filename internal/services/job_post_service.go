package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobPostService interface {
	Create(db *gorm.DB, req *dto.CreateJobPostRequest) (*dto.JobPostResponse, error)
	List(db *gorm.DB) ([]dto.JobPostResponse, error)
	Get(db *gorm.DB, id string) (*dto.JobPostResponse, error)
	ListByEmployer(db *gorm.DB, employerID string) ([]dto.JobPostResponse, error)
	Update(db *gorm.DB, id string, req *dto.UpdateJobPostRequest) (*dto.JobPostResponse, error)
	Delete(db *gorm.DB, id, employerID string) (bool, error)
}

type JobPostServiceImpl struct {
	jobPostRepo repositories.JobPostRepository
	userRepo    repositories.UserRepository
}

func NewJobPostService(jobPostRepo repositories.JobPostRepository, userRepo repositories.UserRepository) JobPostService {
	return &JobPostServiceImpl{jobPostRepo: jobPostRepo, userRepo: userRepo}
}

func (s *JobPostServiceImpl) Create(db *gorm.DB, req *dto.CreateJobPostRequest) (*dto.JobPostResponse, error) {
	exists, err := s.userRepo.Exists(db, req.EmployerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if !exists {
		return nil, apperrors.NotFound("employer")
	}

	jobType := models.JobType(req.JobType)
	if !jobType.Valid() {
		return nil, apperrors.ErrInvalidJobType
	}

	tags, err := marshalTags(req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	post := &models.JobPost{
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Description: req.Description,
		Location:    req.Location,
		JobType:     jobType,
		Tags:        tags,
		EmployerID:  req.EmployerID,
	}

	if err := s.jobPostRepo.Create(db, post); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return toJobPostResponse(post), nil
}

func (s *JobPostServiceImpl) List(db *gorm.DB) ([]dto.JobPostResponse, error) {
	posts, err := s.jobPostRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toJobPostResponses(posts), nil
}

// Get returns (nil, nil) when no post has the given id.
func (s *JobPostServiceImpl) Get(db *gorm.DB, id string) (*dto.JobPostResponse, error) {
	post, err := s.jobPostRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, nil
		}
		return nil, apperrors.DatabaseError(err)
	}
	return toJobPostResponse(post), nil
}

func (s *JobPostServiceImpl) ListByEmployer(db *gorm.DB, employerID string) ([]dto.JobPostResponse, error) {
	posts, err := s.jobPostRepo.FindByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toJobPostResponses(posts), nil
}

// Update applies a partial update and returns (nil, nil) when the post does
// not exist. It does not check ownership: any caller who knows a post id may
// edit it. Deletion is the only owner-gated mutation.
func (s *JobPostServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateJobPostRequest) (*dto.JobPostResponse, error) {
	post, err := s.jobPostRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, nil
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.CompanyName != nil {
		post.CompanyName = *req.CompanyName
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.JobType != nil {
		jobType := models.JobType(*req.JobType)
		if !jobType.Valid() {
			return nil, apperrors.ErrInvalidJobType
		}
		post.JobType = jobType
	}
	if req.Tags != nil {
		tags, err := marshalTags(req.Tags)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		post.Tags = tags
	}

	if err := s.jobPostRepo.Save(db, post); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return toJobPostResponse(post), nil
}

func (s *JobPostServiceImpl) Delete(db *gorm.DB, id, employerID string) (bool, error) {
	deleted, err := s.jobPostRepo.DeleteOwned(db, id, employerID)
	if err != nil {
		return false, apperrors.DatabaseError(err)
	}
	return deleted, nil
}

func marshalTags(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func toJobPostResponse(post *models.JobPost) *dto.JobPostResponse {
	tags := []string{}
	if len(post.Tags) > 0 {
		if err := json.Unmarshal(post.Tags, &tags); err != nil {
			logger.Warn("Failed to decode job post tags", "job_post_id", post.ID, "error", err)
			tags = []string{}
		}
	}

	return &dto.JobPostResponse{
		ID:          post.ID,
		Title:       post.Title,
		CompanyName: post.CompanyName,
		Description: post.Description,
		Location:    post.Location,
		JobType:     string(post.JobType),
		Tags:        tags,
		EmployerID:  post.EmployerID,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func toJobPostResponses(posts []models.JobPost) []dto.JobPostResponse {
	out := make([]dto.JobPostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *toJobPostResponse(&posts[i]))
	}
	return out
}
