package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type JobApplicationRepository interface {
	Create(db *gorm.DB, application *models.JobApplication) error
	FindByJobPostForEmployer(db *gorm.DB, jobPostID, employerID string) ([]models.JobApplication, error)
}

type JobApplicationRepositoryImpl struct{}

func NewJobApplicationRepository() JobApplicationRepository {
	return &JobApplicationRepositoryImpl{}
}

func (r *JobApplicationRepositoryImpl) Create(db *gorm.DB, application *models.JobApplication) error {
	return db.Create(application).Error
}

// FindByJobPostForEmployer scopes the listing by ownership in the query
// itself: the join only matches when employerID owns the post, so a
// non-owner gets an empty result instead of an authorization error.
func (r *JobApplicationRepositoryImpl) FindByJobPostForEmployer(db *gorm.DB, jobPostID, employerID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.
		Joins("JOIN job_posts ON job_posts.id = job_applications.job_post_id").
		Where("job_applications.job_post_id = ? AND job_posts.employer_id = ?", jobPostID, employerID).
		Find(&applications).Error
	return applications, err
}
