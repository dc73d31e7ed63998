package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobPostNotFound = errors.New("job post not found")

type JobPostRepository interface {
	Create(db *gorm.DB, post *models.JobPost) error
	FindByID(db *gorm.DB, id string) (*models.JobPost, error)
	FindAll(db *gorm.DB) ([]models.JobPost, error)
	FindByEmployer(db *gorm.DB, employerID string) ([]models.JobPost, error)
	Save(db *gorm.DB, post *models.JobPost) error
	DeleteOwned(db *gorm.DB, id, employerID string) (bool, error)
	Exists(db *gorm.DB, id string) (bool, error)
}

type JobPostRepositoryImpl struct{}

func NewJobPostRepository() JobPostRepository {
	return &JobPostRepositoryImpl{}
}

func (r *JobPostRepositoryImpl) Create(db *gorm.DB, post *models.JobPost) error {
	return db.Create(post).Error
}

func (r *JobPostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobPost, error) {
	var post models.JobPost
	err := db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindAll returns every post, most recent first.
func (r *JobPostRepositoryImpl) FindAll(db *gorm.DB) ([]models.JobPost, error) {
	var posts []models.JobPost
	err := db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *JobPostRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string) ([]models.JobPost, error) {
	var posts []models.JobPost
	err := db.Where("employer_id = ?", employerID).Find(&posts).Error
	return posts, err
}

func (r *JobPostRepositoryImpl) Save(db *gorm.DB, post *models.JobPost) error {
	return db.Save(post).Error
}

// DeleteOwned removes the post only when it exists AND belongs to employerID,
// deleting its applications in the same transaction. A missing post and a
// foreign post both report false so non-owners cannot probe existence.
func (r *JobPostRepositoryImpl) DeleteOwned(db *gorm.DB, id, employerID string) (bool, error) {
	deleted := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var post models.JobPost
		err := tx.Where("id = ? AND employer_id = ?", id, employerID).First(&post).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("job_post_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.JobPost{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *JobPostRepositoryImpl) Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.JobPost{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
