package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobApplication is an unauthenticated submission against a job post.
// Applications are never updated or deleted individually; they go away only
// when their job post is deleted.
type JobApplication struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	JobPostID      string    `gorm:"type:uuid;not null;index" json:"job_post_id"`
	ApplicantName  string    `gorm:"not null" json:"applicant_name"`
	ApplicantEmail string    `gorm:"not null" json:"applicant_email"`
	ShortAnswer    string    `gorm:"not null" json:"short_answer"`
	CreatedAt      time.Time `json:"created_at"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
