package dto

import (
	"time"
)

// --- Job Application Requests ---

type CreateJobApplicationRequest struct {
	JobPostID      string `json:"job_post_id" validate:"required"`
	ApplicantName  string `json:"applicant_name" validate:"required,min=1"`
	ApplicantEmail string `json:"applicant_email" validate:"required,email"`
	ShortAnswer    string `json:"short_answer" validate:"required,min=1"`
}

// --- Job Application Responses ---

type JobApplicationResponse struct {
	ID             string    `json:"id"`
	JobPostID      string    `json:"job_post_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	ShortAnswer    string    `json:"short_answer"`
	CreatedAt      time.Time `json:"created_at"`
}
