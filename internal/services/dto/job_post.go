package dto

import (
	"time"
)

// --- Job Post Requests ---

type CreateJobPostRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	CompanyName string   `json:"company_name" validate:"required,min=1"`
	Description string   `json:"description" validate:"required,min=1"`
	Location    string   `json:"location" validate:"required,min=1"`
	JobType     string   `json:"job_type" validate:"required,is-job-type"`
	Tags        []string `json:"tags"`
	EmployerID  string   `json:"employer_id" validate:"required"`
}

// UpdateJobPostRequest carries only the fields to change; nil means "keep
// the current value". Tags follow slice semantics: nil keeps, empty clears.
type UpdateJobPostRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	CompanyName *string  `json:"company_name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,min=1"`
	JobType     *string  `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	Tags        []string `json:"tags,omitempty"`
}

type DeleteJobPostRequest struct {
	EmployerID string `json:"employer_id" validate:"required"`
}

// --- Job Post Responses ---

type JobPostResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	Tags        []string  `json:"tags"`
	EmployerID  string    `json:"employer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeleteJobPostResponse struct {
	Deleted bool `json:"deleted"`
}
