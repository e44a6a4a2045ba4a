package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobType enumerates the supported employment arrangements.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

// ValidJobType reports whether t is one of the known job types.
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

// Job is a posting owned by a company user. A job's applications are a
// query-time join keyed on job_id, never a stored back-reference.
type Job struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title          string         `gorm:"not null" json:"title" validate:"required"`
	Description    string         `gorm:"type:text;not null" json:"description" validate:"required"`
	CompanyID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"companyId"`
	RequiredSkills pq.StringArray `gorm:"type:text[]" json:"requiredSkills"`
	Location       string         `gorm:"not null" json:"location" validate:"required"`
	JobType        JobType        `gorm:"type:varchar(16);not null;default:'full-time'" json:"jobType"`
	Salary         *float64       `json:"salary,omitempty"`
	PostedDate     time.Time      `gorm:"not null" json:"postedDate"`
	DeadlineDate   *time.Time     `json:"deadlineDate,omitempty"`
	IsActive       bool           `gorm:"not null;default:true;index" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
