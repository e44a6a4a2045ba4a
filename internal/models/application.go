package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of an application. All four states are
// mutually reachable; there is no terminal state.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusRejected ApplicationStatus = "rejected"
	StatusAccepted ApplicationStatus = "accepted"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application records a candidate applying to a job. The composite unique
// index on (job_id, candidate_id) is the storage-level guarantee that a
// candidate applies to a job at most once; concurrent duplicate writes lose
// against the index, not against an application-level pre-check.
type Application struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	JobID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"jobId"`
	CandidateID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"candidateId"`
	CoverLetter string            `gorm:"type:text" json:"coverLetter,omitempty"`
	ResumeLink  string            `gorm:"not null" json:"resumeLink" validate:"required"`
	Status      ApplicationStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	AppliedDate time.Time         `gorm:"not null" json:"appliedDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
