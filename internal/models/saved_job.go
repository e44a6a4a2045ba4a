package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is one entry of a candidate's saved-jobs list. The composite
// unique index rejects duplicate saves at the storage layer; CreatedAt
// preserves insertion order for listing.
type SavedJob struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"userId"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"jobId"`
	CreatedAt time.Time `json:"createdAt"`
}
