package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

type SavedJobRepository interface {
	BaseRepository[models.SavedJob]
	// ListByUser returns saves in insertion order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedJob, error)
	// DeleteByUserAndJob removes a save; removing an absent entry is a no-op.
	DeleteByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) error
}

type savedJobRepository struct {
	BaseRepository[models.SavedJob]
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{BaseRepository: NewBaseRepository[models.SavedJob](db), db: db}
}

func (r *savedJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedJob, error) {
	var out []models.SavedJob
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list saved jobs failed")
	}
	return out, nil
}

func (r *savedJobRepository) DeleteByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "unsave job failed")
	}
	return nil
}

var _ SavedJobRepository = (*savedJobRepository)(nil)
