package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

type ApplicationRepository interface {
	BaseRepository[models.Application]
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Application, error)
	// Exists is a UX fast-path only; the unique index on (job_id,
	// candidate_id) remains the correctness guarantee under concurrency.
	Exists(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error
}

type applicationRepository struct {
	BaseRepository[models.Application]
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{BaseRepository: NewBaseRepository[models.Application](db), db: db}
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("applied_date DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list applications by job failed")
	}
	return out, nil
}

func (r *applicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	if err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Order("applied_date DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list applications by candidate failed")
	}
	return out, nil
}

func (r *applicationRepository) Exists(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		Count(&count).Error
	if err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "check application exists failed")
	}
	return count > 0, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update application status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "application not found")
	}
	return nil
}

var _ ApplicationRepository = (*applicationRepository)(nil)
