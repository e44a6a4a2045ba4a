package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

// JobListQuery carries the public listing filters. Offset/Limit are already
// resolved from page/limit by the service.
type JobListQuery struct {
	Search   string
	Location string
	JobType  string
	Skills   []string
	Offset   int
	Limit    int
}

type JobRepository interface {
	BaseRepository[models.Job]
	// ListActive returns active jobs matching the query ordered by
	// postedDate descending, plus the total match count for pagination.
	ListActive(ctx context.Context, q *JobListQuery) ([]models.Job, int64, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error)
	GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Job, error)
}

type jobRepository struct {
	BaseRepository[models.Job]
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{BaseRepository: NewBaseRepository[models.Job](db), db: db}
}

func (r *jobRepository) ListActive(ctx context.Context, q *JobListQuery) ([]models.Job, int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Job{}).Where("is_active = true")

	if s := strings.TrimSpace(q.Search); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where(
			"title ILIKE ? OR description ILIKE ? OR array_to_string(required_skills, ' ') ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if l := strings.TrimSpace(q.Location); l != "" {
		tx = tx.Where("location ILIKE ?", "%"+l+"%")
	}
	if q.JobType != "" {
		tx = tx.Where("job_type = ?", q.JobType)
	}
	if len(q.Skills) > 0 {
		// any-of semantics: the job matches when the arrays overlap
		tx = tx.Where("required_skills && ?", pq.Array(q.Skills))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count jobs failed")
	}

	var out []models.Job
	if err := tx.Order("posted_date DESC").Offset(q.Offset).Limit(q.Limit).Find(&out).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "list jobs failed")
	}
	return out, total, nil
}

// ListByCompany returns every job the company posted, active or not. Backs
// the company's own management view.
func (r *jobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("posted_date DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list jobs by company failed")
	}
	return out, nil
}

func (r *jobRepository) GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Job
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get jobs by ids failed")
	}
	return out, nil
}
