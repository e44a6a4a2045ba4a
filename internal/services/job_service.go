package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	"github.com/youssefhammani/file-rouge-final/internal/observability/metrics"
	"github.com/youssefhammani/file-rouge-final/internal/repository"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
	"github.com/youssefhammani/file-rouge-final/pkg/logger"
)

type JobService interface {
	Create(ctx context.Context, companyID uuid.UUID, in *CreateJobInput) (*models.Job, error)
	List(ctx context.Context, f *JobFilters) (*JobPage, error)
	Get(ctx context.Context, id uuid.UUID) (*JobDetail, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, in *UpdateJobInput) (*models.Job, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	ListForCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error)
}

type CreateJobInput struct {
	Title          string
	Description    string
	RequiredSkills []string
	Location       string
	JobType        string
	Salary         *float64
	DeadlineDate   *time.Time
	IsActive       *bool
}

type UpdateJobInput struct {
	Title          *string
	Description    *string
	RequiredSkills []string
	Location       *string
	JobType        *string
	Salary         *float64
	DeadlineDate   *time.Time
	IsActive       *bool
}

type JobFilters struct {
	Search   string
	Location string
	JobType  string
	Skills   []string
	Page     int
	Limit    int
}

// JobWithCompany is a listing row with the owning company's public fields.
type JobWithCompany struct {
	models.Job
	Company *CompanyPublic `json:"company,omitempty"`
}

// JobPage is one page of the public listing.
type JobPage struct {
	Jobs       []JobWithCompany
	Total      int64
	Page       int
	TotalPages int
}

// JobDetail is the single-job expanded view.
type JobDetail struct {
	models.Job
	Company      *CompanyPublic             `json:"company,omitempty"`
	Applications []ApplicationWithCandidate `json:"applications"`
}

type jobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	appRepo  repository.ApplicationRepository
}

func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, appRepo repository.ApplicationRepository) JobService {
	return &jobService{jobRepo: jobRepo, userRepo: userRepo, appRepo: appRepo}
}

var _ JobService = (*jobService)(nil)

// Create posts a new job for the company. The owner is always the acting
// company; client-supplied company ids are never trusted.
func (s *jobService) Create(ctx context.Context, companyID uuid.UUID, in *CreateJobInput) (*models.Job, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Title, description and location are required")
	}

	jobType := models.JobTypeFullTime
	if in.JobType != "" {
		jobType = models.JobType(in.JobType)
		if !models.ValidJobType(jobType) {
			return nil, appErr.New(appErr.CodeInvalid, "Invalid job type")
		}
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	j := &models.Job{
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		CompanyID:      companyID,
		RequiredSkills: in.RequiredSkills,
		Location:       in.Location,
		JobType:        jobType,
		Salary:         in.Salary,
		PostedDate:     time.Now(),
		DeadlineDate:   in.DeadlineDate,
		IsActive:       isActive,
	}

	if err := s.jobRepo.Create(ctx, j); err != nil {
		return nil, err
	}

	metrics.RecordJobCreated()
	logger.L().Info("job created", zap.String("job_id", j.ID.String()), zap.String("company_id", companyID.String()))
	return j, nil
}

// List returns active jobs matching the filters, newest first, with the
// owning companies' public fields attached.
func (s *jobService) List(ctx context.Context, f *JobFilters) (*JobPage, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	jobs, total, err := s.jobRepo.ListActive(ctx, &repository.JobListQuery{
		Search:   f.Search,
		Location: f.Location,
		JobType:  f.JobType,
		Skills:   f.Skills,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	companies, err := s.companiesFor(ctx, jobs)
	if err != nil {
		return nil, err
	}

	rows := make([]JobWithCompany, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, JobWithCompany{Job: j, Company: companyPublic(companies[j.CompanyID], false)})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &JobPage{Jobs: rows, Total: total, Page: page, TotalPages: totalPages}, nil
}

// Get returns the job with its company details and applications attached.
// Unlike List, a direct fetch is not filtered by isActive.
func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*JobDetail, error) {
	var j models.Job
	if err := s.jobRepo.GetByID(ctx, id, &j); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Job not found")
		}
		return nil, err
	}

	var company models.User
	if err := s.userRepo.GetByID(ctx, j.CompanyID, &company); err != nil && !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, err
	}

	apps, err := s.appRepo.ListByJob(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	expanded, err := attachCandidates(ctx, s.userRepo, apps)
	if err != nil {
		return nil, err
	}

	return &JobDetail{Job: j, Company: companyPublic(&company, true), Applications: expanded}, nil
}

func (s *jobService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, in *UpdateJobInput) (*models.Job, error) {
	var j models.Job
	if err := s.jobRepo.GetByID(ctx, id, &j); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Job not found")
		}
		return nil, err
	}

	if !actor.OwnsOrAdmin(j.CompanyID) {
		return nil, appErr.New(appErr.CodeForbidden, "Not authorized to update this job")
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "Title is required")
		}
		j.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "Description is required")
		}
		j.Description = *in.Description
	}
	if in.Location != nil {
		if strings.TrimSpace(*in.Location) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "Location is required")
		}
		j.Location = *in.Location
	}
	if in.RequiredSkills != nil {
		j.RequiredSkills = in.RequiredSkills
	}
	if in.JobType != nil {
		jt := models.JobType(*in.JobType)
		if !models.ValidJobType(jt) {
			return nil, appErr.New(appErr.CodeInvalid, "Invalid job type")
		}
		j.JobType = jt
	}
	if in.Salary != nil {
		j.Salary = in.Salary
	}
	if in.DeadlineDate != nil {
		j.DeadlineDate = in.DeadlineDate
	}
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}

	if err := s.jobRepo.Update(ctx, &j); err != nil {
		return nil, err
	}

	logger.L().Info("job updated", zap.String("job_id", j.ID.String()), zap.String("actor_id", actor.ID.String()))
	return &j, nil
}

func (s *jobService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	var j models.Job
	if err := s.jobRepo.GetByID(ctx, id, &j); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return appErr.New(appErr.CodeNotFound, "Job not found")
		}
		return err
	}

	if !actor.OwnsOrAdmin(j.CompanyID) {
		return appErr.New(appErr.CodeForbidden, "Not authorized to delete this job")
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.L().Info("job deleted", zap.String("job_id", id.String()), zap.String("actor_id", actor.ID.String()))
	return nil
}

func (s *jobService) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]models.Job, error) {
	return s.jobRepo.ListByCompany(ctx, companyID)
}

func (s *jobService) companiesFor(ctx context.Context, jobs []models.Job) (map[uuid.UUID]*models.User, error) {
	seen := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		if !seen[j.CompanyID] {
			seen[j.CompanyID] = true
			ids = append(ids, j.CompanyID)
		}
	}
	users, err := s.userRepo.GetManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return usersByID(users), nil
}
