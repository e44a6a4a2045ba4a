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

type ApplicationService interface {
	Apply(ctx context.Context, candidateID, jobID uuid.UUID, in *ApplyInput) (*models.Application, error)
	ListForJob(ctx context.Context, actor models.Actor, jobID uuid.UUID) ([]ApplicationWithCandidate, error)
	ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]ApplicationWithJob, error)
	UpdateStatus(ctx context.Context, actor models.Actor, applicationID uuid.UUID, status string) (*ApplicationWithCandidate, error)
}

type ApplyInput struct {
	CoverLetter string
	ResumeLink  string
}

// ApplicationWithCandidate is an application row with the candidate's card
// attached, shown to the company reviewing a job's applications.
type ApplicationWithCandidate struct {
	models.Application
	Candidate *CandidateCard `json:"candidate,omitempty"`
}

// JobSummary is the job shape attached to a candidate's application listing.
type JobSummary struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	CompanyID uuid.UUID      `json:"companyId"`
	Location  string         `json:"location"`
	JobType   models.JobType `json:"jobType"`
	Salary    *float64       `json:"salary,omitempty"`
	Company   *CompanyCard   `json:"company,omitempty"`
}

// ApplicationWithJob is an application row with its job summary attached,
// shown to the candidate.
type ApplicationWithJob struct {
	models.Application
	Job *JobSummary `json:"job,omitempty"`
}

type applicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
}

func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository, userRepo repository.UserRepository) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo, userRepo: userRepo}
}

var _ ApplicationService = (*applicationService)(nil)

// Apply submits an application to an active job. The existence pre-check is
// a fast path for a friendly message; the unique (job_id, candidate_id)
// index is what rejects a concurrent duplicate.
func (s *applicationService) Apply(ctx context.Context, candidateID, jobID uuid.UUID, in *ApplyInput) (*models.Application, error) {
	if strings.TrimSpace(in.ResumeLink) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Resume link is required")
	}

	var j models.Job
	if err := s.jobRepo.GetByID(ctx, jobID, &j); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Job not found or no longer active")
		}
		return nil, err
	}
	if !j.IsActive {
		return nil, appErr.New(appErr.CodeNotFound, "Job not found or no longer active")
	}

	exists, err := s.appRepo.Exists(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, appErr.New(appErr.CodeConflict, "You have already applied for this job")
	}

	a := &models.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: in.CoverLetter,
		ResumeLink:  in.ResumeLink,
		Status:      models.StatusPending,
		AppliedDate: time.Now(),
	}

	if err := s.appRepo.Create(ctx, a); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "You have already applied for this job")
		}
		return nil, err
	}

	metrics.RecordApplicationSubmitted()
	logger.L().Info("application submitted",
		zap.String("application_id", a.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("candidate_id", candidateID.String()),
	)
	return a, nil
}

// ListForJob returns a job's applications, newest first, with candidate
// cards attached. Only the job's owner or an admin may see them.
func (s *applicationService) ListForJob(ctx context.Context, actor models.Actor, jobID uuid.UUID) ([]ApplicationWithCandidate, error) {
	var j models.Job
	if err := s.jobRepo.GetByID(ctx, jobID, &j); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Job not found")
		}
		return nil, err
	}

	if !actor.OwnsOrAdmin(j.CompanyID) {
		return nil, appErr.New(appErr.CodeForbidden, "Not authorized to view these applications")
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return attachCandidates(ctx, s.userRepo, apps)
}

// ListForCandidate returns the candidate's applications, newest first, with
// job summaries and the posting companies' cards attached.
func (s *applicationService) ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]ApplicationWithJob, error) {
	apps, err := s.appRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uuid.UUID, 0, len(apps))
	seen := map[uuid.UUID]bool{}
	for _, a := range apps {
		if !seen[a.JobID] {
			seen[a.JobID] = true
			jobIDs = append(jobIDs, a.JobID)
		}
	}
	jobs, err := s.jobRepo.GetManyByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	jobsIdx := jobsByID(jobs)

	companyIDs := make([]uuid.UUID, 0, len(jobs))
	seenCompany := map[uuid.UUID]bool{}
	for _, j := range jobs {
		if !seenCompany[j.CompanyID] {
			seenCompany[j.CompanyID] = true
			companyIDs = append(companyIDs, j.CompanyID)
		}
	}
	companies, err := s.userRepo.GetManyByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}
	companyIdx := usersByID(companies)

	out := make([]ApplicationWithJob, 0, len(apps))
	for _, a := range apps {
		row := ApplicationWithJob{Application: a}
		if j := jobsIdx[a.JobID]; j != nil {
			row.Job = &JobSummary{
				ID:        j.ID,
				Title:     j.Title,
				CompanyID: j.CompanyID,
				Location:  j.Location,
				JobType:   j.JobType,
				Salary:    j.Salary,
				Company:   companyCard(companyIdx[j.CompanyID]),
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// UpdateStatus moves an application to any of the four statuses. Ownership
// is resolved through the application's job; the owning company or an admin
// may set any status, including back to pending.
func (s *applicationService) UpdateStatus(ctx context.Context, actor models.Actor, applicationID uuid.UUID, status string) (*ApplicationWithCandidate, error) {
	newStatus := models.ApplicationStatus(status)
	if !models.ValidApplicationStatus(newStatus) {
		return nil, appErr.New(appErr.CodeInvalid, "Status must be pending, reviewed, rejected or accepted")
	}

	var a models.Application
	if err := s.appRepo.GetByID(ctx, applicationID, &a); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Application not found")
		}
		return nil, err
	}

	var j models.Job
	if err := s.jobRepo.GetByID(ctx, a.JobID, &j); err != nil {
		return nil, err
	}

	if !actor.OwnsOrAdmin(j.CompanyID) {
		return nil, appErr.New(appErr.CodeForbidden, "Not authorized to update this application")
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, newStatus); err != nil {
		return nil, err
	}
	a.Status = newStatus

	var candidate models.User
	if err := s.userRepo.GetByID(ctx, a.CandidateID, &candidate); err != nil && !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, err
	}

	metrics.RecordStatusChange(string(newStatus))
	logger.L().Info("application status updated",
		zap.String("application_id", applicationID.String()),
		zap.String("status", string(newStatus)),
		zap.String("actor_id", actor.ID.String()),
	)
	return &ApplicationWithCandidate{Application: a, Candidate: candidateCard(&candidate)}, nil
}

// attachCandidates expands applications with their candidates' cards in one
// batched lookup.
func attachCandidates(ctx context.Context, users repository.UserRepository, apps []models.Application) ([]ApplicationWithCandidate, error) {
	ids := make([]uuid.UUID, 0, len(apps))
	seen := map[uuid.UUID]bool{}
	for _, a := range apps {
		if !seen[a.CandidateID] {
			seen[a.CandidateID] = true
			ids = append(ids, a.CandidateID)
		}
	}
	candidates, err := users.GetManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	idx := usersByID(candidates)

	out := make([]ApplicationWithCandidate, 0, len(apps))
	for _, a := range apps {
		out = append(out, ApplicationWithCandidate{Application: a, Candidate: candidateCard(idx[a.CandidateID])})
	}
	return out, nil
}
