package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	"github.com/youssefhammani/file-rouge-final/internal/repository"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
	"github.com/youssefhammani/file-rouge-final/pkg/logger"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in *ProfileUpdate) (*models.User, error)
	SaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]SavedJobView, error)
}

// ProfileUpdate carries the optional profile fields. Password and role are
// deliberately absent; the handler rejects requests that include them.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	ProfilePicture *string
	CompanyName    *string
	Description    *string
	Logo           *string
	Location       *string
	Website        *string
	Skills         []string
	Resume         *string
}

// SavedJobView is one saved job expanded with its posting details.
type SavedJobView struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	CompanyID  uuid.UUID      `json:"companyId"`
	Location   string         `json:"location"`
	JobType    models.JobType `json:"jobType"`
	Salary     *float64       `json:"salary,omitempty"`
	PostedDate time.Time      `json:"postedDate"`
	Company    *CompanyCard   `json:"company,omitempty"`
}

type userService struct {
	userRepo  repository.UserRepository
	jobRepo   repository.JobRepository
	savedRepo repository.SavedJobRepository
}

func NewUserService(userRepo repository.UserRepository, jobRepo repository.JobRepository, savedRepo repository.SavedJobRepository) UserService {
	return &userService{userRepo: userRepo, jobRepo: jobRepo, savedRepo: savedRepo}
}

var _ UserService = (*userService)(nil)

// UpdateProfile partial-updates the actor's own record. Role and password
// never change through this path.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, in *ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := s.userRepo.GetByID(ctx, userID, &u); err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "Name is required")
		}
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailShape.MatchString(email) {
			return nil, appErr.New(appErr.CodeInvalid, "Please enter a valid email")
		}
		u.Email = email
	}
	if in.ProfilePicture != nil {
		u.ProfilePicture = *in.ProfilePicture
	}
	if in.CompanyName != nil {
		u.CompanyName = strings.TrimSpace(*in.CompanyName)
	}
	if in.Description != nil {
		u.Description = *in.Description
	}
	if in.Logo != nil {
		if err := checkURL("logo", *in.Logo); err != nil {
			return nil, err
		}
		u.Logo = *in.Logo
	}
	if in.Location != nil {
		u.Location = *in.Location
	}
	if in.Website != nil {
		if err := checkURL("website", *in.Website); err != nil {
			return nil, err
		}
		u.Website = *in.Website
	}
	if in.Skills != nil {
		u.Skills = in.Skills
	}
	if in.Resume != nil {
		if err := checkURL("resume", *in.Resume); err != nil {
			return nil, err
		}
		u.Resume = *in.Resume
	}

	if err := s.userRepo.Update(ctx, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "Email already in use")
		}
		return nil, err
	}

	logger.L().Info("profile updated", zap.String("user_id", userID.String()))
	return &u, nil
}

// SaveJob appends the job to the candidate's saved list. The composite
// unique index rejects a duplicate save.
func (s *userService) SaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	var j models.Job
	if err := s.jobRepo.GetByID(ctx, jobID, &j); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return appErr.New(appErr.CodeNotFound, "Job not found")
		}
		return err
	}

	entry := &models.SavedJob{UserID: userID, JobID: jobID}
	if err := s.savedRepo.Create(ctx, entry); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return appErr.New(appErr.CodeConflict, "Job already saved")
		}
		return err
	}

	logger.L().Info("job saved", zap.String("user_id", userID.String()), zap.String("job_id", jobID.String()))
	return nil
}

// UnsaveJob removes the job from the saved list; idempotent.
func (s *userService) UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	if err := s.savedRepo.DeleteByUserAndJob(ctx, userID, jobID); err != nil {
		return err
	}
	logger.L().Info("job unsaved", zap.String("user_id", userID.String()), zap.String("job_id", jobID.String()))
	return nil
}

func (s *userService) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]SavedJobView, error) {
	saves, err := s.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uuid.UUID, 0, len(saves))
	for _, sv := range saves {
		jobIDs = append(jobIDs, sv.JobID)
	}
	jobs, err := s.jobRepo.GetManyByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	jobsIdx := jobsByID(jobs)

	companyIDs := make([]uuid.UUID, 0, len(jobs))
	seen := map[uuid.UUID]bool{}
	for _, j := range jobs {
		if !seen[j.CompanyID] {
			seen[j.CompanyID] = true
			companyIDs = append(companyIDs, j.CompanyID)
		}
	}
	companies, err := s.userRepo.GetManyByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}
	companyIdx := usersByID(companies)

	out := make([]SavedJobView, 0, len(saves))
	for _, sv := range saves {
		j := jobsIdx[sv.JobID]
		if j == nil {
			// job was hard-deleted after being saved
			continue
		}
		out = append(out, SavedJobView{
			ID:         j.ID,
			Title:      j.Title,
			CompanyID:  j.CompanyID,
			Location:   j.Location,
			JobType:    j.JobType,
			Salary:     j.Salary,
			PostedDate: j.PostedDate,
			Company:    companyCard(companyIdx[j.CompanyID]),
		})
	}
	return out, nil
}

func checkURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return appErr.New(appErr.CodeInvalid, "Invalid "+field+" URL")
	}
	return nil
}
