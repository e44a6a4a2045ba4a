package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	"github.com/youssefhammani/file-rouge-final/internal/repository"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

// In-memory repository fakes. They enforce the same unique constraints the
// Postgres indexes do, surfacing them as conflicts like the real layer.

type memUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *models.User) error {
	for _, other := range m.users {
		if strings.EqualFold(other.Email, u.Email) {
			return appErr.New(appErr.CodeConflict, "duplicate record")
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id any, dest *models.User) error {
	u, ok := m.users[id.(uuid.UUID)]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = *u
	return nil
}

func (m *memUserRepo) Update(_ context.Context, u *models.User) error {
	for _, other := range m.users {
		if other.ID != u.ID && strings.EqualFold(other.Email, u.Email) {
			return appErr.New(appErr.CodeConflict, "duplicate record")
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id any) error {
	if _, ok := m.users[id.(uuid.UUID)]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(m.users, id.(uuid.UUID))
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string, dest *models.User) error {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if strings.ToLower(u.Email) == email {
			*dest = *u
			return nil
		}
	}
	return appErr.New(appErr.CodeNotFound, "user not found")
}

func (m *memUserRepo) GetManyByIDs(_ context.Context, ids []uuid.UUID) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)

type memJobRepo struct {
	jobs map[uuid.UUID]*models.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[uuid.UUID]*models.Job{}}
}

func (m *memJobRepo) Create(_ context.Context, j *models.Job) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

func (m *memJobRepo) GetByID(_ context.Context, id any, dest *models.Job) error {
	j, ok := m.jobs[id.(uuid.UUID)]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = *j
	return nil
}

func (m *memJobRepo) Update(_ context.Context, j *models.Job) error {
	j.UpdatedAt = time.Now()
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

func (m *memJobRepo) Delete(_ context.Context, id any) error {
	if _, ok := m.jobs[id.(uuid.UUID)]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(m.jobs, id.(uuid.UUID))
	return nil
}

func (m *memJobRepo) ListActive(_ context.Context, q *repository.JobListQuery) ([]models.Job, int64, error) {
	var matched []models.Job
	for _, j := range m.jobs {
		if !j.IsActive {
			continue
		}
		if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
			haystack := strings.ToLower(j.Title + " " + j.Description + " " + strings.Join(j.RequiredSkills, " "))
			if !strings.Contains(haystack, s) {
				continue
			}
		}
		if l := strings.ToLower(strings.TrimSpace(q.Location)); l != "" {
			if !strings.Contains(strings.ToLower(j.Location), l) {
				continue
			}
		}
		if q.JobType != "" && string(j.JobType) != q.JobType {
			continue
		}
		if len(q.Skills) > 0 && !overlaps(j.RequiredSkills, q.Skills) {
			continue
		}
		matched = append(matched, *j)
	}
	sort.Slice(matched, func(i, k int) bool { return matched[i].PostedDate.After(matched[k].PostedDate) })

	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

func (m *memJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	for _, j := range m.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].PostedDate.After(out[k].PostedDate) })
	return out, nil
}

func (m *memJobRepo) GetManyByIDs(_ context.Context, ids []uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	for _, id := range ids {
		if j, ok := m.jobs[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

var _ repository.JobRepository = (*memJobRepo)(nil)

func overlaps(a []string, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

type memApplicationRepo struct {
	apps map[uuid.UUID]*models.Application
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{apps: map[uuid.UUID]*models.Application{}}
}

func (m *memApplicationRepo) Create(_ context.Context, a *models.Application) error {
	for _, other := range m.apps {
		if other.JobID == a.JobID && other.CandidateID == a.CandidateID {
			return appErr.New(appErr.CodeConflict, "duplicate record")
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.apps[a.ID] = &cp
	return nil
}

func (m *memApplicationRepo) GetByID(_ context.Context, id any, dest *models.Application) error {
	a, ok := m.apps[id.(uuid.UUID)]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = *a
	return nil
}

func (m *memApplicationRepo) Update(_ context.Context, a *models.Application) error {
	a.UpdatedAt = time.Now()
	cp := *a
	m.apps[a.ID] = &cp
	return nil
}

func (m *memApplicationRepo) Delete(_ context.Context, id any) error {
	if _, ok := m.apps[id.(uuid.UUID)]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(m.apps, id.(uuid.UUID))
	return nil
}

func (m *memApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range m.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].AppliedDate.After(out[k].AppliedDate) })
	return out, nil
}

func (m *memApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range m.apps {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].AppliedDate.After(out[k].AppliedDate) })
	return out, nil
}

func (m *memApplicationRepo) Exists(_ context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	for _, a := range m.apps {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	a, ok := m.apps[id]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "application not found")
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

var _ repository.ApplicationRepository = (*memApplicationRepo)(nil)

type memSavedJobRepo struct {
	saves map[uuid.UUID]*models.SavedJob
}

func newMemSavedJobRepo() *memSavedJobRepo {
	return &memSavedJobRepo{saves: map[uuid.UUID]*models.SavedJob{}}
}

func (m *memSavedJobRepo) Create(_ context.Context, s *models.SavedJob) error {
	for _, other := range m.saves {
		if other.UserID == s.UserID && other.JobID == s.JobID {
			return appErr.New(appErr.CodeConflict, "duplicate record")
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	cp := *s
	m.saves[s.ID] = &cp
	return nil
}

func (m *memSavedJobRepo) GetByID(_ context.Context, id any, dest *models.SavedJob) error {
	s, ok := m.saves[id.(uuid.UUID)]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = *s
	return nil
}

func (m *memSavedJobRepo) Update(_ context.Context, s *models.SavedJob) error {
	cp := *s
	m.saves[s.ID] = &cp
	return nil
}

func (m *memSavedJobRepo) Delete(_ context.Context, id any) error {
	if _, ok := m.saves[id.(uuid.UUID)]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(m.saves, id.(uuid.UUID))
	return nil
}

func (m *memSavedJobRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.SavedJob, error) {
	var out []models.SavedJob
	for _, s := range m.saves {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.Before(out[k].CreatedAt) })
	return out, nil
}

func (m *memSavedJobRepo) DeleteByUserAndJob(_ context.Context, userID, jobID uuid.UUID) error {
	for id, s := range m.saves {
		if s.UserID == userID && s.JobID == jobID {
			delete(m.saves, id)
			return nil
		}
	}
	return nil
}

var _ repository.SavedJobRepository = (*memSavedJobRepo)(nil)
