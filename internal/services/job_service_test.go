package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

type jobFixture struct {
	users *memUserRepo
	jobs  *memJobRepo
	apps  *memApplicationRepo
	svc   JobService

	company models.User
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	f := &jobFixture{
		users: newMemUserRepo(),
		jobs:  newMemJobRepo(),
		apps:  newMemApplicationRepo(),
	}
	f.svc = NewJobService(f.jobs, f.users, f.apps)
	f.company = models.User{
		Name:        "Acme Owner",
		Email:       "owner@acme.io",
		Role:        models.RoleCompany,
		CompanyName: "Acme",
		Logo:        "https://acme.io/logo.png",
		Location:    "Berlin",
		Description: "We make everything",
		Website:     "https://acme.io",
	}
	if err := f.users.Create(context.Background(), &f.company); err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return f
}

func (f *jobFixture) post(t *testing.T, in CreateJobInput) *models.Job {
	t.Helper()
	j, err := f.svc.Create(context.Background(), f.company.ID, &in)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return j
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	j, err := f.svc.Create(ctx, f.company.ID, &CreateJobInput{
		Title:          "Go Engineer",
		Description:    "Build services",
		Location:       "Berlin",
		RequiredSkills: []string{"go", "postgres"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if j.CompanyID != f.company.ID {
		t.Fatalf("owner must be the acting company")
	}
	if j.JobType != models.JobTypeFullTime {
		t.Fatalf("expected default full-time, got %q", j.JobType)
	}
	if !j.IsActive {
		t.Fatalf("expected active by default")
	}
	if j.PostedDate.IsZero() {
		t.Fatalf("expected posted date to be set")
	}

	if _, err := f.svc.Create(ctx, f.company.ID, &CreateJobInput{Title: "X"}); !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid for missing fields, got %v", err)
	}
	if _, err := f.svc.Create(ctx, f.company.ID, &CreateJobInput{
		Title: "X", Description: "Y", Location: "Z", JobType: "gig",
	}); !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid job type, got %v", err)
	}
}

func TestListJobsFiltersAndPagination(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	inactive := false
	f.post(t, CreateJobInput{Title: "Go Engineer", Description: "services", Location: "Berlin", RequiredSkills: []string{"go"}})
	f.post(t, CreateJobInput{Title: "Rust Engineer", Description: "systems", Location: "Munich", RequiredSkills: []string{"rust"}, JobType: "contract"})
	f.post(t, CreateJobInput{Title: "Hidden", Description: "inactive posting", Location: "Berlin", IsActive: &inactive})

	page, err := f.svc.List(ctx, &JobFilters{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("inactive jobs must not be listed, total=%d", page.Total)
	}
	for _, row := range page.Jobs {
		if row.Company == nil || row.Company.CompanyName != "Acme" {
			t.Fatalf("expected company attached, got %+v", row.Company)
		}
		if row.Company.Description != "" {
			t.Fatalf("listing rows must not carry the company description")
		}
	}

	page, err = f.svc.List(ctx, &JobFilters{Search: "rust"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if page.Total != 1 || page.Jobs[0].Title != "Rust Engineer" {
		t.Fatalf("unexpected search result: %+v", page.Jobs)
	}

	page, err = f.svc.List(ctx, &JobFilters{JobType: "contract"})
	if err != nil || page.Total != 1 {
		t.Fatalf("job type filter: total=%d err=%v", page.Total, err)
	}

	page, err = f.svc.List(ctx, &JobFilters{Skills: []string{"go", "python"}})
	if err != nil || page.Total != 1 || page.Jobs[0].Title != "Go Engineer" {
		t.Fatalf("skills overlap filter failed: %+v err=%v", page, err)
	}

	// Pagination math
	page, err = f.svc.List(ctx, &JobFilters{Page: 2, Limit: 1})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if page.Page != 2 || page.TotalPages != 2 || len(page.Jobs) != 1 {
		t.Fatalf("expected page 2 of 2 with one row, got page=%d totalPages=%d rows=%d", page.Page, page.TotalPages, len(page.Jobs))
	}
}

func TestGetJobDetail(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	inactive := false
	j := f.post(t, CreateJobInput{Title: "Go Engineer", Description: "services", Location: "Berlin", IsActive: &inactive})

	candidate := models.User{Name: "Cand", Email: "cand@x.io", Role: models.RoleCandidate}
	if err := f.users.Create(ctx, &candidate); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	app := models.Application{JobID: j.ID, CandidateID: candidate.ID, ResumeLink: "https://cv.io/1", Status: models.StatusPending, AppliedDate: time.Now()}
	if err := f.apps.Create(ctx, &app); err != nil {
		t.Fatalf("seed application: %v", err)
	}

	// A direct fetch returns the job even when inactive
	detail, err := f.svc.Get(ctx, j.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Company == nil || detail.Company.Description != "We make everything" {
		t.Fatalf("detail view must carry the full company fields, got %+v", detail.Company)
	}
	if len(detail.Applications) != 1 || detail.Applications[0].Candidate == nil || detail.Applications[0].Candidate.Name != "Cand" {
		t.Fatalf("expected candidate attached to application, got %+v", detail.Applications)
	}

	if _, err := f.svc.Get(ctx, uuid.New()); !appErr.IsCode(err, appErr.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	j := f.post(t, CreateJobInput{Title: "Go Engineer", Description: "services", Location: "Berlin"})

	owner := models.Actor{ID: f.company.ID, Role: models.RoleCompany}
	stranger := models.Actor{ID: uuid.New(), Role: models.RoleCompany}
	admin := models.Actor{ID: uuid.New(), Role: models.RoleAdmin}

	if _, err := f.svc.Update(ctx, stranger, j.ID, &UpdateJobInput{}); !appErr.IsCode(err, appErr.CodeForbidden) {
		t.Fatalf("expected forbidden for another company, got %v", err)
	}

	newTitle := "Senior Go Engineer"
	updated, err := f.svc.Update(ctx, owner, j.ID, &UpdateJobInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != newTitle || updated.Description != "services" {
		t.Fatalf("partial update went wrong: %+v", updated)
	}
	if updated.CompanyID != f.company.ID {
		t.Fatalf("ownership must not change on update")
	}

	empty := "  "
	if _, err := f.svc.Update(ctx, owner, j.ID, &UpdateJobInput{Title: &empty}); !appErr.IsCode(err, appErr.CodeInvalid) {
		t.Fatalf("expected invalid for blank title, got %v", err)
	}

	off := false
	updated, err = f.svc.Update(ctx, admin, j.ID, &UpdateJobInput{IsActive: &off})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected job deactivated")
	}

	if _, err := f.svc.Update(ctx, owner, uuid.New(), &UpdateJobInput{}); !appErr.IsCode(err, appErr.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)
	j := f.post(t, CreateJobInput{Title: "Go Engineer", Description: "services", Location: "Berlin"})

	stranger := models.Actor{ID: uuid.New(), Role: models.RoleCompany}
	if err := f.svc.Delete(ctx, stranger, j.ID); !appErr.IsCode(err, appErr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	owner := models.Actor{ID: f.company.ID, Role: models.RoleCompany}
	if err := f.svc.Delete(ctx, owner, j.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := f.svc.Delete(ctx, owner, j.ID); !appErr.IsCode(err, appErr.CodeNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestListForCompany(t *testing.T) {
	ctx := context.Background()
	f := newJobFixture(t)

	inactive := false
	f.post(t, CreateJobInput{Title: "One", Description: "d", Location: "l"})
	f.post(t, CreateJobInput{Title: "Two", Description: "d", Location: "l", IsActive: &inactive})

	jobs, err := f.svc.ListForCompany(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("list for company failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("the management view includes inactive jobs, got %d", len(jobs))
	}
}
