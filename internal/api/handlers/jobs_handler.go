package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/youssefhammani/file-rouge-final/internal/api/middleware"
	"github.com/youssefhammani/file-rouge-final/internal/api/types"
	"github.com/youssefhammani/file-rouge-final/internal/api/validators"
	"github.com/youssefhammani/file-rouge-final/internal/services"
)

type JobsHandler struct {
	jobs services.JobService
}

func NewJobsHandler(jobs services.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List is the public job listing with filtering and offset pagination.
// Query: search, location, jobType, skills (comma-separated), page, limit.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := &services.JobFilters{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		JobType:  q.Get("jobType"),
	}
	if skills := strings.TrimSpace(q.Get("skills")); skills != "" {
		for _, s := range strings.Split(skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filters.Skills = append(filters.Skills, s)
			}
		}
	}
	filters.Page, _ = strconv.Atoi(q.Get("page"))
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))

	page, err := h.jobs.List(r.Context(), filters)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OKPage(page.Jobs, len(page.Jobs), page.Total, page.Page, page.TotalPages))
}

// Get is the public single-job view expanded with the company's details and
// the job's applications.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OK(detail))
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobs.Create(r.Context(), actor.ID, &services.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
		JobType:        req.JobType,
		Salary:         req.Salary,
		DeadlineDate:   req.DeadlineDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.OK(job))
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req types.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobs.Update(r.Context(), actor, id, &services.UpdateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
		JobType:        req.JobType,
		Salary:         req.Salary,
		DeadlineDate:   req.DeadlineDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OK(job))
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OK(map[string]any{}))
}

// MyJobs lists every job the acting company posted, active or not.
func (h *JobsHandler) MyJobs(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	jobs, err := h.jobs.ListForCompany(r.Context(), actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OKList(jobs, len(jobs)))
}

// parseIDParam reads a uuid path parameter, answering 400 when malformed.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
