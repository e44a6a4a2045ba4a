package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/youssefhammani/file-rouge-final/internal/api/middleware"
	"github.com/youssefhammani/file-rouge-final/internal/api/types"
	"github.com/youssefhammani/file-rouge-final/internal/api/validators"
	"github.com/youssefhammani/file-rouge-final/internal/services"
)

type ApplicationsHandler struct {
	applications services.ApplicationService
}

func NewApplicationsHandler(applications services.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applications}
}

// Apply submits an application to the job in the URL for the acting
// candidate.
func (h *ApplicationsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	jobID, ok := parseIDParam(w, r, "jobId")
	if !ok {
		return
	}

	var req types.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.applications.Apply(r.Context(), actor.ID, jobID, &services.ApplyInput{
		CoverLetter: req.CoverLetter,
		ResumeLink:  req.ResumeLink,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.OK(app))
}

// MyApplications lists the acting candidate's applications with job details.
func (h *ApplicationsHandler) MyApplications(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	apps, err := h.applications.ListForCandidate(r.Context(), actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OKList(apps, len(apps)))
}

// ListForJob lists a job's applications for its owning company (or admin).
func (h *ApplicationsHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	jobID, ok := parseIDParam(w, r, "jobId")
	if !ok {
		return
	}

	apps, err := h.applications.ListForJob(r.Context(), actor, jobID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OKList(apps, len(apps)))
}

// UpdateStatus moves an application between the four review states.
func (h *ApplicationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req types.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.applications.UpdateStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OK(app))
}
