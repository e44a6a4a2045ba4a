package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/youssefhammani/file-rouge-final/internal/api/middleware"
	"github.com/youssefhammani/file-rouge-final/internal/api/types"
	"github.com/youssefhammani/file-rouge-final/internal/api/validators"
	"github.com/youssefhammani/file-rouge-final/internal/services"
)

type UsersHandler struct {
	users services.UserService
}

func NewUsersHandler(users services.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// UpdateProfile partial-updates the acting user's own record. Requests that
// try to change password or role are rejected outright, before decoding into
// the typed request.
func (h *UsersHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	for _, forbidden := range []string{"password", "role"} {
		if _, present := raw[forbidden]; present {
			writeErrorStr(w, http.StatusBadRequest, "Cannot update these fields")
			return
		}
	}

	body, err := json.Marshal(raw)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	var req types.UpdateProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), actor.ID, &services.ProfileUpdate{
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
		CompanyName:    req.CompanyName,
		Description:    req.Description,
		Logo:           req.Logo,
		Location:       req.Location,
		Website:        req.Website,
		Skills:         req.Skills,
		Resume:         req.Resume,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OK(u))
}

func (h *UsersHandler) SaveJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	jobID, ok := parseIDParam(w, r, "jobId")
	if !ok {
		return
	}

	if err := h.users.SaveJob(r.Context(), actor.ID, jobID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OKMessage("Job saved successfully"))
}

func (h *UsersHandler) UnsaveJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	jobID, ok := parseIDParam(w, r, "jobId")
	if !ok {
		return
	}

	if err := h.users.UnsaveJob(r.Context(), actor.ID, jobID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OKMessage("Job removed from saved jobs"))
}

func (h *UsersHandler) SavedJobs(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		writeErrorStr(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	jobs, err := h.users.ListSavedJobs(r.Context(), actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.OKList(jobs, len(jobs)))
}
