package services

import (
	"github.com/google/uuid"

	"github.com/youssefhammani/file-rouge-final/internal/models"
)

// View types returned by the expanded read operations. All of them are
// assembled with query-time lookups keyed by foreign id; nothing here is a
// persisted back-reference.

// CompanyPublic is the owning company shape attached to job views.
// Description and Website are only filled on the single-job detail view.
type CompanyPublic struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName"`
	Logo        string    `json:"logo"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
}

// CompanyCard is the minimal company shape attached to application and
// saved-job listings.
type CompanyCard struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	Logo        string    `json:"logo"`
}

// CandidateCard is the candidate shape shown to a company reviewing
// applications.
type CandidateCard struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
	Skills         []string  `json:"skills,omitempty"`
}

func companyPublic(u *models.User, detailed bool) *CompanyPublic {
	if u == nil {
		return nil
	}
	c := &CompanyPublic{
		ID:          u.ID,
		Name:        u.Name,
		CompanyName: u.CompanyName,
		Logo:        u.Logo,
		Location:    u.Location,
	}
	if detailed {
		c.Description = u.Description
		c.Website = u.Website
	}
	return c
}

func companyCard(u *models.User) *CompanyCard {
	if u == nil {
		return nil
	}
	return &CompanyCard{ID: u.ID, CompanyName: u.CompanyName, Logo: u.Logo}
}

func candidateCard(u *models.User) *CandidateCard {
	if u == nil {
		return nil
	}
	return &CandidateCard{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Skills:         u.Skills,
	}
}

// usersByID indexes a user batch for join expansion.
func usersByID(users []models.User) map[uuid.UUID]*models.User {
	m := make(map[uuid.UUID]*models.User, len(users))
	for i := range users {
		m[users[i].ID] = &users[i]
	}
	return m
}

// jobsByID indexes a job batch for join expansion.
func jobsByID(jobs []models.Job) map[uuid.UUID]*models.Job {
	m := make(map[uuid.UUID]*models.Job, len(jobs))
	for i := range jobs {
		m[jobs[i].ID] = &jobs[i]
	}
	return m
}
