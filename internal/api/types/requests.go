package types

import "time"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=candidate company"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateJobRequest struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description" validate:"required"`
	RequiredSkills []string   `json:"requiredSkills"`
	Location       string     `json:"location" validate:"required"`
	JobType        string     `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	Salary         *float64   `json:"salary"`
	DeadlineDate   *time.Time `json:"deadlineDate"`
	IsActive       *bool      `json:"isActive"`
}

type UpdateJobRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	RequiredSkills []string   `json:"requiredSkills"`
	Location       *string    `json:"location"`
	JobType        *string    `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	Salary         *float64   `json:"salary"`
	DeadlineDate   *time.Time `json:"deadlineDate"`
	IsActive       *bool      `json:"isActive"`
}

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter"`
	ResumeLink  string `json:"resumeLink" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed rejected accepted"`
}

type UpdateProfileRequest struct {
	Name           *string  `json:"name"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	ProfilePicture *string  `json:"profilePicture"`
	CompanyName    *string  `json:"companyName"`
	Description    *string  `json:"description"`
	Logo           *string  `json:"logo" validate:"omitempty,url"`
	Location       *string  `json:"location"`
	Website        *string  `json:"website" validate:"omitempty,url"`
	Skills         []string `json:"skills"`
	Resume         *string  `json:"resume" validate:"omitempty,url"`
}
