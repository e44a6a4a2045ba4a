package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role is the account type assigned at registration. It is immutable through
// the profile-update path. RoleAdmin is granted by policy, never at signup.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
)

// User represents a platform account. Company and candidate profile fields
// live side by side; which set is meaningful depends on Role.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"not null" json:"name" validate:"required"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;default:'candidate'" json:"role"`

	ProfilePicture string `json:"profilePicture"`

	// Company profile
	CompanyName string `json:"companyName,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Location    string `json:"location,omitempty"`
	Website     string `json:"website,omitempty"`

	// Candidate profile
	Skills pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
	Resume string         `json:"resume,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicView is the reduced user shape returned by register, login and
// expanded listings. It never carries the password hash or profile details.
func (u *User) PublicView() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// PublicUser is the id/name/email/role projection of a User.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// Actor is the request-scoped identity resolved by the auth middleware.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// OwnsOrAdmin reports whether the actor may mutate a resource owned by
// ownerID. Every ownership check in the domain services goes through this
// predicate; admins pass unconditionally.
func (a Actor) OwnsOrAdmin(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.Role == RoleAdmin
}
