package models

import (
	"time"

	"github.com/micqie/FAS-music/app/registration"
)

// User is an authentication identity. Student accounts are linked one-to-one
// with their Student row by matching email; they are created Inactive and
// activated only when the registration is approved.
type User struct {
	ID                 string                     `json:"user_id"`
	Username           string                     `json:"username"`
	Password           string                     `json:"-"`
	RoleID             string                     `json:"role_id"`
	RoleName           string                     `json:"role_name,omitempty"`
	FirstName          string                     `json:"first_name"`
	LastName           string                     `json:"last_name"`
	Email              string                     `json:"email"`
	Phone              string                     `json:"phone,omitempty"`
	Status             registration.AccountStatus `json:"status"`
	MustChangePassword bool                       `json:"must_change_password"`
	CreatedAt          time.Time                  `json:"created_at"`
}

// Role names are seeded by the startup migration.
type Role struct {
	ID   string `json:"role_id"`
	Name string `json:"role_name"`
}

const (
	RoleAdmin   = "Admin"
	RoleStudent = "Student"
)

// UserAccountSummary is the account slice exposed by the registration detail
// aggregation.
type UserAccountSummary struct {
	Username string                     `json:"username"`
	Email    string                     `json:"email"`
	Status   registration.AccountStatus `json:"status"`
}
