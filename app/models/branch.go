package models

import "github.com/micqie/FAS-music/app/registration"

// Branch is an academy location. Deleting a branch is a soft delete (status
// Inactive) so student references stay valid.
type Branch struct {
	ID         string                     `json:"branch_id"`
	BranchName string                     `json:"branch_name" validate:"required"`
	Address    *string                    `json:"address,omitempty"`
	Phone      *string                    `json:"phone,omitempty"`
	Email      *string                    `json:"email,omitempty"`
	Status     registration.AccountStatus `json:"status"`
}
