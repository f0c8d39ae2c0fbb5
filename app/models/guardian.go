package models

import "github.com/micqie/FAS-music/app/registration"

// Guardian is a parent or other responsible adult linked to one or more
// students.
type Guardian struct {
	ID               string                     `json:"guardian_id"`
	FirstName        string                     `json:"first_name"`
	LastName         string                     `json:"last_name"`
	RelationshipType string                     `json:"relationship_type"`
	Phone            string                     `json:"phone"`
	Occupation       *string                    `json:"occupation,omitempty"`
	Email            *string                    `json:"email,omitempty"`
	Address          *string                    `json:"address,omitempty"`
	Status           registration.AccountStatus `json:"status"`
}

// StudentGuardian links a guardian to a student with its permission flags.
// Intake creates the primary link with every flag set.
type StudentGuardian struct {
	StudentID         string `json:"student_id"`
	GuardianID        string `json:"guardian_id"`
	IsPrimaryGuardian bool   `json:"is_primary_guardian"`
	CanEnroll         bool   `json:"can_enroll"`
	CanPay            bool   `json:"can_pay"`
	EmergencyContact  bool   `json:"emergency_contact"`
}
