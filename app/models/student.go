package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/micqie/FAS-music/app/registration"
)

// Student is one registration. RegistrationStatus tracks the intake workflow;
// Status is the derived account state (Active only once approved).
type Student struct {
	ID                    string                          `json:"student_id"`
	BranchID              string                          `json:"branch_id"`
	FirstName             string                          `json:"first_name"`
	LastName              string                          `json:"last_name"`
	MiddleName            *string                         `json:"middle_name,omitempty"`
	DateOfBirth           *string                         `json:"date_of_birth,omitempty"`
	Age                   *int                            `json:"age,omitempty"`
	Phone                 string                          `json:"phone"`
	Email                 string                          `json:"email"`
	Address               *string                         `json:"address,omitempty"`
	School                *string                         `json:"school,omitempty"`
	GradeYear             *string                         `json:"grade_year,omitempty"`
	HealthDiagnosis       *string                         `json:"health_diagnosis,omitempty"`
	SessionPackageID      *string                         `json:"session_package_id,omitempty"`
	RegistrationFeeAmount decimal.Decimal                 `json:"registration_fee_amount"`
	RegistrationFeePaid   decimal.Decimal                 `json:"registration_fee_paid"`
	RegistrationStatus    registration.RegistrationStatus `json:"registration_status"`
	Status                registration.AccountStatus      `json:"status"`
	CreatedAt             time.Time                       `json:"created_at"`

	BranchName *string `json:"branch_name,omitempty"`
}

// StudentInstrument is an ordered instrument preference captured at intake.
type StudentInstrument struct {
	ID            string `json:"id"`
	StudentID     string `json:"student_id"`
	InstrumentID  string `json:"instrument_id"`
	PriorityOrder int    `json:"priority_order"`
}
