package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

// IntakeResult identifies the rows created by one registration submission.
type IntakeResult struct {
	StudentID  string
	GuardianID string
	UserID     string
	Username   string
	FeeAmount  decimal.Decimal
}

// RegisterStudent atomically creates the student (Pending/Inactive), the
// guardian with a primary full-permission link, the inactive user account,
// and the ordered instrument preferences. If any step fails nothing persists.
// The request must already be validated.
func RegisterStudent(db *sql.DB, req *registration.IntakeRequest) (*IntakeResult, error) {
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, &registration.StorageError{Op: "hash password", Err: err}
	}

	result := &IntakeResult{
		Username:  req.EffectiveUsername(),
		FeeAmount: req.RegistrationFeeAmount,
	}

	err = withTx(db, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM branches WHERE id = $1)`, req.BranchID).Scan(&exists)
		if err != nil {
			return &registration.StorageError{Op: "check branch", Err: err}
		}
		if !exists {
			return &registration.NotFoundError{Resource: "Branch"}
		}

		err = tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, req.StudentEmail).Scan(&exists)
		if err != nil {
			return &registration.StorageError{Op: "check email", Err: err}
		}
		if exists {
			return &registration.ConflictError{Message: "Email address is already registered"}
		}

		var roleID string
		err = tx.QueryRow(`SELECT id FROM roles WHERE role_name = $1`, models.RoleStudent).Scan(&roleID)
		if err != nil {
			return &registration.StorageError{Op: "lookup student role", Err: err}
		}

		err = tx.QueryRow(`
			INSERT INTO students (
				branch_id, first_name, last_name, middle_name, date_of_birth,
				age, phone, email, address, school, grade_year, health_diagnosis,
				registration_fee_amount, registration_status, status
			) VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, '')::date,
				NULLIF($6, 0), $7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''),
				$13, $14, $15)
			RETURNING id
		`,
			req.BranchID, req.StudentFirstName, req.StudentLastName, req.StudentMiddleName,
			req.StudentDateOfBirth, req.StudentAge, req.StudentPhone, req.StudentEmail,
			req.StudentAddress, req.StudentSchool, req.StudentGradeYear, req.StudentHealthDiagnosis,
			req.RegistrationFeeAmount, registration.StatusPending, registration.AccountInactive,
		).Scan(&result.StudentID)
		if err != nil {
			return &registration.StorageError{Op: "insert student", Err: err}
		}

		err = tx.QueryRow(`
			INSERT INTO guardians (
				first_name, last_name, relationship_type, phone,
				occupation, email, address, status
			) VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8)
			RETURNING id
		`,
			req.GuardianFirstName, req.GuardianLastName, req.GuardianRelationship,
			req.GuardianPhone, req.GuardianOccupation, req.GuardianEmail,
			req.GuardianAddress, registration.AccountActive,
		).Scan(&result.GuardianID)
		if err != nil {
			return &registration.StorageError{Op: "insert guardian", Err: err}
		}

		_, err = tx.Exec(`
			INSERT INTO student_guardians (
				student_id, guardian_id, is_primary_guardian,
				can_enroll, can_pay, emergency_contact
			) VALUES ($1, $2, true, true, true, true)
		`, result.StudentID, result.GuardianID)
		if err != nil {
			return &registration.StorageError{Op: "link guardian", Err: err}
		}

		err = tx.QueryRow(`
			INSERT INTO users (
				username, password, role_id, first_name, last_name,
				email, phone, status, must_change_password
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`,
			result.Username, hashed, roleID, req.StudentFirstName, req.StudentLastName,
			req.StudentEmail, req.StudentPhone, registration.AccountInactive, req.IsWalkIn,
		).Scan(&result.UserID)
		if err != nil {
			if isUniqueViolation(err) {
				return &registration.ConflictError{Message: "Email address is already registered"}
			}
			return &registration.StorageError{Op: "insert user account", Err: err}
		}

		for i, instrumentID := range req.Instruments {
			_, err = tx.Exec(`
				INSERT INTO student_instruments (student_id, instrument_id, priority_order)
				VALUES ($1, $2, $3)
			`, result.StudentID, instrumentID, i+1)
			if err != nil {
				return &registration.StorageError{Op: "insert instrument preference", Err: err}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
