package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

// ApproveStudent moves the registration to Approved and activates the linked
// user account (matched by email) when it is still Inactive. The whole
// transition is one transaction; approving twice is a no-op success.
func ApproveStudent(db *sql.DB, studentID string) error {
	return withTx(db, func(tx *sql.Tx) error {
		var email string
		var status registration.RegistrationStatus
		err := tx.QueryRow(`
			SELECT email, registration_status FROM students WHERE id = $1 FOR UPDATE
		`, studentID).Scan(&email, &status)
		if err == sql.ErrNoRows {
			return &registration.NotFoundError{Resource: "Student"}
		}
		if err != nil {
			return &registration.StorageError{Op: "load student", Err: err}
		}

		next, err := registration.LifecycleFor(status).Approve()
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			UPDATE students SET registration_status = $1, status = $2 WHERE id = $3
		`, next.Registration, next.AccountStatus(), studentID)
		if err != nil {
			return &registration.StorageError{Op: "update student status", Err: err}
		}

		_, err = tx.Exec(`
			UPDATE users SET status = $1 WHERE email = $2 AND status = $3
		`, registration.AccountActive, email, registration.AccountInactive)
		if err != nil {
			return &registration.StorageError{Op: "activate user account", Err: err}
		}
		return nil
	})
}

// RejectStudent moves the registration to Rejected and deactivates both the
// student record and the linked user account, symmetric with approval.
func RejectStudent(db *sql.DB, studentID string) error {
	return withTx(db, func(tx *sql.Tx) error {
		var email string
		var status registration.RegistrationStatus
		err := tx.QueryRow(`
			SELECT email, registration_status FROM students WHERE id = $1 FOR UPDATE
		`, studentID).Scan(&email, &status)
		if err == sql.ErrNoRows {
			return &registration.NotFoundError{Resource: "Student"}
		}
		if err != nil {
			return &registration.StorageError{Op: "load student", Err: err}
		}

		next, err := registration.LifecycleFor(status).Reject()
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			UPDATE students SET registration_status = $1, status = $2 WHERE id = $3
		`, next.Registration, next.AccountStatus(), studentID)
		if err != nil {
			return &registration.StorageError{Op: "update student status", Err: err}
		}

		_, err = tx.Exec(`
			UPDATE users SET status = $1 WHERE email = $2 AND status = $3
		`, registration.AccountInactive, email, registration.AccountActive)
		if err != nil {
			return &registration.StorageError{Op: "deactivate user account", Err: err}
		}
		return nil
	})
}

// RegistrationSnapshot is the fee/status view a student checks while waiting
// for approval.
type RegistrationSnapshot struct {
	StudentID             string                          `json:"student_id"`
	FirstName             string                          `json:"first_name"`
	LastName              string                          `json:"last_name"`
	RegistrationFeeAmount decimal.Decimal                 `json:"registration_fee_amount"`
	RegistrationFeePaid   decimal.Decimal                 `json:"registration_fee_paid"`
	RegistrationStatus    registration.RegistrationStatus `json:"registration_status"`
	Status                registration.AccountStatus      `json:"status"`
}

func GetRegistrationSnapshot(db *sql.DB, studentID string) (*RegistrationSnapshot, error) {
	s := &RegistrationSnapshot{}
	err := db.QueryRow(`
		SELECT id, first_name, last_name, registration_fee_amount,
			   registration_fee_paid, registration_status, status
		FROM students
		WHERE id = $1
	`, studentID).Scan(
		&s.StudentID, &s.FirstName, &s.LastName, &s.RegistrationFeeAmount,
		&s.RegistrationFeePaid, &s.RegistrationStatus, &s.Status,
	)
	if err == sql.ErrNoRows {
		return nil, &registration.NotFoundError{Resource: "Student"}
	}
	if err != nil {
		return nil, &registration.StorageError{Op: "load student", Err: err}
	}
	return s, nil
}

// GetPendingRegistrations lists students still awaiting payment or approval.
func GetPendingRegistrations(db *sql.DB) ([]*models.Student, error) {
	return queryRegistrations(db, `
		SELECT s.id, s.first_name, s.last_name, s.email, s.phone,
			   s.registration_fee_amount, s.registration_fee_paid,
			   s.registration_status, s.status, s.created_at, b.branch_name
		FROM students s
		LEFT JOIN branches b ON s.branch_id = b.id
		WHERE s.registration_status IN ($1, $2)
		ORDER BY s.created_at DESC
	`, registration.StatusPending, registration.StatusFeePaid)
}

// GetAllRegistrations lists every student with branch name, newest first.
func GetAllRegistrations(db *sql.DB) ([]*models.Student, error) {
	return queryRegistrations(db, `
		SELECT s.id, s.first_name, s.last_name, s.email, s.phone,
			   s.registration_fee_amount, s.registration_fee_paid,
			   s.registration_status, s.status, s.created_at, b.branch_name
		FROM students s
		LEFT JOIN branches b ON s.branch_id = b.id
		ORDER BY s.created_at DESC
	`)
}

func queryRegistrations(db *sql.DB, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &registration.StorageError{Op: "list registrations", Err: err}
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone,
			&s.RegistrationFeeAmount, &s.RegistrationFeePaid,
			&s.RegistrationStatus, &s.Status, &s.CreatedAt, &s.BranchName,
		)
		if err != nil {
			return nil, &registration.StorageError{Op: "scan registration", Err: err}
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// RegistrationDetails aggregates everything an admin reviews before acting on
// a registration.
type RegistrationDetails struct {
	Student     *models.Student            `json:"student"`
	Guardians   []*models.Guardian         `json:"guardians"`
	Payments    []*models.PaymentRecord    `json:"payments"`
	UserAccount *models.UserAccountSummary `json:"user_account"`
}

// GetRegistrationDetails assembles the student joined with its branch, the
// guardian list, the full ledger (most recent first), and the linked account
// summary matched by email.
func GetRegistrationDetails(db *sql.DB, studentID string) (*RegistrationDetails, error) {
	s := &models.Student{}
	err := db.QueryRow(`
		SELECT s.id, s.branch_id, s.first_name, s.last_name, s.middle_name,
			   s.date_of_birth::text, s.age, s.phone, s.email, s.address,
			   s.school, s.grade_year, s.health_diagnosis, s.session_package_id,
			   s.registration_fee_amount, s.registration_fee_paid,
			   s.registration_status, s.status, s.created_at, b.branch_name
		FROM students s
		LEFT JOIN branches b ON s.branch_id = b.id
		WHERE s.id = $1
	`, studentID).Scan(
		&s.ID, &s.BranchID, &s.FirstName, &s.LastName, &s.MiddleName,
		&s.DateOfBirth, &s.Age, &s.Phone, &s.Email, &s.Address,
		&s.School, &s.GradeYear, &s.HealthDiagnosis, &s.SessionPackageID,
		&s.RegistrationFeeAmount, &s.RegistrationFeePaid,
		&s.RegistrationStatus, &s.Status, &s.CreatedAt, &s.BranchName,
	)
	if err == sql.ErrNoRows {
		return nil, &registration.NotFoundError{Resource: "Student"}
	}
	if err != nil {
		return nil, &registration.StorageError{Op: "load student", Err: err}
	}

	details := &RegistrationDetails{Student: s}

	details.Guardians, err = getStudentGuardians(db, studentID)
	if err != nil {
		return nil, err
	}

	details.Payments, err = GetStudentPayments(db, studentID)
	if err != nil {
		return nil, err
	}

	account := &models.UserAccountSummary{}
	err = db.QueryRow(`
		SELECT username, email, status FROM users WHERE email = $1
	`, s.Email).Scan(&account.Username, &account.Email, &account.Status)
	if err == nil {
		details.UserAccount = account
	} else if err != sql.ErrNoRows {
		return nil, &registration.StorageError{Op: "load user account", Err: err}
	}

	return details, nil
}

func getStudentGuardians(db *sql.DB, studentID string) ([]*models.Guardian, error) {
	rows, err := db.Query(`
		SELECT g.id, g.first_name, g.last_name, g.relationship_type, g.phone,
			   g.occupation, g.email, g.address, g.status
		FROM guardians g
		INNER JOIN student_guardians sg ON sg.guardian_id = g.id
		WHERE sg.student_id = $1
		ORDER BY sg.is_primary_guardian DESC, g.last_name, g.first_name
	`, studentID)
	if err != nil {
		return nil, &registration.StorageError{Op: "list guardians", Err: err}
	}
	defer rows.Close()

	guardians := make([]*models.Guardian, 0)
	for rows.Next() {
		g := &models.Guardian{}
		err := rows.Scan(
			&g.ID, &g.FirstName, &g.LastName, &g.RelationshipType, &g.Phone,
			&g.Occupation, &g.Email, &g.Address, &g.Status,
		)
		if err != nil {
			return nil, &registration.StorageError{Op: "scan guardian", Err: err}
		}
		guardians = append(guardians, g)
	}
	return guardians, rows.Err()
}
