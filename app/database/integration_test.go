//go:build integration

package database

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micqie/FAS-music/app/registration"
)

// These tests run against a real PostgreSQL database:
//
//	TEST_DATABASE_URL=postgres://... go test -tags integration ./app/database/
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func seedBranch(t *testing.T, db *sql.DB) string {
	t.Helper()
	var id string
	err := db.QueryRow(`
		INSERT INTO branches (branch_name, status) VALUES ($1, 'Active') RETURNING id
	`, fmt.Sprintf("Test Branch %d", time.Now().UnixNano())).Scan(&id)
	require.NoError(t, err)
	return id
}

func uniqueEmail() string {
	return "it" + fmt.Sprintf("%d", time.Now().UnixNano()) + "@example.com"
}

func intakeFixture(branchID, email string) *registration.IntakeRequest {
	return &registration.IntakeRequest{
		StudentFirstName:      "Amara",
		StudentLastName:       "Reyes",
		StudentEmail:          email,
		StudentPhone:          "09171234567",
		GuardianFirstName:     "Luz",
		GuardianLastName:      "Reyes",
		GuardianRelationship:  "Mother",
		GuardianPhone:         "09179876543",
		BranchID:              branchID,
		RegistrationFeeAmount: decimal.RequireFromString("1000"),
		Password:              "Secret@123",
	}
}

func countRows(t *testing.T, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestRegisterStudentDuplicateEmailConflict(t *testing.T) {
	db := testDB(t)
	branchID := seedBranch(t, db)
	email := uniqueEmail()

	_, err := RegisterStudent(db, intakeFixture(branchID, email))
	require.NoError(t, err)

	_, err = RegisterStudent(db, intakeFixture(branchID, email))
	var conflict *registration.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Email address is already registered", conflict.Error())

	// The failed intake must not leave a second student behind.
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM students WHERE email = $1`, email))
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM users WHERE email = $1`, email))
}

func TestRegisterStudentRollsBackOnUnknownBranch(t *testing.T) {
	db := testDB(t)
	email := uniqueEmail()

	_, err := RegisterStudent(db, intakeFixture("f47ac10b-58cc-4372-a567-0e02b2c3d479", email))
	var notFound *registration.NotFoundError
	require.ErrorAs(t, err, &notFound)

	assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM students WHERE email = $1`, email))
	assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM users WHERE email = $1`, email))
	assert.Equal(t, 0, countRows(t, db, `
		SELECT COUNT(*) FROM guardians g
		INNER JOIN student_guardians sg ON sg.guardian_id = g.id
		INNER JOIN students s ON s.id = sg.student_id
		WHERE s.email = $1`, email))
}

func TestRecordPaymentAccumulatesAndSettles(t *testing.T) {
	db := testDB(t)
	branchID := seedBranch(t, db)
	email := uniqueEmail()

	intake, err := RegisterStudent(db, intakeFixture(branchID, email))
	require.NoError(t, err)

	first, err := RecordRegistrationPayment(db, intake.StudentID,
		decimal.RequireFromString("700"), "Cash", "", "")
	require.NoError(t, err)
	assert.True(t, first.PaidAmount.Equal(decimal.RequireFromString("700")))
	assert.True(t, first.RemainingAmount.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, registration.StatusPending, first.RegistrationStatus)

	second, err := RecordRegistrationPayment(db, intake.StudentID,
		decimal.RequireFromString("300"), "Cash", "", "")
	require.NoError(t, err)
	assert.True(t, second.PaidAmount.Equal(decimal.RequireFromString("1000")))
	assert.True(t, second.RemainingAmount.IsZero())
	assert.Equal(t, registration.StatusFeePaid, second.RegistrationStatus)

	// The ledger sum must match the student's running total.
	var paid decimal.Decimal
	require.NoError(t, db.QueryRow(`
		SELECT registration_fee_paid FROM students WHERE id = $1
	`, intake.StudentID).Scan(&paid))
	assert.True(t, paid.Equal(decimal.RequireFromString("1000")))
	assert.Equal(t, 2, countRows(t, db,
		`SELECT COUNT(*) FROM registration_payments WHERE student_id = $1`, intake.StudentID))

	_, err = RecordRegistrationPayment(db, intake.StudentID,
		decimal.RequireFromString("10"), "Cash", "", "")
	var conflict *registration.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Registration fee already paid", conflict.Error())
}

func TestRecordPaymentRejectsDuplicateReceipt(t *testing.T) {
	db := testDB(t)
	branchID := seedBranch(t, db)

	intakeA, err := RegisterStudent(db, intakeFixture(branchID, uniqueEmail()))
	require.NoError(t, err)
	intakeB, err := RegisterStudent(db, intakeFixture(branchID, uniqueEmail()))
	require.NoError(t, err)

	receipt := fmt.Sprintf("IT-%d", time.Now().UnixNano())
	_, err = RecordRegistrationPayment(db, intakeA.StudentID,
		decimal.RequireFromString("100"), "Cash", receipt, "")
	require.NoError(t, err)

	_, err = RecordRegistrationPayment(db, intakeB.StudentID,
		decimal.RequireFromString("100"), "Cash", receipt, "")
	var conflict *registration.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Receipt number is already used", conflict.Error())

	// The rejected payment must not advance student B's total.
	var paid decimal.Decimal
	require.NoError(t, db.QueryRow(`
		SELECT registration_fee_paid FROM students WHERE id = $1
	`, intakeB.StudentID).Scan(&paid))
	assert.True(t, paid.IsZero())
}

func TestApproveActivatesAccountAndRejectConflicts(t *testing.T) {
	db := testDB(t)
	branchID := seedBranch(t, db)
	email := uniqueEmail()

	intake, err := RegisterStudent(db, intakeFixture(branchID, email))
	require.NoError(t, err)

	require.NoError(t, ApproveStudent(db, intake.StudentID))

	var studentStatus, userStatus string
	require.NoError(t, db.QueryRow(`
		SELECT registration_status FROM students WHERE id = $1
	`, intake.StudentID).Scan(&studentStatus))
	require.NoError(t, db.QueryRow(`
		SELECT status FROM users WHERE email = $1
	`, email).Scan(&userStatus))
	assert.Equal(t, "Approved", studentStatus)
	assert.Equal(t, "Active", userStatus)

	// Idempotent: a second approve succeeds without changing anything.
	require.NoError(t, ApproveStudent(db, intake.StudentID))

	err = RejectStudent(db, intake.StudentID)
	var conflict *registration.ConflictError
	require.ErrorAs(t, err, &conflict)
}
