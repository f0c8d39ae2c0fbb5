package database

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

// PaymentResult reports the ledger state after one recorded payment.
type PaymentResult struct {
	PaidAmount         decimal.Decimal
	RemainingAmount    decimal.Decimal
	RegistrationStatus registration.RegistrationStatus
	ReceiptNumber      string
}

// RecordRegistrationPayment appends one ledger entry and advances the
// student's fee total and registration status in a single transaction. The
// student row is locked for the read-modify-write, so two payments against
// the same student cannot interleave. Used by both the self-service and the
// admin confirm paths.
func RecordRegistrationPayment(db *sql.DB, studentID string, amount decimal.Decimal, method, receiptNumber, notes string) (*PaymentResult, error) {
	result := &PaymentResult{}

	err := withTx(db, func(tx *sql.Tx) error {
		var feeAmount, feePaid decimal.Decimal
		var status registration.RegistrationStatus
		err := tx.QueryRow(`
			SELECT registration_fee_amount, registration_fee_paid, registration_status
			FROM students
			WHERE id = $1
			FOR UPDATE
		`, studentID).Scan(&feeAmount, &feePaid, &status)
		if err == sql.ErrNoRows {
			return &registration.NotFoundError{Resource: "Student"}
		}
		if err != nil {
			return &registration.StorageError{Op: "load student", Err: err}
		}

		outcome, err := registration.ApplyPayment(status, feeAmount, feePaid, amount)
		if err != nil {
			return err
		}

		receipt := receiptNumber
		if receipt == "" {
			receipt = registration.DefaultReceipt(time.Now())
		}

		_, err = tx.Exec(`
			INSERT INTO registration_payments (
				student_id, amount, payment_method, receipt_number, notes, status
			) VALUES ($1, $2, $3, $4, $5, $6)
		`, studentID, amount, method, receipt, notes, models.PaymentPaid)
		if err != nil {
			if isUniqueViolation(err) {
				return &registration.ConflictError{Message: "Receipt number is already used"}
			}
			return &registration.StorageError{Op: "insert payment", Err: err}
		}

		_, err = tx.Exec(`
			UPDATE students
			SET registration_fee_paid = $1, registration_status = $2
			WHERE id = $3
		`, outcome.Paid, outcome.Status, studentID)
		if err != nil {
			return &registration.StorageError{Op: "update student fee total", Err: err}
		}

		result.PaidAmount = outcome.Paid
		result.RemainingAmount = outcome.Remaining
		result.RegistrationStatus = outcome.Status
		result.ReceiptNumber = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetStudentPayments returns the full ledger for one student, most recent
// first.
func GetStudentPayments(db *sql.DB, studentID string) ([]*models.PaymentRecord, error) {
	rows, err := db.Query(`
		SELECT id, student_id, amount, payment_method, receipt_number,
			   COALESCE(notes, ''), payment_date, status
		FROM registration_payments
		WHERE student_id = $1
		ORDER BY payment_date DESC
	`, studentID)
	if err != nil {
		return nil, &registration.StorageError{Op: "list payments", Err: err}
	}
	defer rows.Close()

	var payments []*models.PaymentRecord
	for rows.Next() {
		p := &models.PaymentRecord{}
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &p.PaymentMethod,
			&p.ReceiptNumber, &p.Notes, &p.PaymentDate, &p.Status,
		)
		if err != nil {
			return nil, &registration.StorageError{Op: "scan payment", Err: err}
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
