package registration

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOutcome is the result of applying one payment to a student's
// registration fee.
type PaymentOutcome struct {
	// Paid is the raw accumulated total, including any excess over the fee.
	Paid decimal.Decimal
	// Remaining is the outstanding balance, clamped to zero for display.
	Remaining decimal.Decimal
	// Status is the registration status after this payment.
	Status RegistrationStatus
}

// ApplyPayment accumulates one payment against the fee. The ledger stores the
// raw running total even on overpayment; only the reported remainder is
// clamped. Payments against a settled registration are rejected; the admin
// and self-service paths share this single entry point.
func ApplyPayment(current RegistrationStatus, feeAmount, paidSoFar, amount decimal.Decimal) (PaymentOutcome, error) {
	if amount.Sign() <= 0 {
		return PaymentOutcome{}, &ValidationError{Message: "Payment amount must be greater than zero"}
	}
	if LifecycleFor(current).Settled() {
		return PaymentOutcome{}, &ConflictError{Message: "Registration fee already paid"}
	}
	// A payment must not resurrect a rejected registration.
	if LifecycleFor(current).Terminal() {
		return PaymentOutcome{}, &ConflictError{Message: "Registration has been rejected"}
	}

	paid := paidSoFar.Add(amount)
	remaining := feeAmount.Sub(paid)

	status := StatusPending
	if remaining.Sign() <= 0 {
		status = StatusFeePaid
	}
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}

	return PaymentOutcome{Paid: paid, Remaining: remaining, Status: status}, nil
}

// DefaultReceipt generates the receipt identifier used when the caller does
// not supply one.
func DefaultReceipt(now time.Time) string {
	return fmt.Sprintf("REG-%d", now.Unix())
}
