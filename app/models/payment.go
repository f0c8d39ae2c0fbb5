package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus of a ledger entry. Only Paid is written today; the column
// exists so a gateway integration could park entries in another state.
type PaymentStatus string

const (
	PaymentPaid PaymentStatus = "Paid"
)

// PaymentRecord is one immutable registration-fee ledger entry. Entries are
// only ever appended, never updated or deleted.
type PaymentRecord struct {
	ID            string          `json:"payment_id"`
	StudentID     string          `json:"student_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	ReceiptNumber string          `json:"receipt_number"`
	Notes         string          `json:"notes,omitempty"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        PaymentStatus   `json:"status"`
}
