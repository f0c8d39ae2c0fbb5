package registration

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPartialThenFinalPayment(t *testing.T) {
	fee := dec("1000")

	first, err := ApplyPayment(StatusPending, fee, decimal.Zero, dec("700"))
	require.NoError(t, err)
	assert.True(t, first.Paid.Equal(dec("700")))
	assert.True(t, first.Remaining.Equal(dec("300")))
	assert.Equal(t, StatusPending, first.Status)

	second, err := ApplyPayment(first.Status, fee, first.Paid, dec("300"))
	require.NoError(t, err)
	assert.True(t, second.Paid.Equal(dec("1000")))
	assert.True(t, second.Remaining.Equal(decimal.Zero))
	assert.Equal(t, StatusFeePaid, second.Status)
}

func TestOverpaymentClampsRemainingButKeepsRawTotal(t *testing.T) {
	out, err := ApplyPayment(StatusPending, dec("1000"), decimal.Zero, dec("1200"))
	require.NoError(t, err)
	assert.True(t, out.Paid.Equal(dec("1200")), "raw total keeps the excess")
	assert.True(t, out.Remaining.Equal(decimal.Zero), "reported remainder is clamped")
	assert.Equal(t, StatusFeePaid, out.Status)
}

func TestPaymentsAccumulateRegardlessOfSplit(t *testing.T) {
	fee := dec("500")
	splits := [][]string{
		{"500"},
		{"100", "400"},
		{"50", "50", "400"},
		{"499.99", "0.01"},
	}
	for _, amounts := range splits {
		paid := decimal.Zero
		status := StatusPending
		var out PaymentOutcome
		var err error
		for _, a := range amounts {
			out, err = ApplyPayment(status, fee, paid, dec(a))
			require.NoError(t, err)
			paid = out.Paid
			status = out.Status
		}
		assert.True(t, paid.Equal(fee))
		assert.Equal(t, StatusFeePaid, status)
	}
}

func TestStatusThreshold(t *testing.T) {
	fee := dec("100")

	below, err := ApplyPayment(StatusPending, fee, dec("40"), dec("59.99"))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, below.Status)

	exact, err := ApplyPayment(StatusPending, fee, dec("40"), dec("60"))
	require.NoError(t, err)
	assert.Equal(t, StatusFeePaid, exact.Status)
}

func TestZeroOrNegativeAmountRejected(t *testing.T) {
	for _, amount := range []string{"0", "-5"} {
		_, err := ApplyPayment(StatusPending, dec("100"), decimal.Zero, dec(amount))
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
	}
}

func TestSettledRegistrationRejectsFurtherPayments(t *testing.T) {
	for _, status := range []RegistrationStatus{StatusFeePaid, StatusApproved} {
		_, err := ApplyPayment(status, dec("100"), dec("100"), dec("10"))
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	}
}

func TestRejectedRegistrationRejectsPayments(t *testing.T) {
	_, err := ApplyPayment(StatusRejected, dec("100"), decimal.Zero, dec("50"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "rejected")
}

func TestDefaultReceipt(t *testing.T) {
	at := time.Unix(1700000000, 0)
	assert.Equal(t, "REG-1700000000", DefaultReceipt(at))
}
