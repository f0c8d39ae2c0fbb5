package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStatusDerivation(t *testing.T) {
	assert.Equal(t, AccountInactive, LifecycleFor(StatusPending).AccountStatus())
	assert.Equal(t, AccountInactive, LifecycleFor(StatusFeePaid).AccountStatus())
	assert.Equal(t, AccountActive, LifecycleFor(StatusApproved).AccountStatus())
	assert.Equal(t, AccountInactive, LifecycleFor(StatusRejected).AccountStatus())
}

func TestSettled(t *testing.T) {
	assert.False(t, LifecycleFor(StatusPending).Settled())
	assert.True(t, LifecycleFor(StatusFeePaid).Settled())
	assert.True(t, LifecycleFor(StatusApproved).Settled())
	assert.False(t, LifecycleFor(StatusRejected).Settled())
}

func TestApproveFromPendingIsAllowed(t *testing.T) {
	// Administrative override: approval may skip the payment step entirely.
	next, err := LifecycleFor(StatusPending).Approve()
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, next.Registration)
	assert.Equal(t, AccountActive, next.AccountStatus())
}

func TestApproveIsIdempotent(t *testing.T) {
	once, err := LifecycleFor(StatusFeePaid).Approve()
	require.NoError(t, err)

	twice, err := once.Approve()
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestApproveRejectedConflicts(t *testing.T) {
	_, err := LifecycleFor(StatusRejected).Approve()
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestRejectFromPendingAndFeePaid(t *testing.T) {
	for _, from := range []RegistrationStatus{StatusPending, StatusFeePaid} {
		next, err := LifecycleFor(from).Reject()
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, next.Registration)
		assert.Equal(t, AccountInactive, next.AccountStatus())
	}
}

func TestRejectApprovedConflicts(t *testing.T) {
	_, err := LifecycleFor(StatusApproved).Reject()
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestRejectIsIdempotent(t *testing.T) {
	next, err := LifecycleFor(StatusRejected).Reject()
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, next.Registration)
}
