package registration

// RegistrationStatus tracks a student record from submission to approval.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "Pending"
	StatusFeePaid  RegistrationStatus = "Fee Paid"
	StatusApproved RegistrationStatus = "Approved"
	StatusRejected RegistrationStatus = "Rejected"
)

// AccountStatus is the account-level flag shared by students and user accounts.
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

// Lifecycle is the single authority for a student's registration state. Both
// displayed status fields (students.status and the linked users.status) are
// derived from it, so the two can never drift apart.
type Lifecycle struct {
	Registration RegistrationStatus
}

func LifecycleFor(status RegistrationStatus) Lifecycle {
	return Lifecycle{Registration: status}
}

// AccountStatus derives the account flag: a student's account is live only
// once an admin has approved the registration.
func (l Lifecycle) AccountStatus() AccountStatus {
	if l.Registration == StatusApproved {
		return AccountActive
	}
	return AccountInactive
}

// Settled reports whether the registration fee is fully collected (or the
// registration already approved), which closes the ledger to further payments.
func (l Lifecycle) Settled() bool {
	return l.Registration == StatusFeePaid || l.Registration == StatusApproved
}

// Terminal reports whether no further admin action applies.
func (l Lifecycle) Terminal() bool {
	return l.Registration == StatusRejected
}

// Approve moves the registration to Approved. Approval straight from Pending
// (skipping payment) is a deliberate administrative override. Approving twice
// is a no-op success; approving a rejected registration is a conflict since
// re-opening is not supported.
func (l Lifecycle) Approve() (Lifecycle, error) {
	switch l.Registration {
	case StatusRejected:
		return l, &ConflictError{Message: "Registration has been rejected and cannot be approved"}
	default:
		return Lifecycle{Registration: StatusApproved}, nil
	}
}

// Reject moves the registration to Rejected. Approved registrations are
// terminal on the happy path and cannot be rejected; rejecting twice is a
// no-op success.
func (l Lifecycle) Reject() (Lifecycle, error) {
	switch l.Registration {
	case StatusApproved:
		return l, &ConflictError{Message: "Registration is already approved and cannot be rejected"}
	default:
		return Lifecycle{Registration: StatusRejected}, nil
	}
}
