package constants

// ReviewStatus is the raider-facing state of a submitted record.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Label renders the status capitalized for badges; empty stays empty.
func (s ReviewStatus) Label() string {
	switch s {
	case ReviewPending:
		return "Pending"
	case ReviewApproved:
		return "Approved"
	case ReviewRejected:
		return "Rejected"
	}
	return ""
}

// PaymentStatus is only carried by records an admin has settled.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// AttemptState tracks a delegated login attempt.
type AttemptState string

const (
	AttemptIdle             AttemptState = "idle"
	AttemptPendingRedirect  AttemptState = "pending-redirect"
	AttemptAwaitingCallback AttemptState = "awaiting-callback"
	AttemptResolved         AttemptState = "resolved"
	AttemptFailed           AttemptState = "failed"
)
