package models

// SubmissionStatus is the lifecycle state of a portfolio submission.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusApproved  SubmissionStatus = "approved"
	StatusRejected  SubmissionStatus = "rejected"
	StatusPRCreated SubmissionStatus = "pr_created"
	StatusMerged    SubmissionStatus = "merged"
)

// AllStatuses returns every lifecycle state in workflow order.
func AllStatuses() []SubmissionStatus {
	return []SubmissionStatus{
		StatusPending,
		StatusApproved,
		StatusRejected,
		StatusPRCreated,
		StatusMerged,
	}
}

// IsValid reports whether s is a member of the status enum.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPRCreated, StatusMerged:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition leaves s.
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusMerged
}

// CanTransitionTo reports whether next is a legal transition from s.
// The graph: pending -> approved -> pr_created -> merged, pending -> rejected.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusPRCreated
	case StatusPRCreated:
		return next == StatusMerged
	}
	return false
}
