package models

import "testing"

func TestStatusIsValid(t *testing.T) {
	for _, status := range AllStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []SubmissionStatus{"", "draft", "PENDING", "approved "} {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[SubmissionStatus][]SubmissionStatus{
		StatusPending:   {StatusApproved, StatusRejected},
		StatusApproved:  {StatusPRCreated},
		StatusPRCreated: {StatusMerged},
		StatusRejected:  {},
		StatusMerged:    {},
	}

	for from, targets := range allowed {
		legal := make(map[SubmissionStatus]bool, len(targets))
		for _, to := range targets {
			legal[to] = true
		}
		for _, to := range AllStatuses() {
			got := from.CanTransitionTo(to)
			if got != legal[to] {
				t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", from, to, got, legal[to])
			}
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := map[SubmissionStatus]bool{
		StatusRejected: true,
		StatusMerged:   true,
	}
	for _, status := range AllStatuses() {
		if got := status.IsTerminal(); got != terminal[status] {
			t.Errorf("IsTerminal(%q) = %v, want %v", status, got, terminal[status])
		}
	}
}
