package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"student-showcase-api/models"
	"student-showcase-api/repository"
)

// ModerationService implements the admin review workflow: approve, reject and
// delete. Approve couples the durable status transition with the external PR
// trigger and keeps the two outcomes separate.
type ModerationService struct {
	repo       repository.SubmissionRepository
	dispatcher Dispatcher
	notifier   Notifier // optional
}

func NewModerationService(repo repository.SubmissionRepository, dispatcher Dispatcher, notifier Notifier) *ModerationService {
	return &ModerationService{repo: repo, dispatcher: dispatcher, notifier: notifier}
}

// ApproveResult reports both halves of an approval. TriggerErr is non-nil
// when the PR dispatch failed; the approval itself has already been committed
// and is never rolled back.
type ApproveResult struct {
	Submission *models.Submission
	TriggerErr error
}

// Approve transitions a pending submission to approved and fires the PR
// trigger. Calling it again on an already-approved submission skips the
// status write and only re-fires the trigger, which is how a failed dispatch
// gets retried.
func (s *ModerationService) Approve(id, reviewNotes, reviewedBy string) (*ApproveResult, error) {
	sub, err := s.repo.GetByID(id)
	if err != nil {
		return nil, s.wrapLookup(err)
	}

	switch sub.Status {
	case models.StatusPending:
		sub, err = s.repo.UpdateStatus(id, models.StatusApproved, repository.ReviewData{
			ReviewedBy:  reviewedBy,
			ReviewNotes: reviewNotes,
		})
		if err != nil {
			return nil, NewError(CodeInternal, "failed to approve submission", err)
		}
		s.notify(sub)
	case models.StatusApproved:
		// Trigger retry; the approval was committed on a previous call.
	default:
		return nil, NewError(CodeConflict, fmt.Sprintf("Submission is already %s", sub.Status), nil)
	}

	result := &ApproveResult{Submission: sub}
	if err := s.dispatcher.Dispatch(sub); err != nil {
		result.TriggerErr = err
	}
	return result, nil
}

// Reject moves a submission to rejected. Review notes are mandatory so the
// student learns why; the check runs before any state change. Rejection is
// allowed from any prior state as an administrative override.
func (s *ModerationService) Reject(id, reviewNotes, reviewedBy string) (*models.Submission, error) {
	if strings.TrimSpace(reviewNotes) == "" {
		return nil, NewValidationError("Review notes are required to reject a submission", map[string]string{
			"reviewNotes": "is required",
		})
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return nil, s.wrapLookup(err)
	}

	sub, err := s.repo.UpdateStatus(id, models.StatusRejected, repository.ReviewData{
		ReviewedBy:  reviewedBy,
		ReviewNotes: reviewNotes,
	})
	if err != nil {
		return nil, NewError(CodeInternal, "failed to reject submission", err)
	}
	s.notify(sub)
	return sub, nil
}

// Delete removes a submission regardless of its status.
func (s *ModerationService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return s.wrapLookup(err)
	}
	return nil
}

func (s *ModerationService) wrapLookup(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(CodeNotFound, "Submission not found", err)
	}
	return NewError(CodeInternal, "storage failure", err)
}

// notify emails the applicant about the decision. Best effort only; delivery
// problems are logged and never affect the moderation result.
func (s *ModerationService) notify(sub *models.Submission) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyDecision(sub); err != nil {
		log.Printf("Warning: failed to notify %s about %s decision: %v", sub.Email, sub.Status, err)
	}
}
