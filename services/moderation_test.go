package services

import (
	"errors"
	"strings"
	"testing"

	"student-showcase-api/models"
	"student-showcase-api/repository"
)

type fakeDispatcher struct {
	calls []string // submission ids in call order
	err   error
}

func (d *fakeDispatcher) Dispatch(sub *models.Submission) error {
	d.calls = append(d.calls, sub.ID)
	return d.err
}

type fakeNotifier struct {
	decisions []models.SubmissionStatus
	err       error
}

func (n *fakeNotifier) NotifyDecision(sub *models.Submission) error {
	n.decisions = append(n.decisions, sub.Status)
	return n.err
}

func seedPending(t *testing.T, repo repository.SubmissionRepository) *models.Submission {
	t.Helper()
	sub, err := repo.Create(&models.Submission{
		FirstName: "Ana",
		LastName:  "Lee",
		Email:     "ana@x.edu",
		Bio:       "I build small, sharp tools and occasionally a website that survives contact with real users.",
		Skills:    models.StringList{"Go"},
		Projects: models.ProjectList{{
			Title:        "X",
			Description:  "A project description long enough to clear the fifty character validation floor comfortably.",
			Technologies: []string{"Go"},
			Semester:     "Fall 2024",
		}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return sub
}

func TestApprovePending(t *testing.T) {
	repo := repository.NewMemoryRepository()
	dispatcher := &fakeDispatcher{}
	notifier := &fakeNotifier{}
	svc := NewModerationService(repo, dispatcher, notifier)
	sub := seedPending(t, repo)

	result, err := svc.Approve(sub.ID, "great portfolio", "admin@x.edu")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if result.TriggerErr != nil {
		t.Fatalf("unexpected trigger error: %v", result.TriggerErr)
	}
	if result.Submission.Status != models.StatusApproved {
		t.Errorf("status = %q", result.Submission.Status)
	}
	if result.Submission.ReviewedBy != "admin@x.edu" || result.Submission.ReviewNotes != "great portfolio" {
		t.Errorf("review metadata not set: %+v", result.Submission)
	}
	if result.Submission.ReviewedAt == nil {
		t.Error("reviewedAt not stamped")
	}
	if len(dispatcher.calls) != 1 || dispatcher.calls[0] != sub.ID {
		t.Errorf("dispatcher calls = %v", dispatcher.calls)
	}
	if len(notifier.decisions) != 1 || notifier.decisions[0] != models.StatusApproved {
		t.Errorf("notifier decisions = %v", notifier.decisions)
	}
}

func TestApproveSurvivesTriggerFailure(t *testing.T) {
	repo := repository.NewMemoryRepository()
	dispatcher := &fakeDispatcher{err: NewError(CodeUpstream, "GitHub token not configured", nil)}
	svc := NewModerationService(repo, dispatcher, nil)
	sub := seedPending(t, repo)

	result, err := svc.Approve(sub.ID, "", "admin@x.edu")
	if err != nil {
		t.Fatalf("Approve must not fail on trigger errors: %v", err)
	}
	if result.TriggerErr == nil {
		t.Fatal("expected the trigger failure to be surfaced")
	}

	// The local transition is durable regardless of the side effect.
	stored, _ := repo.GetByID(sub.ID)
	if stored.Status != models.StatusApproved {
		t.Errorf("stored status = %q, want approved", stored.Status)
	}
}

func TestApproveRetriesFromApproved(t *testing.T) {
	repo := repository.NewMemoryRepository()
	dispatcher := &fakeDispatcher{err: errors.New("boom")}
	svc := NewModerationService(repo, dispatcher, nil)
	sub := seedPending(t, repo)

	first, err := svc.Approve(sub.ID, "notes", "admin@x.edu")
	if err != nil || first.TriggerErr == nil {
		t.Fatalf("setup approve: err=%v triggerErr=%v", err, first.TriggerErr)
	}

	dispatcher.err = nil
	second, err := svc.Approve(sub.ID, "", "someone-else@x.edu")
	if err != nil {
		t.Fatalf("retry approve: %v", err)
	}
	if second.TriggerErr != nil {
		t.Fatalf("retry trigger error: %v", second.TriggerErr)
	}
	if len(dispatcher.calls) != 2 {
		t.Errorf("dispatcher calls = %d, want 2", len(dispatcher.calls))
	}

	// The retry only re-fires the trigger; the original review stands.
	stored, _ := repo.GetByID(sub.ID)
	if stored.ReviewedBy != "admin@x.edu" {
		t.Errorf("reviewedBy overwritten on retry: %q", stored.ReviewedBy)
	}
}

func TestApproveConflictNamesCurrentStatus(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewModerationService(repo, &fakeDispatcher{}, nil)
	sub := seedPending(t, repo)
	repo.UpdateStatus(sub.ID, models.StatusRejected, repository.ReviewData{})

	_, err := svc.Approve(sub.ID, "", "admin@x.edu")
	if err == nil {
		t.Fatal("expected conflict")
	}
	if CodeOf(err) != CodeConflict {
		t.Errorf("code = %q, want conflict", CodeOf(err))
	}
	if !strings.Contains(err.Error(), "rejected") {
		t.Errorf("conflict message must name the current status: %q", err.Error())
	}
}

func TestApproveNotFound(t *testing.T) {
	svc := NewModerationService(repository.NewMemoryRepository(), &fakeDispatcher{}, nil)

	_, err := svc.Approve("missing", "", "admin@x.edu")
	if CodeOf(err) != CodeNotFound {
		t.Errorf("code = %q, want not_found", CodeOf(err))
	}
}

func TestRejectRequiresNotes(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewModerationService(repo, &fakeDispatcher{}, nil)
	sub := seedPending(t, repo)

	_, err := svc.Reject(sub.ID, "   ", "admin@x.edu")
	if CodeOf(err) != CodeValidation {
		t.Fatalf("code = %q, want validation", CodeOf(err))
	}
	if FieldsOf(err)["reviewNotes"] == "" {
		t.Error("expected field detail for reviewNotes")
	}

	// The check runs before any state change.
	stored, _ := repo.GetByID(sub.ID)
	if stored.Status != models.StatusPending {
		t.Errorf("status changed to %q despite validation failure", stored.Status)
	}
}

func TestReject(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := &fakeNotifier{}
	svc := NewModerationService(repo, &fakeDispatcher{}, notifier)
	sub := seedPending(t, repo)

	rejected, err := svc.Reject(sub.ID, "incomplete projects", "admin@x.edu")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.Status != models.StatusRejected {
		t.Errorf("status = %q", rejected.Status)
	}
	if rejected.ReviewNotes != "incomplete projects" {
		t.Errorf("reviewNotes = %q", rejected.ReviewNotes)
	}
	if len(notifier.decisions) != 1 || notifier.decisions[0] != models.StatusRejected {
		t.Errorf("notifier decisions = %v", notifier.decisions)
	}
}

func TestRejectNotFound(t *testing.T) {
	svc := NewModerationService(repository.NewMemoryRepository(), &fakeDispatcher{}, nil)

	_, err := svc.Reject("missing", "notes", "admin@x.edu")
	if CodeOf(err) != CodeNotFound {
		t.Errorf("code = %q, want not_found", CodeOf(err))
	}
}

func TestNotifierFailureDoesNotAffectDecision(t *testing.T) {
	repo := repository.NewMemoryRepository()
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewModerationService(repo, &fakeDispatcher{}, notifier)
	sub := seedPending(t, repo)

	result, err := svc.Approve(sub.ID, "", "admin@x.edu")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if result.Submission.Status != models.StatusApproved {
		t.Errorf("status = %q", result.Submission.Status)
	}
}

func TestDelete(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewModerationService(repo, &fakeDispatcher{}, nil)
	sub := seedPending(t, repo)
	repo.UpdateStatus(sub.ID, models.StatusMerged, repository.ReviewData{})

	// Delete works regardless of status, even terminal ones.
	if err := svc.Delete(sub.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(sub.ID); CodeOf(err) != CodeNotFound {
		t.Errorf("code = %q, want not_found", CodeOf(err))
	}
}
