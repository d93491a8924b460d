package services

import (
	"testing"

	"student-showcase-api/models"
	"student-showcase-api/repository"
)

func TestStatsEmptyStore(t *testing.T) {
	svc := NewStatsService(repository.NewMemoryRepository())

	counts, err := svc.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts.Total != 0 || counts.Pending != 0 || counts.Approved != 0 ||
		counts.Rejected != 0 || counts.PRCreated != 0 || counts.Merged != 0 {
		t.Errorf("expected all-zero counts, got %+v", counts)
	}
}

func TestStatsTotalIsDerived(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewStatsService(repo)

	statuses := []models.SubmissionStatus{
		models.StatusPending,
		models.StatusPending,
		models.StatusApproved,
		models.StatusRejected,
		models.StatusMerged,
	}
	for i, status := range statuses {
		sub, err := repo.Create(&models.Submission{
			FirstName: "S",
			LastName:  "Tudent",
			Email:     "s@x.edu",
		})
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		if status != models.StatusPending {
			if _, err := repo.UpdateStatus(sub.ID, status, repository.ReviewData{}); err != nil {
				t.Fatalf("seed status %d: %v", i, err)
			}
		}
	}

	counts, err := svc.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts.Pending != 2 || counts.Approved != 1 || counts.Rejected != 1 || counts.Merged != 1 || counts.PRCreated != 0 {
		t.Errorf("counts = %+v", counts)
	}
	sum := counts.Pending + counts.Approved + counts.Rejected + counts.PRCreated + counts.Merged
	if counts.Total != sum {
		t.Errorf("total = %d, want %d", counts.Total, sum)
	}
}
