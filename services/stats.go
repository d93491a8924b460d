package services

import (
	"student-showcase-api/models"
	"student-showcase-api/repository"
)

// StatusCounts is the per-status breakdown plus the derived total. The total
// is always computed from the five counts, never stored.
type StatusCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	PRCreated int64 `json:"pr_created"`
	Merged    int64 `json:"merged"`
}

// StatsService aggregates submission counts for the admin dashboard.
type StatsService struct {
	repo repository.SubmissionRepository
}

func NewStatsService(repo repository.SubmissionRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) CountByStatus() (*StatusCounts, error) {
	counts, err := s.repo.CountByStatus()
	if err != nil {
		return nil, NewError(CodeInternal, "failed to fetch statistics", err)
	}

	stats := &StatusCounts{
		Pending:   counts[models.StatusPending],
		Approved:  counts[models.StatusApproved],
		Rejected:  counts[models.StatusRejected],
		PRCreated: counts[models.StatusPRCreated],
		Merged:    counts[models.StatusMerged],
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected + stats.PRCreated + stats.Merged
	return stats, nil
}
