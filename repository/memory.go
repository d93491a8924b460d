package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"student-showcase-api/models"
)

// MemoryRepository keeps submissions in process memory. It backs the test
// suite and the credential-less dev mode (DB_BACKEND=memory).
type MemoryRepository struct {
	mu          sync.RWMutex
	records     map[string]*models.Submission
	lastCreated time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*models.Submission)}
}

// now returns a strictly increasing creation timestamp so that newest-first
// ordering stays deterministic even for back-to-back creates.
func (r *MemoryRepository) now() time.Time {
	t := time.Now()
	if !t.After(r.lastCreated) {
		t = r.lastCreated.Add(time.Microsecond)
	}
	r.lastCreated = t
	return t
}

func (r *MemoryRepository) Create(sub *models.Submission) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := sub.Clone()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Status == "" {
		record.Status = models.StatusPending
	}
	now := r.now()
	if record.SubmittedAt == nil {
		t := now
		record.SubmittedAt = &t
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	r.records[record.ID] = record
	return record.Clone(), nil
}

func (r *MemoryRepository) GetByID(id string) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return record.Clone(), nil
}

func (r *MemoryRepository) GetByEmail(email string) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *models.Submission
	for _, record := range r.records {
		if !strings.EqualFold(record.Email, email) {
			continue
		}
		if newest == nil || record.CreatedAt.After(newest.CreatedAt) {
			newest = record
		}
	}
	if newest == nil {
		return nil, nil
	}
	return newest.Clone(), nil
}

func (r *MemoryRepository) List(opts QueryOptions) ([]models.Submission, int64, error) {
	opts = opts.withDefaults()

	r.mu.RLock()
	matched := make([]*models.Submission, 0, len(r.records))
	for _, record := range r.records {
		if opts.Status != "" && record.Status != opts.Status {
			continue
		}
		matched = append(matched, record)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if opts.OrderDirection == "desc" {
			i, j = j, i
		}
		return orderLess(matched[i], matched[j], opts.OrderBy)
	})

	total := int64(len(matched))
	start := opts.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + opts.Limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]models.Submission, 0, end-start)
	for _, record := range matched[start:end] {
		page = append(page, *record.Clone())
	}
	return page, total, nil
}

func orderLess(a, b *models.Submission, orderBy string) bool {
	switch orderBy {
	case "submitted_at":
		at, bt := a.CreatedAt, b.CreatedAt
		if a.SubmittedAt != nil {
			at = *a.SubmittedAt
		}
		if b.SubmittedAt != nil {
			bt = *b.SubmittedAt
		}
		return at.Before(bt)
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	case "email":
		return a.Email < b.Email
	case "status":
		return a.Status < b.Status
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func (r *MemoryRepository) Update(id string, update *models.SubmissionUpdate) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	update.Apply(record)
	record.UpdatedAt = time.Now()
	return record.Clone(), nil
}

func (r *MemoryRepository) UpdateStatus(id string, status models.SubmissionStatus, review ReviewData) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := time.Now()
	record.Status = status
	record.ReviewedAt = &now
	record.ReviewedBy = review.ReviewedBy
	record.ReviewNotes = review.ReviewNotes
	record.UpdatedAt = now
	return record.Clone(), nil
}

func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *MemoryRepository) CountByStatus() (map[models.SubmissionStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.SubmissionStatus]int64, len(models.AllStatuses()))
	for _, status := range models.AllStatuses() {
		counts[status] = 0
	}
	for _, record := range r.records {
		counts[record.Status]++
	}
	return counts, nil
}

// MemoryAdminStore holds the single env-seeded admin used in memory mode.
type MemoryAdminStore struct {
	admin *models.AdminUser
}

func NewMemoryAdminStore(admin *models.AdminUser) *MemoryAdminStore {
	return &MemoryAdminStore{admin: admin}
}

func (s *MemoryAdminStore) FindByEmail(email string) (*models.AdminUser, error) {
	if s.admin == nil || !strings.EqualFold(s.admin.Email, email) {
		return nil, ErrNotFound
	}
	copied := *s.admin
	return &copied, nil
}
