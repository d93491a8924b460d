package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"student-showcase-api/models"
)

// GormRepository is the MySQL-backed submission repository.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(sub *models.Submission) (*models.Submission, error) {
	record := sub.Clone()
	if record.Status == "" {
		record.Status = models.StatusPending
	}
	if record.SubmittedAt == nil {
		now := time.Now()
		record.SubmittedAt = &now
	}
	if err := r.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return record, nil
}

func (r *GormRepository) GetByID(id string) (*models.Submission, error) {
	var sub models.Submission
	if err := r.db.Where("id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &sub, nil
}

func (r *GormRepository) GetByEmail(email string) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Where("email = ?", email).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get submission by email: %w", err)
	}
	return &sub, nil
}

func (r *GormRepository) List(opts QueryOptions) ([]models.Submission, int64, error) {
	opts = opts.withDefaults()

	query := r.db.Model(&models.Submission{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	var subs []models.Submission
	err := query.Order(opts.OrderBy + " " + opts.OrderDirection).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&subs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return subs, total, nil
}

func (r *GormRepository) Update(id string, update *models.SubmissionUpdate) (*models.Submission, error) {
	changes := update.Changes()
	if len(changes) == 0 {
		return r.GetByID(id)
	}
	changes["updated_at"] = time.Now()

	tx := r.db.Model(&models.Submission{}).Where("id = ?", id).Updates(changes)
	if tx.Error != nil {
		return nil, fmt.Errorf("update submission: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		// Distinguish a missing row from a no-op write against identical values.
		if _, err := r.GetByID(id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}

func (r *GormRepository) UpdateStatus(id string, status models.SubmissionStatus, review ReviewData) (*models.Submission, error) {
	now := time.Now()
	changes := map[string]interface{}{
		"status":       status,
		"reviewed_at":  now,
		"reviewed_by":  review.ReviewedBy,
		"review_notes": review.ReviewNotes,
		"updated_at":   now,
	}

	tx := r.db.Model(&models.Submission{}).Where("id = ?", id).Updates(changes)
	if tx.Error != nil {
		return nil, fmt.Errorf("update submission status: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *GormRepository) Delete(id string) error {
	tx := r.db.Where("id = ?", id).Delete(&models.Submission{})
	if tx.Error != nil {
		return fmt.Errorf("delete submission: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) CountByStatus() (map[models.SubmissionStatus]int64, error) {
	var rows []struct {
		Status models.SubmissionStatus
		Total  int64
	}
	err := r.db.Model(&models.Submission{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count submissions by status: %w", err)
	}

	counts := make(map[models.SubmissionStatus]int64, len(models.AllStatuses()))
	for _, status := range models.AllStatuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// GormAdminStore looks up admins in the admin_users table.
type GormAdminStore struct {
	db *gorm.DB
}

func NewGormAdminStore(db *gorm.DB) *GormAdminStore {
	return &GormAdminStore{db: db}
}

func (s *GormAdminStore) FindByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}
