// Package repository defines the persistence contract for submissions and the
// concrete backends behind it. Everything above this layer talks only to the
// interfaces; the backend is picked once at startup and injected.
package repository

import (
	"errors"

	"student-showcase-api/models"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("submission not found")

const (
	DefaultLimit   = 20
	defaultOrderBy = "created_at"
)

// QueryOptions controls filtering and pagination for List.
type QueryOptions struct {
	Status         models.SubmissionStatus // empty = no filter
	Limit          int
	Offset         int
	OrderBy        string // created_at, submitted_at, updated_at, email, status
	OrderDirection string // "asc" or "desc"
}

func (o QueryOptions) withDefaults() QueryOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	switch o.OrderBy {
	case "created_at", "submitted_at", "updated_at", "email", "status":
	default:
		o.OrderBy = defaultOrderBy
	}
	if o.OrderDirection != "asc" {
		o.OrderDirection = "desc"
	}
	return o
}

// ReviewData is the optional moderation metadata written with a status change.
type ReviewData struct {
	ReviewedBy  string
	ReviewNotes string
}

// SubmissionRepository is the persistence contract. Implementations return
// snapshot copies; a caller never holds a live reference to stored state.
type SubmissionRepository interface {
	// Create persists a new submission, assigning its id, defaulting the
	// status to pending and stamping submittedAt.
	Create(sub *models.Submission) (*models.Submission, error)

	// GetByID returns the record or ErrNotFound.
	GetByID(id string) (*models.Submission, error)

	// GetByEmail returns the most recently created record for the email, or
	// (nil, nil) when none exists. Zero matches is not an error.
	GetByEmail(email string) (*models.Submission, error)

	// List returns a page of records plus the total count for the filter.
	// Default order is newest-first by creation time.
	List(opts QueryOptions) ([]models.Submission, int64, error)

	// Update applies a partial update and stamps updated_at.
	Update(id string, update *models.SubmissionUpdate) (*models.Submission, error)

	// UpdateStatus sets the status, reviewedAt and the review metadata in one
	// write.
	UpdateStatus(id string, status models.SubmissionStatus, review ReviewData) (*models.Submission, error)

	// Delete removes the record; ErrNotFound when it does not exist.
	Delete(id string) error

	// CountByStatus returns a count for every status value, zeros included.
	CountByStatus() (map[models.SubmissionStatus]int64, error)
}

// AdminStore looks up admin accounts for login.
type AdminStore interface {
	// FindByEmail returns the admin or ErrNotFound.
	FindByEmail(email string) (*models.AdminUser, error)
}
