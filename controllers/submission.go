// controllers/submission.go
package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"student-showcase-api/middleware"
	"student-showcase-api/models"
	"student-showcase-api/repository"
	"student-showcase-api/services"
	"student-showcase-api/utils"
)

// SubmissionController handles the submission intake and admin moderation
// endpoints. All collaborators are injected; there is no package state.
type SubmissionController struct {
	repo       repository.SubmissionRepository
	moderation *services.ModerationService
	stats      *services.StatsService
}

func NewSubmissionController(repo repository.SubmissionRepository, moderation *services.ModerationService, stats *services.StatsService) *SubmissionController {
	return &SubmissionController{repo: repo, moderation: moderation, stats: stats}
}

// CreateSubmissionRequest is the intake document. Unknown fields are ignored;
// id and status are never accepted from the client.
type CreateSubmissionRequest struct {
	FirstName         string   `json:"firstName" binding:"required,max=50"`
	LastName          string   `json:"lastName" binding:"required,max=50"`
	Email             string   `json:"email" binding:"required,email"`
	Bio               string   `json:"bio" binding:"required,min=50,max=500"`
	PersonalStatement string   `json:"personalStatement" binding:"omitempty,max=1000"`
	Skills            []string `json:"skills" binding:"required,min=1,dive,required"`
	CareerGoals       string   `json:"careerGoals" binding:"omitempty,max=300"`
	Major             string   `json:"major"`
	GraduationYear    int      `json:"graduationYear" binding:"omitempty,min=2020,max=2035"`

	Website  string `json:"website" binding:"omitempty,url"`
	Github   string `json:"github" binding:"omitempty,url"`
	Linkedin string `json:"linkedin" binding:"omitempty,url"`
	Twitter  string `json:"twitter" binding:"omitempty,url"`

	PhotoData string `json:"photoData"`
	PhotoURL  string `json:"photoUrl" binding:"omitempty,url"`

	Projects []models.Project `json:"projects" binding:"required,min=1,max=6,dive"`
}

func (r *CreateSubmissionRequest) toSubmission() *models.Submission {
	return &models.Submission{
		FirstName:         utils.SanitizeInput(r.FirstName),
		LastName:          utils.SanitizeInput(r.LastName),
		Email:             utils.SanitizeInput(r.Email),
		Bio:               r.Bio,
		PersonalStatement: r.PersonalStatement,
		Skills:            models.StringList(r.Skills),
		CareerGoals:       r.CareerGoals,
		Major:             utils.SanitizeInput(r.Major),
		GraduationYear:    r.GraduationYear,
		Website:           r.Website,
		Github:            r.Github,
		Linkedin:          r.Linkedin,
		Twitter:           r.Twitter,
		PhotoData:         r.PhotoData,
		PhotoURL:          r.PhotoURL,
		Projects:          models.ProjectList(r.Projects),
		Status:            models.StatusPending,
	}
}

// ModerationRequest carries the optional review metadata for approve and the
// mandatory notes for reject.
type ModerationRequest struct {
	ReviewNotes string `json:"reviewNotes"`
	ReviewedBy  string `json:"reviewedBy"`
}

// CreateSubmission handles the public intake endpoint.
func (ctl *SubmissionController) CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := utils.ValidationErrorMap(err); details != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Best-effort duplicate check; a unique constraint is deliberately not
	// relied on (two concurrent intakes for one email can still both land).
	existing, err := ctl.repo.GetByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}
	if existing != nil && existing.Status == models.StatusPending {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "You already have a pending submission. Please wait for review.",
			"existingId": existing.ID,
		})
		return
	}

	created, err := ctl.repo.Create(req.toSubmission())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Submission received successfully",
		"id":      created.ID,
	})
}

// ListSubmissions returns a page of submissions, newest first.
func (ctl *SubmissionController) ListSubmissions(c *gin.Context) {
	status := models.SubmissionStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	limit := intQuery(c, "limit", repository.DefaultLimit)
	offset := intQuery(c, "offset", 0)

	records, total, err := ctl.repo.List(repository.QueryOptions{
		Status:         status,
		Limit:          limit,
		Offset:         offset,
		OrderBy:        "created_at",
		OrderDirection: "desc",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": records,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// GetSubmission returns a single submission.
func (ctl *SubmissionController) GetSubmission(c *gin.Context) {
	sub, err := ctl.repo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submission"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// UpdateSubmission applies a partial update. A status supplied here is
// validated against the enum but not against the transition graph: this is
// the administrative override and the path by which the PR workflow reports
// prUrl/prNumber and advances pr_created/merged.
func (ctl *SubmissionController) UpdateSubmission(c *gin.Context) {
	var req models.SubmissionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil && !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	updated, err := ctl.repo.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission updated",
		"submission": updated,
	})
}

// DeleteSubmission hard-deletes a submission regardless of status.
func (ctl *SubmissionController) DeleteSubmission(c *gin.Context) {
	if err := ctl.moderation.Delete(c.Param("id")); err != nil {
		ctl.writeServiceError(c, err, "Failed to delete submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted"})
}

// ApproveSubmission commits the approval and fires the PR trigger. A trigger
// failure does not undo the approval; it is reported alongside the success
// message so the operator can retry.
func (ctl *SubmissionController) ApproveSubmission(c *gin.Context) {
	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.moderation.Approve(c.Param("id"), req.ReviewNotes, ctl.reviewer(c, req))
	if err != nil {
		ctl.writeServiceError(c, err, "Failed to approve submission")
		return
	}

	if result.TriggerErr != nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Submission approved, but PR creation failed. You can retry.",
			"error":   result.TriggerErr.Error(),
		})
		return
	}

	// The PR URL and number arrive later through the workflow callback.
	c.JSON(http.StatusOK, gin.H{
		"message": "Submission approved and PR creation triggered",
	})
}

// RejectSubmission rejects a submission; review notes are mandatory.
func (ctl *SubmissionController) RejectSubmission(c *gin.Context) {
	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := ctl.moderation.Reject(c.Param("id"), req.ReviewNotes, ctl.reviewer(c, req))
	if err != nil {
		ctl.writeServiceError(c, err, "Failed to reject submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission rejected",
		"submission": sub,
	})
}

// GetSubmissionStats returns the per-status counts plus the derived total.
func (ctl *SubmissionController) GetSubmissionStats(c *gin.Context) {
	counts, err := ctl.stats.CountByStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// reviewer resolves who performed a moderation action: an explicit value in
// the request wins, otherwise the authenticated admin.
func (ctl *SubmissionController) reviewer(c *gin.Context, req ModerationRequest) string {
	if req.ReviewedBy != "" {
		return req.ReviewedBy
	}
	return c.GetString(middleware.ContextAdminEmail)
}

func (ctl *SubmissionController) writeServiceError(c *gin.Context, err error, fallback string) {
	switch services.CodeOf(err) {
	case services.CodeValidation:
		body := gin.H{"error": err.Error()}
		if fields := services.FieldsOf(err); fields != nil {
			body["details"] = fields
		}
		c.JSON(http.StatusBadRequest, body)
	case services.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.CodeConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case services.CodeUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
