package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"student-showcase-api/models"
	"student-showcase-api/repository"
)

// StudentController serves the public showcase listing: every submission that
// made it past moderation, projected down to its public fields.
type StudentController struct {
	repo repository.SubmissionRepository
}

func NewStudentController(repo repository.SubmissionRepository) *StudentController {
	return &StudentController{repo: repo}
}

// publicStatuses are the states visible on the showcase site.
var publicStatuses = []models.SubmissionStatus{
	models.StatusApproved,
	models.StatusPRCreated,
	models.StatusMerged,
}

// StudentProfile is the public projection of a submission. Email, inline
// photo data and moderation fields never leave the API.
type StudentProfile struct {
	ID             string           `json:"id"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Bio            string           `json:"bio"`
	Skills         []string         `json:"skills"`
	Major          string           `json:"major,omitempty"`
	GraduationYear int              `json:"graduationYear,omitempty"`
	Website        string           `json:"website,omitempty"`
	Github         string           `json:"github,omitempty"`
	Linkedin       string           `json:"linkedin,omitempty"`
	Twitter        string           `json:"twitter,omitempty"`
	PhotoURL       string           `json:"photoUrl,omitempty"`
	Projects       []models.Project `json:"projects"`
}

func toStudentProfile(sub models.Submission) StudentProfile {
	projects := make([]models.Project, len(sub.Projects))
	for i, p := range sub.Projects {
		p.ScreenshotData = ""
		projects[i] = p
	}
	return StudentProfile{
		ID:             sub.ID,
		FirstName:      sub.FirstName,
		LastName:       sub.LastName,
		Bio:            sub.Bio,
		Skills:         sub.Skills,
		Major:          sub.Major,
		GraduationYear: sub.GraduationYear,
		Website:        sub.Website,
		Github:         sub.Github,
		Linkedin:       sub.Linkedin,
		Twitter:        sub.Twitter,
		PhotoURL:       sub.PhotoURL,
		Projects:       projects,
	}
}

// ListStudents returns the public showcase, newest first.
func (ctl *StudentController) ListStudents(c *gin.Context) {
	students := make([]StudentProfile, 0)
	for _, status := range publicStatuses {
		records, _, err := ctl.repo.List(repository.QueryOptions{
			Status:         status,
			Limit:          200,
			OrderBy:        "created_at",
			OrderDirection: "desc",
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
			return
		}
		for _, record := range records {
			students = append(students, toStudentProfile(record))
		}
	}

	c.JSON(http.StatusOK, students)
}
