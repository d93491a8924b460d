package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is one portfolio entry inside a submission. Projects are stored as
// a JSON column, never as a separate table.
type Project struct {
	Title          string   `json:"title" binding:"required,min=3,max=100"`
	Description    string   `json:"description" binding:"required,min=50,max=500"`
	Technologies   []string `json:"technologies" binding:"required,min=1,dive,required"`
	DemoURL        string   `json:"demoUrl,omitempty" binding:"omitempty,url"`
	RepoURL        string   `json:"repoUrl,omitempty" binding:"omitempty,url"`
	ScreenshotData string   `json:"screenshotData,omitempty"`
	ScreenshotURL  string   `json:"screenshotUrl,omitempty"`
	Semester       string   `json:"semester" binding:"required"`
	CompletedDate  string   `json:"completedDate,omitempty"`
	Featured       bool     `json:"featured"`
	CanEmbed       bool     `json:"canEmbed"`
}

// StringList serializes a string slice to a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ProjectList serializes the project entries to a JSON column.
type ProjectList []Project

func (l ProjectList) Value() (driver.Value, error) {
	if l == nil {
		l = ProjectList{}
	}
	return json.Marshal(l)
}

func (l *ProjectList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return fmt.Errorf("unsupported column type %T", value)
}

// Submission represents the submissions table.
type Submission struct {
	ID string `gorm:"primaryKey;column:id;size:36" json:"id"`

	// Student info
	FirstName         string     `gorm:"column:first_name;size:50" json:"firstName"`
	LastName          string     `gorm:"column:last_name;size:50" json:"lastName"`
	Email             string     `gorm:"column:email;size:255;index" json:"email"`
	Bio               string     `gorm:"column:bio;type:text" json:"bio"`
	PersonalStatement string     `gorm:"column:personal_statement;type:text" json:"personalStatement,omitempty"`
	Skills            StringList `gorm:"column:skills;type:json" json:"skills"`
	CareerGoals       string     `gorm:"column:career_goals;size:300" json:"careerGoals,omitempty"`
	Major             string     `gorm:"column:major;size:100" json:"major,omitempty"`
	GraduationYear    int        `gorm:"column:graduation_year" json:"graduationYear,omitempty"`

	// Contact links
	Website  string `gorm:"column:website;size:500" json:"website,omitempty"`
	Github   string `gorm:"column:github;size:500" json:"github,omitempty"`
	Linkedin string `gorm:"column:linkedin;size:500" json:"linkedin,omitempty"`
	Twitter  string `gorm:"column:twitter;size:500" json:"twitter,omitempty"`

	// Photo: inline data before upload, public URL after
	PhotoData string `gorm:"column:photo_data;type:longtext" json:"photoData,omitempty"`
	PhotoURL  string `gorm:"column:photo_url;size:500" json:"photoUrl,omitempty"`

	Projects ProjectList `gorm:"column:projects;type:json" json:"projects"`

	// Moderation
	Status      SubmissionStatus `gorm:"column:status;size:20;index" json:"status"`
	SubmittedAt *time.Time       `gorm:"column:submitted_at" json:"submittedAt,omitempty"`
	ReviewedAt  *time.Time       `gorm:"column:reviewed_at" json:"reviewedAt,omitempty"`
	ReviewedBy  string           `gorm:"column:reviewed_by;size:255" json:"reviewedBy,omitempty"`
	ReviewNotes string           `gorm:"column:review_notes;type:text" json:"reviewNotes,omitempty"`
	PRUrl       string           `gorm:"column:pr_url;size:500" json:"prUrl,omitempty"`
	PRNumber    int              `gorm:"column:pr_number" json:"prNumber,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

// BeforeCreate assigns the submission id.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// DisplayName returns the student name used in dispatch payloads and emails.
func (s *Submission) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

// Clone returns a deep copy so repository callers never hold live references.
func (s *Submission) Clone() *Submission {
	copied := *s
	if s.Skills != nil {
		copied.Skills = append(StringList{}, s.Skills...)
	}
	if s.Projects != nil {
		copied.Projects = make(ProjectList, len(s.Projects))
		for i, p := range s.Projects {
			copied.Projects[i] = p
			if p.Technologies != nil {
				copied.Projects[i].Technologies = append([]string{}, p.Technologies...)
			}
		}
	}
	if s.SubmittedAt != nil {
		t := *s.SubmittedAt
		copied.SubmittedAt = &t
	}
	if s.ReviewedAt != nil {
		t := *s.ReviewedAt
		copied.ReviewedAt = &t
	}
	return &copied
}
