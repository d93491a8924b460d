package models

// SubmissionUpdate carries a partial update. Nil fields are left untouched.
// Changes and Apply enumerate the same field list; submission_update_test.go
// keeps the two in sync.
type SubmissionUpdate struct {
	FirstName         *string           `json:"firstName"`
	LastName          *string           `json:"lastName"`
	Email             *string           `json:"email"`
	Bio               *string           `json:"bio"`
	PersonalStatement *string           `json:"personalStatement"`
	Skills            *StringList       `json:"skills"`
	CareerGoals       *string           `json:"careerGoals"`
	Major             *string           `json:"major"`
	GraduationYear    *int              `json:"graduationYear"`
	Website           *string           `json:"website"`
	Github            *string           `json:"github"`
	Linkedin          *string           `json:"linkedin"`
	Twitter           *string           `json:"twitter"`
	PhotoData         *string           `json:"photoData"`
	PhotoURL          *string           `json:"photoUrl"`
	Projects          *ProjectList      `json:"projects"`
	Status            *SubmissionStatus `json:"status"`
	ReviewedBy        *string           `json:"reviewedBy"`
	ReviewNotes       *string           `json:"reviewNotes"`
	PRUrl             *string           `json:"prUrl"`
	PRNumber          *int              `json:"prNumber"`
}

// Changes returns the set fields as a column -> value map for the SQL backend.
func (u *SubmissionUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.FirstName != nil {
		changes["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		changes["last_name"] = *u.LastName
	}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	if u.Bio != nil {
		changes["bio"] = *u.Bio
	}
	if u.PersonalStatement != nil {
		changes["personal_statement"] = *u.PersonalStatement
	}
	if u.Skills != nil {
		changes["skills"] = *u.Skills
	}
	if u.CareerGoals != nil {
		changes["career_goals"] = *u.CareerGoals
	}
	if u.Major != nil {
		changes["major"] = *u.Major
	}
	if u.GraduationYear != nil {
		changes["graduation_year"] = *u.GraduationYear
	}
	if u.Website != nil {
		changes["website"] = *u.Website
	}
	if u.Github != nil {
		changes["github"] = *u.Github
	}
	if u.Linkedin != nil {
		changes["linkedin"] = *u.Linkedin
	}
	if u.Twitter != nil {
		changes["twitter"] = *u.Twitter
	}
	if u.PhotoData != nil {
		changes["photo_data"] = *u.PhotoData
	}
	if u.PhotoURL != nil {
		changes["photo_url"] = *u.PhotoURL
	}
	if u.Projects != nil {
		changes["projects"] = *u.Projects
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.ReviewedBy != nil {
		changes["reviewed_by"] = *u.ReviewedBy
	}
	if u.ReviewNotes != nil {
		changes["review_notes"] = *u.ReviewNotes
	}
	if u.PRUrl != nil {
		changes["pr_url"] = *u.PRUrl
	}
	if u.PRNumber != nil {
		changes["pr_number"] = *u.PRNumber
	}
	return changes
}

// Apply writes the set fields onto s for the in-memory backend.
func (u *SubmissionUpdate) Apply(s *Submission) {
	if u.FirstName != nil {
		s.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		s.LastName = *u.LastName
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Bio != nil {
		s.Bio = *u.Bio
	}
	if u.PersonalStatement != nil {
		s.PersonalStatement = *u.PersonalStatement
	}
	if u.Skills != nil {
		s.Skills = append(StringList{}, (*u.Skills)...)
	}
	if u.CareerGoals != nil {
		s.CareerGoals = *u.CareerGoals
	}
	if u.Major != nil {
		s.Major = *u.Major
	}
	if u.GraduationYear != nil {
		s.GraduationYear = *u.GraduationYear
	}
	if u.Website != nil {
		s.Website = *u.Website
	}
	if u.Github != nil {
		s.Github = *u.Github
	}
	if u.Linkedin != nil {
		s.Linkedin = *u.Linkedin
	}
	if u.Twitter != nil {
		s.Twitter = *u.Twitter
	}
	if u.PhotoData != nil {
		s.PhotoData = *u.PhotoData
	}
	if u.PhotoURL != nil {
		s.PhotoURL = *u.PhotoURL
	}
	if u.Projects != nil {
		s.Projects = append(ProjectList{}, (*u.Projects)...)
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.ReviewedBy != nil {
		s.ReviewedBy = *u.ReviewedBy
	}
	if u.ReviewNotes != nil {
		s.ReviewNotes = *u.ReviewNotes
	}
	if u.PRUrl != nil {
		s.PRUrl = *u.PRUrl
	}
	if u.PRNumber != nil {
		s.PRNumber = *u.PRNumber
	}
}

// IsEmpty reports whether no field is set.
func (u *SubmissionUpdate) IsEmpty() bool {
	return len(u.Changes()) == 0
}
