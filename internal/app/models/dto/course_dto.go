package dto

import "github.com/yigit/advisory/internal/app/models"

// CreateCourseRequest represents a new catalog entry
type CreateCourseRequest struct {
	Code            string `json:"code" binding:"required,coursecode" example:"CSC201"`
	Name            string `json:"name" binding:"required,max=100" example:"Data Structures"`
	Credits         int    `json:"credits" binding:"required,gte=1,lte=12" example:"3"`
	SemesterOffered int    `json:"semesterOffered" binding:"required,oneof=1 2" example:"1"`
	Department      string `json:"department,omitempty" binding:"max=100" example:"Computer Science"`
}

// CourseResponse represents a catalog course
type CourseResponse struct {
	ID              int64  `json:"id" example:"4"`
	Code            string `json:"code" example:"CSC201"`
	Name            string `json:"name" example:"Data Structures"`
	Credits         int    `json:"credits" example:"3"`
	SemesterOffered int    `json:"semesterOffered" example:"1"`
	Department      string `json:"department,omitempty" example:"Computer Science"`
}

// CreatePrerequisiteRequest adds a required predecessor to a course
type CreatePrerequisiteRequest struct {
	RequiredCourseID int64 `json:"requiredCourseId" binding:"required,gt=0" example:"2"`
}

// PrerequisiteResponse represents one prerequisite edge
type PrerequisiteResponse struct {
	ID                 int64  `json:"id" example:"1"`
	CourseID           int64  `json:"courseId" example:"4"`
	RequiredCourseID   int64  `json:"requiredCourseId" example:"2"`
	RequiredCourseCode string `json:"requiredCourseCode,omitempty" example:"CSC101"`
}

// NewCourseResponse maps a course model to its response
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Credits:         c.Credits,
		SemesterOffered: int(c.SemesterOffered),
		Department:      c.Department,
	}
}

// NewCourseListResponse maps a slice of courses
func NewCourseListResponse(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseResponse(&courses[i]))
	}
	return out
}

// NewPrerequisiteListResponse maps prerequisite edges
func NewPrerequisiteListResponse(edges []models.Prerequisite) []PrerequisiteResponse {
	out := make([]PrerequisiteResponse, 0, len(edges))
	for _, e := range edges {
		out = append(out, PrerequisiteResponse{
			ID:                 e.ID,
			CourseID:           e.CourseID,
			RequiredCourseID:   e.RequiredCourseID,
			RequiredCourseCode: e.RequiredCourseCode,
		})
	}
	return out
}
