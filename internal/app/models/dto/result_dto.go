package dto

import (
	"time"

	"github.com/yigit/advisory/internal/app/models"
)

// CreateResultRequest records one graded attempt.
// Credits defaults to the course's credit weight when omitted.
type CreateResultRequest struct {
	StudentID  int64    `json:"studentId" binding:"required,gt=0" example:"1"`
	CourseID   int64    `json:"courseId" binding:"required,gt=0" example:"2"`
	SemesterID int64    `json:"semesterId" binding:"required,gt=0" example:"1"`
	Grade      string   `json:"grade" binding:"required,grade" example:"B"`
	GradePoint *float64 `json:"gradePoint" binding:"required,gte=0,lte=5" example:"3.0"`
	Credits    *int     `json:"credits,omitempty" binding:"omitempty,gte=0,lte=12" example:"3"`
}

// ResultResponse represents a graded attempt
type ResultResponse struct {
	ID           int64     `json:"id" example:"1"`
	StudentID    int64     `json:"studentId" example:"1"`
	CourseID     int64     `json:"courseId" example:"2"`
	CourseCode   string    `json:"courseCode,omitempty" example:"CSC101"`
	SemesterID   int64     `json:"semesterId" example:"1"`
	SemesterName string    `json:"semesterName,omitempty" example:"Year 1 Sem 1"`
	Grade        string    `json:"grade" example:"F"`
	GradePoint   float64   `json:"gradePoint" example:"0"`
	Credits      int       `json:"credits" example:"3"`
	Passed       bool      `json:"passed" example:"false"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewResultResponse maps a result model; passed is computed by the caller's passing rule
func NewResultResponse(r *models.Result, passed bool) ResultResponse {
	resp := ResultResponse{
		ID:         r.ID,
		StudentID:  r.StudentID,
		CourseID:   r.CourseID,
		SemesterID: r.SemesterID,
		Grade:      r.Grade,
		GradePoint: r.GradePoint,
		Credits:    r.Credits,
		Passed:     passed,
		CreatedAt:  r.CreatedAt,
	}
	if r.Course != nil {
		resp.CourseCode = r.Course.Code
	}
	if r.Semester != nil {
		resp.SemesterName = r.Semester.Name
	}
	return resp
}
