package dto

import (
	"time"

	"github.com/yigit/advisory/internal/app/models"
)

// CreateSemesterRequest represents a new academic semester
type CreateSemesterRequest struct {
	Name      string    `json:"name" binding:"required,max=50" example:"Year 1 Sem 1"`
	StartDate time.Time `json:"startDate" binding:"required" example:"2023-01-01T00:00:00Z"`
	EndDate   time.Time `json:"endDate" binding:"required,gtfield=StartDate" example:"2023-05-01T00:00:00Z"`
}

// SemesterResponse represents a semester
type SemesterResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Year 1 Sem 1"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// NewSemesterResponse maps a semester model to its response
func NewSemesterResponse(s *models.Semester) SemesterResponse {
	return SemesterResponse{ID: s.ID, Name: s.Name, StartDate: s.StartDate, EndDate: s.EndDate}
}
