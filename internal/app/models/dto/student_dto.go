package dto

import (
	"time"

	"github.com/yigit/advisory/internal/app/models"
)

// CreateStudentRequest represents student enrollment data.
// When Password is set a STUDENT account bound to the new record is created as well.
type CreateStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required,max=50" example:"John"`
	LastName       string `json:"lastName" binding:"required,max=50" example:"Doe"`
	Email          string `json:"email" binding:"required,email" example:"john@uni.edu"`
	EnrollmentYear int    `json:"enrollmentYear" binding:"required,gte=1900,lte=2100" example:"2023"`
	Level          int    `json:"level" binding:"required,oneof=100 200 300 400 500" example:"300"`
	Password       string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// StudentResponse represents a student record
type StudentResponse struct {
	ID             int64     `json:"id" example:"1"`
	FirstName      string    `json:"firstName" example:"John"`
	LastName       string    `json:"lastName" example:"Doe"`
	FullName       string    `json:"fullName" example:"John Doe"`
	Email          string    `json:"email" example:"john@uni.edu"`
	EnrollmentYear int       `json:"enrollmentYear" example:"2023"`
	Level          int       `json:"level" example:"300"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewStudentResponse maps a student model to its response
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:             s.ID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		FullName:       s.FullName(),
		Email:          s.Email,
		EnrollmentYear: s.EnrollmentYear,
		Level:          s.Level,
		CreatedAt:      s.CreatedAt,
	}
}
