package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`                            // Unique identifier for the student record
	FirstName      string    `json:"firstName" db:"first_name" example:"John"`          // Student's first name
	LastName       string    `json:"lastName" db:"last_name" example:"Doe"`             // Student's last name
	Email          string    `json:"email" db:"email" example:"john@uni.edu"`           // Unique contact email
	EnrollmentYear int       `json:"enrollmentYear" db:"enrollment_year" example:"2023"` // Year of first enrollment
	Level          int       `json:"level" db:"level" example:"300"`                    // Current level, e.g. 100, 200
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// FullName returns the display name used in dashboards and advisor replies
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
