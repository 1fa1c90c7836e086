package models

import "time"

// FailingGrade is the only letter grade that marks an attempt as not passed.
const FailingGrade = "F"

// Result is one graded attempt: a student, a course and a semester with the grade recorded.
// Credits holds the course credit weight at the time of recording.
type Result struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	SemesterID int64     `json:"semesterId" db:"semester_id"`
	Grade      string    `json:"grade" db:"grade"`
	GradePoint float64   `json:"gradePoint" db:"grade_point"`
	Credits    int       `json:"credits" db:"credits"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Course   *Course   `json:"course,omitempty"`
	Semester *Semester `json:"semester,omitempty"`
}
