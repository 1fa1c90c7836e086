package models

// Prerequisite is a directed edge: CourseID requires RequiredCourseID to be passed first.
type Prerequisite struct {
	ID               int64 `json:"id" db:"id"`
	CourseID         int64 `json:"courseId" db:"course_id"`
	RequiredCourseID int64 `json:"requiredCourseId" db:"required_course_id"`

	// RequiredCourseCode is joined from courses; empty when the required course row is gone.
	RequiredCourseCode string `json:"requiredCourseCode,omitempty"`
}
