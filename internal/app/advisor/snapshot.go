package advisor

import "github.com/yigit/advisory/internal/app/academic"

// CourseStanding is one catalog course as seen by a single student.
type CourseStanding struct {
	Name    string          `json:"name"`
	Status  academic.Status `json:"status"`
	Reason  string          `json:"reason"`
	Credits int             `json:"credits"`
}

// Snapshot is everything the engine knows when answering one question.
type Snapshot struct {
	StudentName string                    `json:"studentName"`
	Average     float64                   `json:"cgpa"`
	Courses     map[string]CourseStanding `json:"courses"`
}
