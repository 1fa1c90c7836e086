package academic

import (
	"fmt"
	"strings"

	"github.com/yigit/advisory/internal/app/models"
)

// Status is the eligibility of one student for one course.
type Status string

const (
	StatusBlocked   Status = "Blocked"
	StatusEligible  Status = "Eligible"
	StatusCompleted Status = "Completed"
)

// Fixed reason texts
const (
	ReasonNoPrerequisites = "No prerequisites required."
	ReasonEligible        = "Eligible."
	MissingLabel          = "Missing prerequisites: "
)

// Rank orders statuses: Blocked < Eligible < Completed.
func (s Status) Rank() int {
	switch s {
	case StatusBlocked:
		return 0
	case StatusEligible:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

// Eligibility is the outcome of classifying a course for a student.
type Eligibility struct {
	CourseID   int64    `json:"courseId"`
	CourseCode string   `json:"courseCode"`
	Status     Status   `json:"status"`
	Reason     string   `json:"reason"`
	Missing    []string `json:"missing,omitempty"`
}

// Requirement is one direct prerequisite edge together with the student's
// attempts on the required course.
type Requirement struct {
	CourseID   int64
	CourseCode string
	Attempts   []models.Result
}

// label returns the human readable name of the required course.
func (r Requirement) label() string {
	if r.CourseCode != "" {
		return r.CourseCode
	}
	return fmt.Sprintf("ID %d", r.CourseID)
}

// Classify decides Completed, Eligible or Blocked for the target course.
// attempts are the student's attempts on the target; requirements are the
// direct prerequisites in edge order. Only direct edges are checked.
func Classify(course models.Course, attempts []models.Result, requirements []Requirement) Eligibility {
	result := Eligibility{CourseID: course.ID, CourseCode: course.Code}

	if passed, ok := FirstPassing(attempts); ok {
		result.Status = StatusCompleted
		result.Reason = "Passed with " + passed.Grade
		return result
	}

	if len(requirements) == 0 {
		result.Status = StatusEligible
		result.Reason = ReasonNoPrerequisites
		return result
	}

	var missing []string
	for _, req := range requirements {
		if _, ok := FirstPassing(req.Attempts); !ok {
			missing = append(missing, req.label())
		}
	}

	if len(missing) == 0 {
		result.Status = StatusEligible
		result.Reason = ReasonEligible
		return result
	}

	result.Status = StatusBlocked
	result.Reason = MissingLabel + strings.Join(missing, ", ")
	result.Missing = missing
	return result
}

// GroupByCourse indexes attempts by course id, preserving order within each course.
func GroupByCourse(attempts []models.Result) map[int64][]models.Result {
	grouped := make(map[int64][]models.Result)
	for _, a := range attempts {
		grouped[a.CourseID] = append(grouped[a.CourseID], a)
	}
	return grouped
}
