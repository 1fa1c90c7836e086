package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/advisory/internal/app/academic"
)

// Average tiers for improvement advice.
const (
	LowAverageThreshold  = 2.0
	HighAverageThreshold = 3.5
)

var (
	eligibilityCues = []string{"why", "can't", "cannot", "can’t"}
	improveCues     = []string{"improve"}
	metricCues      = []string{"cgpa", "gpa", "average", "score"}
)

// DefaultRules returns the built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		CourseEligibilityRule(),
		ImprovePerformanceRule(),
	}
}

// CourseEligibilityRule answers "why can't I take XYZ123" style questions.
func CourseEligibilityRule() Rule {
	return Rule{
		Intent: IntentCourseEligibility,
		Matches: func(q Question) bool {
			return q.CourseCode != "" && q.Contains(eligibilityCues...)
		},
		Respond: respondCourseEligibility,
	}
}

func respondCourseEligibility(q Question, snap *Snapshot) string {
	code := q.CourseCode
	course, ok := snap.Courses[code]
	if !ok {
		return fmt.Sprintf("I couldn't find a course with code %s in our curriculum.", code)
	}

	switch course.Status {
	case academic.StatusBlocked:
		return fmt.Sprintf("You cannot take %s: %s yet because: %s", code, course.Name, course.Reason)
	case academic.StatusCompleted:
		return fmt.Sprintf("You have already completed %s. Good job!", code)
	default:
		return fmt.Sprintf("You are currently eligible to take %s. There are no missing prerequisites.", code)
	}
}

// ImprovePerformanceRule answers "how can I improve my GPA" style questions.
func ImprovePerformanceRule() Rule {
	return Rule{
		Intent: IntentImprovePerformance,
		Matches: func(q Question) bool {
			return q.Contains(improveCues...) && q.Contains(metricCues...)
		},
		Respond: respondImprovePerformance,
	}
}

// formatAverage prints the shortest decimal form of an already rounded average,
// keeping one fractional digit for whole numbers (3 -> "3.0", 2.40 -> "2.4").
func formatAverage(avg float64) string {
	text := strconv.FormatFloat(avg, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

func respondImprovePerformance(_ Question, snap *Snapshot) string {
	advice := "Your current CGPA is " + formatAverage(snap.Average) + ". "

	switch {
	case snap.Average < LowAverageThreshold:
		advice += "You are at risk. Focus on retaking failed courses immediately to replace the 'F' grades."
	case snap.Average < HighAverageThreshold:
		advice += "To boost this, prioritize courses with higher credit units (3 or 4 credits) as they have a heavier weight on your GPA."
	default:
		advice += "You are doing great! Maintain your performance by keeping up with attendance and continuous assessments."
	}

	return advice
}
