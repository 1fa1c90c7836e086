package academic

import (
	"math"

	"github.com/yigit/advisory/internal/app/models"
)

// Performance is the credit-weighted summary of a set of attempts.
// TotalPoints and Average are rounded to two decimals.
type Performance struct {
	TotalCredits int     `json:"totalCredits"`
	TotalPoints  float64 `json:"totalPoints"`
	Average      float64 `json:"average"`
}

// Aggregate reduces attempts into total credits, total weighted points and the average.
// Failed attempts still count their credits; the stored grade point is used as recorded.
func Aggregate(attempts []models.Result) Performance {
	credits := 0
	points := 0.0

	for _, a := range attempts {
		credits += a.Credits
		points += a.GradePoint * float64(a.Credits)
	}

	average := 0.0
	if credits > 0 {
		average = points / float64(credits)
	}

	return Performance{
		TotalCredits: credits,
		TotalPoints:  Round2(points),
		Average:      Round2(average),
	}
}

// FilterBySemester returns the attempts recorded in the given semester.
func FilterBySemester(attempts []models.Result, semesterID int64) []models.Result {
	filtered := make([]models.Result, 0, len(attempts))
	for _, a := range attempts {
		if a.SemesterID == semesterID {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// PassedCredits sums the credits of passing attempts only.
func PassedCredits(attempts []models.Result) int {
	total := 0
	for _, a := range attempts {
		if IsPassing(a) {
			total += a.Credits
		}
	}
	return total
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
