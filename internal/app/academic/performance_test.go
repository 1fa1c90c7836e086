package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/advisory/internal/app/models"
)

func attempt(courseID int64, grade string, gp float64, credits int) models.Result {
	return models.Result{CourseID: courseID, SemesterID: 1, Grade: grade, GradePoint: gp, Credits: credits}
}

func TestAggregate_WeightedAverage(t *testing.T) {
	attempts := []models.Result{
		attempt(1, "A", 4.0, 3),
		attempt(2, "B", 3.0, 2),
		attempt(3, "F", 0.0, 3),
	}

	perf := Aggregate(attempts)

	assert.Equal(t, 8, perf.TotalCredits)
	assert.Equal(t, 18.0, perf.TotalPoints)
	assert.Equal(t, 2.25, perf.Average)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, Performance{}, Aggregate(nil))
	assert.Equal(t, Performance{}, Aggregate([]models.Result{}))
}

func TestAggregate_ZeroCreditsGuardsDivision(t *testing.T) {
	perf := Aggregate([]models.Result{attempt(1, "A", 4.0, 0)})

	assert.Equal(t, 0, perf.TotalCredits)
	assert.Equal(t, 0.0, perf.Average)
}

func TestAggregate_TrustsStoredGradePointOnFail(t *testing.T) {
	perf := Aggregate([]models.Result{attempt(1, "F", 1.0, 2)})

	assert.Equal(t, 2, perf.TotalCredits)
	assert.Equal(t, 2.0, perf.TotalPoints)
	assert.Equal(t, 1.0, perf.Average)
}

func TestAggregate_AverageMatchesRoundedRatio(t *testing.T) {
	sets := [][]models.Result{
		{attempt(1, "B", 3.33, 3), attempt(2, "C", 2.67, 4), attempt(3, "A", 4.0, 1)},
		{attempt(1, "D", 1.0, 2), attempt(1, "B", 3.0, 2)},
		{attempt(1, "A", 3.7, 3), attempt(2, "A", 3.7, 3), attempt(3, "A", 3.7, 3)},
	}

	for _, set := range sets {
		credits := 0
		raw := 0.0
		for _, a := range set {
			credits += a.Credits
			raw += a.GradePoint * float64(a.Credits)
		}

		perf := Aggregate(set)

		assert.Equal(t, credits, perf.TotalCredits)
		assert.Equal(t, Round2(raw/float64(credits)), perf.Average)
	}
}

func TestAggregate_RetakesBothCount(t *testing.T) {
	perf := Aggregate([]models.Result{attempt(1, "F", 0, 3), attempt(1, "B", 3.0, 3)})

	assert.Equal(t, 6, perf.TotalCredits)
	assert.Equal(t, 1.5, perf.Average)
}

func TestAggregate_Idempotent(t *testing.T) {
	attempts := []models.Result{attempt(1, "A", 4.0, 3), attempt(2, "C", 2.0, 4)}

	assert.Equal(t, Aggregate(attempts), Aggregate(attempts))
}

func TestFilterBySemester(t *testing.T) {
	a := attempt(1, "A", 4.0, 3)
	b := attempt(2, "B", 3.0, 2)
	b.SemesterID = 2

	assert.Equal(t, []models.Result{b}, FilterBySemester([]models.Result{a, b}, 2))
	assert.Empty(t, FilterBySemester([]models.Result{a, b}, 9))
}

func TestPassedCredits(t *testing.T) {
	attempts := []models.Result{attempt(1, "A", 4.0, 3), attempt(2, "F", 0, 4), attempt(3, "D", 0, 2)}

	assert.Equal(t, 5, PassedCredits(attempts))
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(attempt(1, "A", 4.0, 3)))
	assert.True(t, IsPassing(attempt(1, "E", 0.0, 3)))
	assert.False(t, IsPassing(attempt(1, "F", 0.0, 3)))
	assert.False(t, IsPassing(attempt(1, "F", 2.0, 3)))
}
