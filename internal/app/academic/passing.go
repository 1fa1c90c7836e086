package academic

import (
	"strings"

	"github.com/yigit/advisory/internal/app/models"
)

// IsPassing reports whether an attempt counts as passed.
// Every grade except models.FailingGrade passes, whatever its grade point.
func IsPassing(attempt models.Result) bool {
	return strings.TrimSpace(attempt.Grade) != models.FailingGrade
}

// FirstPassing returns the first passing attempt in the given order.
func FirstPassing(attempts []models.Result) (models.Result, bool) {
	for _, a := range attempts {
		if IsPassing(a) {
			return a, true
		}
	}
	return models.Result{}, false
}
