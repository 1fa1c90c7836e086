package auth

import (
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/pkg/apperrors"
)

// Authorization errors
var (
	ErrStudentScope = apperrors.NewForbiddenError("students may only access their own records")
)

// Principal is the authenticated caller as carried by the access token
type Principal struct {
	AccountID int64
	Email     string
	Role      models.RoleType
	StudentID *int64
}

// IsStaff reports whether the caller is an administrator or an adviser
func (p Principal) IsStaff() bool {
	return p.Role == models.RoleAdmin || p.Role == models.RoleAdviser
}

// CanAccessStudent reports whether the caller may read the given student's standing.
// Staff see every student; a student sees only the record bound to their account.
func (p Principal) CanAccessStudent(studentID int64) bool {
	if p.IsStaff() {
		return true
	}
	return p.Role == models.RoleStudent && p.StudentID != nil && *p.StudentID == studentID
}

// AuthorizeStudent returns ErrStudentScope when CanAccessStudent is false
func (p Principal) AuthorizeStudent(studentID int64) error {
	if !p.CanAccessStudent(studentID) {
		return ErrStudentScope
	}
	return nil
}

// HasRole reports whether the caller holds one of roles
func (p Principal) HasRole(roles ...models.RoleType) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
