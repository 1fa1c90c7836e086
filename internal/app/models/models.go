package models

// RoleType defines the account role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleAdviser RoleType = "ADVISER"
	RoleStudent RoleType = "STUDENT"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAdviser, RoleStudent:
		return true
	}
	return false
}

// Term represents the semester a course is offered in
type Term int

// Term constants
const (
	TermFirst  Term = 1
	TermSecond Term = 2
)
