package models

// Course represents a course in the catalog.
type Course struct {
	ID              int64  `json:"id" db:"id"`
	Code            string `json:"code" db:"code"`
	Name            string `json:"name" db:"name"`
	Credits         int    `json:"credits" db:"credits"`
	SemesterOffered Term   `json:"semesterOffered" db:"semester_offered"`
	Department      string `json:"department" db:"department"`
}
