package models

import "time"

// Account is a login identity. Student accounts are bound to a student record.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	RoleType     RoleType  `json:"roleType" db:"role_type"`
	StudentID    *int64    `json:"studentId,omitempty" db:"student_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
