package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Constraint names declared in the schema migrations
const (
	StudentsEmailKey          = "students_email_key"
	CoursesCodeKey            = "courses_code_key"
	AccountsEmailKey          = "accounts_email_key"
	PrerequisitesEdgeKey      = "prerequisites_course_required_key"
	PrerequisitesNoSelfCheck  = "prerequisites_no_self_check"
	ResultsStudentForeignKey  = "results_student_id_fkey"
	ResultsCourseForeignKey   = "results_course_id_fkey"
	ResultsSemesterForeignKey = "results_semester_id_fkey"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	return hasConstraint(err, codeUniqueViolation, constraintName)
}

// IsForeignKeyError checks if the error is a foreign key violation for a specific constraint.
func IsForeignKeyError(err error, constraintName string) bool {
	return hasConstraint(err, codeForeignKeyViolation, constraintName)
}

// IsCheckConstraintError checks if the error is a check violation for a specific constraint.
func IsCheckConstraintError(err error, constraintName string) bool {
	return hasConstraint(err, codeCheckViolation, constraintName)
}

func hasConstraint(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code && pgErr.ConstraintName == constraintName
}
