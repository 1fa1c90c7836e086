// Package validation holds the input patterns shared by request binding and the CLI.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// CourseCodePattern is three letters followed by three digits, e.g. CSC201
	CourseCodePattern = `^[A-Za-z]{3}\d{3}$`

	// GradePattern is a letter grade, optionally signed
	GradePattern = `^[A-Fa-f][+-]?$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
	Grade      *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
	Grade:      regexp.MustCompile(GradePattern),
}

// IsCourseCode reports whether s is a well-formed course code
func IsCourseCode(s string) bool {
	return CompiledPatterns.CourseCode.MatchString(strings.TrimSpace(s))
}

// IsGrade reports whether s is a well-formed letter grade
func IsGrade(s string) bool {
	return CompiledPatterns.Grade.MatchString(strings.TrimSpace(s))
}

// NormalizeCourseCode trims and upper-cases a course code
func NormalizeCourseCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeGrade trims and upper-cases a letter grade
func NormalizeGrade(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Register adds the custom tags to a validator instance
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("coursecode", func(fl validator.FieldLevel) bool {
		return IsCourseCode(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register coursecode: %w", err)
	}
	if err := v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return IsGrade(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register grade: %w", err)
	}
	return nil
}

// RegisterWithGin installs the custom tags on gin's default binding validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}
