package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/advisory/internal/app/models"
	appRepos "github.com/yigit/advisory/internal/app/repositories"
	"github.com/yigit/advisory/internal/pkg/auth"
)

// Options controls the demo accounts created alongside the curriculum
type Options struct {
	AdminEmail      string
	AdminPassword   string
	StudentPassword string
}

// DefaultOptions returns the demo credentials
func DefaultOptions() Options {
	return Options{
		AdminEmail:      "admin@uni.edu",
		AdminPassword:   "admin12345",
		StudentPassword: "student123",
	}
}

// DemoResult is a transcript row keyed by course code and semester position
type DemoResult struct {
	CourseCode    string
	SemesterIndex int
	Grade         string
	GradePoint    float64
	Credits       int
}

// DemoPrerequisite says Course requires Required
type DemoPrerequisite struct {
	Course   string
	Required string
}

// DemoStudent is the sample student
func DemoStudent() appModels.Student {
	return appModels.Student{FirstName: "John", LastName: "Doe", Email: "john@uni.edu", EnrollmentYear: 2023, Level: 300}
}

// DemoSemesters are the two terms of the first year
func DemoSemesters() []appModels.Semester {
	return []appModels.Semester{
		{Name: "Year 1 Sem 1", StartDate: day(2023, time.January, 1), EndDate: day(2023, time.May, 1)},
		{Name: "Year 1 Sem 2", StartDate: day(2023, time.June, 1), EndDate: day(2023, time.October, 1)},
	}
}

// DemoCourses is the curriculum in catalog order
func DemoCourses() []appModels.Course {
	return []appModels.Course{
		{Code: "MTH101", Name: "Calculus I", Credits: 3, SemesterOffered: appModels.TermFirst, Department: "Math"},
		{Code: "CSC101", Name: "Intro to Java", Credits: 3, SemesterOffered: appModels.TermFirst, Department: "CS"},
		{Code: "GST101", Name: "Use of English", Credits: 2, SemesterOffered: appModels.TermFirst, Department: "General"},
		{Code: "CSC201", Name: "Data Structures", Credits: 3, SemesterOffered: appModels.TermFirst, Department: "CS"},
		{Code: "CSC301", Name: "Advanced Java", Credits: 4, SemesterOffered: appModels.TermFirst, Department: "CS"},
		{Code: "CSC499", Name: "Capstone Project", Credits: 6, SemesterOffered: appModels.TermSecond, Department: "CS"},
	}
}

// DemoPrerequisites is the chain CSC101 -> CSC201 -> CSC301 -> CSC499
func DemoPrerequisites() []DemoPrerequisite {
	return []DemoPrerequisite{
		{Course: "CSC201", Required: "CSC101"},
		{Course: "CSC301", Required: "CSC201"},
		{Course: "CSC499", Required: "CSC301"},
	}
}

// DemoResults is John Doe's transcript. The failed CSC101 blocks CSC201.
func DemoResults() []DemoResult {
	return []DemoResult{
		{CourseCode: "MTH101", SemesterIndex: 0, Grade: "A", GradePoint: 4.0, Credits: 3},
		{CourseCode: "GST101", SemesterIndex: 0, Grade: "B", GradePoint: 3.0, Credits: 2},
		{CourseCode: "CSC101", SemesterIndex: 0, Grade: "F", GradePoint: 0.0, Credits: 3},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateDefaultData loads the demo curriculum, John Doe's transcript and the demo accounts.
// It does nothing when any student already exists. Run it inside a transaction so a partial seed rolls back.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, opts Options, lgr zerolog.Logger) error {
	_, total, err := repos.StudentRepository.List(ctx, 0, 1)
	if err != nil {
		return fmt.Errorf("check existing students: %w", err)
	}
	if total > 0 {
		lgr.Info().Int64("students", total).Msg("Data already seeded")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	student := DemoStudent()
	if err := repos.StudentRepository.Create(ctx, &student); err != nil {
		return fmt.Errorf("seed student: %w", err)
	}

	semesters := DemoSemesters()
	for i := range semesters {
		if err := repos.SemesterRepository.Create(ctx, &semesters[i]); err != nil {
			return fmt.Errorf("seed semester %s: %w", semesters[i].Name, err)
		}
	}

	courseIDs := make(map[string]int64)
	courses := DemoCourses()
	for i := range courses {
		if err := repos.CourseRepository.Create(ctx, &courses[i]); err != nil {
			return fmt.Errorf("seed course %s: %w", courses[i].Code, err)
		}
		courseIDs[courses[i].Code] = courses[i].ID
	}

	for _, p := range DemoPrerequisites() {
		edge := &appModels.Prerequisite{CourseID: courseIDs[p.Course], RequiredCourseID: courseIDs[p.Required]}
		if err := repos.PrerequisiteRepository.Create(ctx, edge); err != nil {
			return fmt.Errorf("seed prerequisite %s -> %s: %w", p.Required, p.Course, err)
		}
	}

	for _, r := range DemoResults() {
		result := &appModels.Result{
			StudentID:  student.ID,
			CourseID:   courseIDs[r.CourseCode],
			SemesterID: semesters[r.SemesterIndex].ID,
			Grade:      r.Grade,
			GradePoint: r.GradePoint,
			Credits:    r.Credits,
		}
		if err := repos.ResultRepository.Create(ctx, result); err != nil {
			return fmt.Errorf("seed result %s: %w", r.CourseCode, err)
		}
	}

	if err := createAccounts(ctx, repos, student.ID, opts); err != nil {
		return err
	}

	lgr.Info().
		Int64("studentID", student.ID).
		Int("courses", len(courses)).
		Str("adminEmail", opts.AdminEmail).
		Msg("Seeding complete")
	return nil
}

func createAccounts(ctx context.Context, repos *appRepos.Repositories, studentID int64, opts Options) error {
	adminHash, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &appModels.Account{Email: opts.AdminEmail, PasswordHash: adminHash, RoleType: appModels.RoleAdmin, IsActive: true}
	if err := repos.AccountRepository.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	studentHash, err := auth.HashPassword(opts.StudentPassword)
	if err != nil {
		return fmt.Errorf("hash student password: %w", err)
	}
	john := &appModels.Account{
		Email:        DemoStudent().Email,
		PasswordHash: studentHash,
		RoleType:     appModels.RoleStudent,
		StudentID:    &studentID,
		IsActive:     true,
	}
	if err := repos.AccountRepository.Create(ctx, john); err != nil {
		return fmt.Errorf("seed student account: %w", err)
	}
	return nil
}
