package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/pkg/auth"
	"github.com/yigit/advisory/internal/pkg/helpers"
)

// StudentService manages student records
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	students     StudentStore
	enroll       EnrollmentTx
	hashPassword func(string) (string, error)
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService. enroll binds record and account creation to one transaction.
func NewStudentService(students StudentStore, enroll EnrollmentTx, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		students:     students,
		enroll:       enroll,
		hashPassword: auth.HashPassword,
		logger:       logger,
	}
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &models.Student{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		EnrollmentYear: req.EnrollmentYear,
		Level:          req.Level,
	}

	var passwordHash string
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = hash
	}

	err := s.enroll(ctx, func(students StudentStore, accounts AccountStore) error {
		if err := students.Create(ctx, student); err != nil {
			return err
		}
		if passwordHash == "" {
			return nil
		}
		studentID := student.ID
		return accounts.Create(ctx, &models.Account{
			Email:        student.Email,
			PasswordHash: passwordHash,
			RoleType:     models.RoleStudent,
			StudentID:    &studentID,
			IsActive:     true,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Bool("withAccount", passwordHash != "").Msg("Student created")
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, total, err := s.students.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		items = append(items, dto.NewStudentResponse(&students[i]))
	}
	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, int(limit)),
	}, nil
}
