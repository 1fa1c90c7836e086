package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/pkg/apperrors"
)

func newCatalog(m *memoryStore) CatalogService {
	return NewCatalogService(memCourses{m}, memEdges{m}, memSemesters{m}, zerolog.Nop())
}

func TestCreateCourse_NormalizesCode(t *testing.T) {
	svc := newCatalog(newDemoStore())

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Code: " csc302 ", Name: "Compilers", Credits: 3, SemesterOffered: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "CSC302", course.Code)
	assert.Equal(t, 2, course.SemesterOffered)

	_, err = svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{Code: "CSC302", Name: "Again", Credits: 3, SemesterOffered: 1})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{Code: "CS3020", Name: "Bad", Credits: 3, SemesterOffered: 1})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateCourse_RequiresPositiveCredits(t *testing.T) {
	m := newDemoStore()
	svc := newCatalog(m)

	for _, credits := range []int{0, -3} {
		_, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
			Code: "CSC303", Name: "Seminar", Credits: credits, SemesterOffered: 1,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	}

	_, err := memCourses{m}.GetByCode(context.Background(), "CSC303")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestAddPrerequisite(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(newDemoStore())

	edge, err := svc.AddPrerequisite(ctx, 6, &dto.CreatePrerequisiteRequest{RequiredCourseID: 1})
	require.NoError(t, err)
	assert.Equal(t, "MTH101", edge.RequiredCourseCode)

	edges, err := svc.ListPrerequisites(ctx, 6)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "CSC301", edges[0].RequiredCourseCode)
	assert.Equal(t, "MTH101", edges[1].RequiredCourseCode)

	_, err = svc.AddPrerequisite(ctx, 6, &dto.CreatePrerequisiteRequest{RequiredCourseID: 1})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.AddPrerequisite(ctx, 6, &dto.CreatePrerequisiteRequest{RequiredCourseID: 6})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.AddPrerequisite(ctx, 6, &dto.CreatePrerequisiteRequest{RequiredCourseID: 404})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.ListPrerequisites(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestSemesters(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog(newDemoStore())

	_, err := svc.CreateSemester(ctx, &dto.CreateSemesterRequest{Name: "Backwards", StartDate: date(2024, 5, 1), EndDate: date(2024, 1, 1)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	created, err := svc.CreateSemester(ctx, &dto.CreateSemesterRequest{Name: "Year 2 Sem 1", StartDate: date(2024, 1, 1), EndDate: date(2024, 5, 1)})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	all, err := svc.ListSemesters(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Year 2 Sem 1", all[2].Name)
}
