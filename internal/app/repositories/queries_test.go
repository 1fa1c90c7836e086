package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectEdgesQuery_KeepsOrphanedEdges(t *testing.T) {
	sql, args, err := selectEdgesQuery().Where(squirrel.Eq{"p.course_id": int64(4)}).OrderBy("p.id").ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "LEFT JOIN courses rc ON rc.id = p.required_course_id")
	assert.Contains(t, sql, "COALESCE(rc.code, '')")
	assert.Contains(t, sql, "p.course_id = $1")
	assert.Contains(t, sql, "ORDER BY p.id")
	assert.Equal(t, []interface{}{int64(4)}, args)
}

func TestSelectResultDetailsQuery_StoreOrder(t *testing.T) {
	r := &ResultRepository{}
	sql, args, err := r.selectResultDetailsQuery().Where(squirrel.Eq{"r.student_id": int64(1), "r.course_id": []int64{2, 3}}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "JOIN courses c ON c.id = r.course_id")
	assert.Contains(t, sql, "JOIN semesters s ON s.id = r.semester_id")
	assert.Contains(t, sql, "r.course_id IN ($1,$2)")
	assert.Contains(t, sql, "ORDER BY r.id")
	assert.Len(t, args, 3)
}
