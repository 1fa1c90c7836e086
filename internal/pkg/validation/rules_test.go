package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCourseCode(t *testing.T) {
	assert.True(t, IsCourseCode("CSC201"))
	assert.True(t, IsCourseCode("mth101"))
	assert.False(t, IsCourseCode("CS201"))
	assert.False(t, IsCourseCode("CSC2011"))
	assert.False(t, IsCourseCode(""))
}

func TestIsGrade(t *testing.T) {
	for _, g := range []string{"A", "b", "F", "B+", "C-"} {
		assert.True(t, IsGrade(g), g)
	}
	for _, g := range []string{"G", "AA", "", "4.0"} {
		assert.False(t, IsGrade(g), g)
	}
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type payload struct {
		Code  string `validate:"coursecode"`
		Grade string `validate:"grade"`
	}

	assert.NoError(t, v.Struct(payload{Code: "CSC499", Grade: "A"}))

	err := v.Struct(payload{Code: "CSC49", Grade: "Z"})
	require.Error(t, err)
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}
