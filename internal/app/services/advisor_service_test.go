package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/advisory/internal/app/advisor"
	"github.com/yigit/advisory/internal/pkg/apperrors"
)

func newAdvisor(m *memoryStore, maxBytes int) AdvisorService {
	return NewAdvisorService(newStanding(m), advisor.NewEngine(), maxBytes, zerolog.Nop())
}

func TestAdvisorAnswer(t *testing.T) {
	svc := newAdvisor(newDemoStore(), 1024)
	ctx := context.Background()

	tests := []struct {
		name     string
		question string
		intent   advisor.Intent
		text     string
	}{
		{
			name:     "blocked capstone",
			question: "Why can't I take CSC499?",
			intent:   advisor.IntentCourseEligibility,
			text:     "You cannot take CSC499: Capstone Project yet because: Missing prerequisites: CSC301",
		},
		{
			name:     "completed course",
			question: "why cant i register mth101",
			intent:   advisor.IntentCourseEligibility,
			text:     "You have already completed MTH101. Good job!",
		},
		{
			name:     "eligible retake",
			question: "Why can't I take CSC101 again?",
			intent:   advisor.IntentCourseEligibility,
			text:     "You are currently eligible to take CSC101. There are no missing prerequisites.",
		},
		{
			name:     "unknown course",
			question: "Why can't I take PHY999?",
			intent:   advisor.IntentCourseEligibility,
			text:     "I couldn't find a course with code PHY999 in our curriculum.",
		},
		{
			name:     "improve average",
			question: "  How can I improve my GPA?  ",
			intent:   advisor.IntentImprovePerformance,
			text:     "Your current CGPA is 2.25. To boost this,",
		},
		{
			name:     "fallback",
			question: "hello",
			intent:   advisor.IntentFallback,
			text:     advisor.FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := svc.Answer(ctx, 1, tt.question)
			require.NoError(t, err)
			assert.Equal(t, tt.intent, reply.Intent)
			assert.True(t, strings.HasPrefix(reply.Text, tt.text), reply.Text)
		})
	}
}

func TestAdvisorAnswer_SeesNewResults(t *testing.T) {
	m := newDemoStore()
	svc := newAdvisor(m, 0)

	m.addResult(resultFor(2, "A", 4.0, 3))
	reply, err := svc.Answer(context.Background(), 1, "why can't I take CSC201")
	require.NoError(t, err)
	assert.Equal(t, "You are currently eligible to take CSC201. There are no missing prerequisites.", reply.Text)
}

func TestAdvisorAnswer_InvalidUTF8(t *testing.T) {
	svc := newAdvisor(newDemoStore(), 1024)
	ctx := context.Background()

	reply, err := svc.Answer(ctx, 1, "hello\xff")
	require.NoError(t, err)
	assert.Equal(t, advisor.IntentFallback, reply.Intent)
	assert.Equal(t, advisor.FallbackMessage, reply.Text)

	reply, err = svc.Answer(ctx, 1, "Why can't I take CSC201?\xff")
	require.NoError(t, err)
	assert.Equal(t, advisor.IntentCourseEligibility, reply.Intent)
	assert.Equal(t, "CSC201", reply.CourseCode)
	assert.Equal(t, "You cannot take CSC201: Data Structures yet because: Missing prerequisites: CSC101", reply.Text)
}

func TestAdvisorAnswer_Rejections(t *testing.T) {
	svc := newAdvisor(newDemoStore(), 16)

	_, err := svc.Answer(context.Background(), 1, strings.Repeat("x", 17))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Answer(context.Background(), 77, "hello")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
