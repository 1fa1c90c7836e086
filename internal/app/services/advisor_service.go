package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/advisor"
	"github.com/yigit/advisory/internal/pkg/apperrors"
)

// AdvisorService answers free-text questions from a fresh snapshot of the student's standing
type AdvisorService interface {
	Answer(ctx context.Context, studentID int64, question string) (advisor.Reply, error)
}

// advisorServiceImpl implements AdvisorService
type advisorServiceImpl struct {
	standing StandingService
	engine   *advisor.Engine
	maxBytes int
	logger   zerolog.Logger
}

// NewAdvisorService creates a new AdvisorService. maxQuestionBytes bounds accepted questions.
func NewAdvisorService(standing StandingService, engine *advisor.Engine, maxQuestionBytes int, logger zerolog.Logger) AdvisorService {
	if engine == nil {
		engine = advisor.NewEngine()
	}
	return &advisorServiceImpl{
		standing: standing,
		engine:   engine,
		maxBytes: maxQuestionBytes,
		logger:   logger,
	}
}

func (s *advisorServiceImpl) Answer(ctx context.Context, studentID int64, question string) (advisor.Reply, error) {
	if s.maxBytes > 0 && len(question) > s.maxBytes {
		return advisor.Reply{}, apperrors.NewBadRequestError("question is too long")
	}
	// Undecodable bytes never fail a question; the rules see replacement runes instead
	question = strings.ToValidUTF8(question, "\uFFFD")

	snap, err := s.standing.BuildContextSnapshot(ctx, studentID)
	if err != nil {
		return advisor.Reply{}, err
	}

	reply := s.engine.Answer(strings.TrimSpace(question), snap)

	s.logger.Info().
		Int64("studentID", studentID).
		Str("intent", string(reply.Intent)).
		Str("courseCode", reply.CourseCode).
		Msg("Advisor answered")
	return reply, nil
}
