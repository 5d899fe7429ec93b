package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/careermind/interviewprep/internal/model"
	"github.com/careermind/interviewprep/internal/repository"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/careermind/interviewprep/internal/service")

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrPersistence      = errors.New("failed to save response")
)

// AnswerSubmission is one candidate answer as received from the transport layer.
type AnswerSubmission struct {
	QuestionID string
	UserID     string
	Answer     string
	TimeSpent  int // seconds
}

// EvaluationOutcome records which path produced the returned feedback.
type EvaluationOutcome string

const (
	OutcomeGraded        EvaluationOutcome = "graded"
	OutcomeQuotaFallback EvaluationOutcome = "quota_fallback"
	OutcomeFallback      EvaluationOutcome = "fallback"
)

type EvaluationService interface {
	SubmitAnswer(ctx context.Context, submission AnswerSubmission) (*dto.SubmitAnswerResponse, error)
}

type evaluationService struct {
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	grader       GradingClient
}

func NewEvaluationService(
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	grader GradingClient,
) EvaluationService {
	return &evaluationService{
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		grader:       grader,
	}
}

// SubmitAnswer looks the question up, grades the answer once, and stores
// exactly one ResponseRecord. Grading failures never surface as errors; they
// are replaced by fallback feedback.
func (s *evaluationService) SubmitAnswer(ctx context.Context, submission AnswerSubmission) (*dto.SubmitAnswerResponse, error) {
	ctx, span := tracer.Start(ctx, "interview.submit_answer", trace.WithAttributes(
		attribute.String("question.id", submission.QuestionID),
		attribute.Int("answer.length", len(submission.Answer)),
	))
	defer span.End()

	question, err := s.questionRepo.FindByID(ctx, submission.QuestionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			span.SetStatus(codes.Error, "question not found")
			return nil, ErrQuestionNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "question lookup failed")
		return nil, fmt.Errorf("failed to load question %s: %w", submission.QuestionID, err)
	}

	start := time.Now()
	feedback, outcome := s.evaluate(ctx, question, submission.Answer)
	span.SetAttributes(
		attribute.String("evaluation.outcome", string(outcome)),
		attribute.Int("feedback.score", feedback.Score),
	)

	record := &model.ResponseRecord{
		UserID:     submission.UserID,
		QuestionID: question.ID,
		Question:   question.Question,
		Category:   question.Category,
		Answer:     submission.Answer,
		Feedback:   feedback,
		TimeSpent:  submission.TimeSpent,
	}
	if err := s.responseRepo.Create(ctx, record); err != nil {
		log.Error().Err(err).
			Str("questionId", question.ID).
			Str("userId", submission.UserID).
			Msg("Failed to persist interview response")
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Info().
		Str("responseId", record.ID).
		Str("questionId", question.ID).
		Str("userId", submission.UserID).
		Str("outcome", string(outcome)).
		Int("score", feedback.Score).
		Dur("elapsed", time.Since(start)).
		Msg("Interview answer evaluated")

	return &dto.SubmitAnswerResponse{ResponseID: record.ID, Feedback: feedback}, nil
}

func (s *evaluationService) evaluate(ctx context.Context, question *model.Question, answer string) (model.Feedback, EvaluationOutcome) {
	ctx, span := tracer.Start(ctx, "interview.grade")
	defer span.End()

	raw, err := s.grader.Grade(ctx, GradingRequest{
		Question:         question.Question,
		Category:         question.Category,
		Type:             question.Type,
		ExpectedKeywords: question.ExpectedKeywords,
		Answer:           answer,
	})
	if err != nil {
		kind := ClassifyGradingError(err)
		span.RecordError(err)
		span.SetAttributes(attribute.String("grading.failure", kind.String()))
		log.Warn().Err(err).
			Str("questionId", question.ID).
			Str("failure", kind.String()).
			Msg("Grading call failed, using fallback feedback")
		if kind == FailureQuotaExhausted {
			return QuotaFallbackFeedback(question.ExpectedKeywords), OutcomeQuotaFallback
		}
		return GenericFallbackFeedback(), OutcomeFallback
	}

	result := ParseFeedback(raw)
	if !result.OK {
		span.SetAttributes(attribute.String("grading.parse_error", result.Reason))
		log.Warn().
			Str("questionId", question.ID).
			Str("reason", result.Reason).
			Int("rawLength", len(raw)).
			Msg("Could not parse grading output, using fallback feedback")
		return GenericFallbackFeedback(), OutcomeFallback
	}
	return result.Feedback, OutcomeGraded
}
