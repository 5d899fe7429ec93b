package service

import (
	"context"
	"fmt"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/careermind/interviewprep/internal/model"
	"github.com/careermind/interviewprep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type QuestionAdminService interface {
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	// SeedQuestions inserts questions only when the bank is empty and
	// returns how many were written.
	SeedQuestions(ctx context.Context, questions []model.Question) (int, error)
}

type questionAdminService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionAdminService(questionRepo repository.QuestionRepository) QuestionAdminService {
	return &questionAdminService{questionRepo: questionRepo}
}

func (s *questionAdminService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if !model.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("invalid category %q", req.Category)
	}

	var question model.Question
	if err := copier.Copy(&question, &req); err != nil {
		return nil, fmt.Errorf("failed to map question: %w", err)
	}
	if question.Difficulty == "" {
		question.Difficulty = "Medium"
	}

	if err := s.questionRepo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Str("category", question.Category).Msg("Failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	log.Info().Str("questionId", question.ID).Str("category", question.Category).Msg("Question created")

	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *questionAdminService) SeedQuestions(ctx context.Context, questions []model.Question) (int, error) {
	count, err := s.questionRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("Question bank already populated, skipping seed")
		return 0, nil
	}

	for i := range questions {
		if err := s.questionRepo.Create(ctx, &questions[i]); err != nil {
			return i, fmt.Errorf("failed to seed question %d: %w", i, err)
		}
	}
	log.Info().Int("inserted", len(questions)).Msg("Question bank seeded")
	return len(questions), nil
}
