package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/careermind/interviewprep/internal/model"
	"github.com/careermind/interviewprep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// historyLimit is the number of most recent responses returned by History.
const historyLimit = 20

// InterviewService serves the read side of interview practice: the question
// bank and a user's past responses.
type InterviewService interface {
	ListQuestions(ctx context.Context, query dto.ListQuestionsQuery) (*dto.QuestionListResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
	History(ctx context.Context, userID string) (*dto.HistoryResponse, error)
	Stats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

type interviewService struct {
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
}

func NewInterviewService(questionRepo repository.QuestionRepository, responseRepo repository.ResponseRepository) InterviewService {
	return &interviewService{questionRepo: questionRepo, responseRepo: responseRepo}
}

func (s *interviewService) ListQuestions(ctx context.Context, query dto.ListQuestionsQuery) (*dto.QuestionListResponse, error) {
	questions, err := s.questionRepo.FindAll(ctx, repository.QuestionFilter{
		Category:   query.Category,
		Difficulty: query.Difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	resp := &dto.QuestionListResponse{Questions: make([]dto.QuestionResponse, 0, len(questions))}
	for i := range questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(&questions[i]))
	}
	return resp, nil
}

func (s *interviewService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question %s: %w", id, err)
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *interviewService) History(ctx context.Context, userID string) (*dto.HistoryResponse, error) {
	records, err := s.responseRepo.FindByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	resp := &dto.HistoryResponse{Responses: make([]dto.ResponseRecordResponse, 0, len(records))}
	for i := range records {
		var item dto.ResponseRecordResponse
		if err := copier.Copy(&item, &records[i]); err != nil {
			log.Error().Err(err).Str("responseId", records[i].ID).Msg("Failed to map response record")
			return nil, fmt.Errorf("failed to map response record: %w", err)
		}
		item.Feedback.Normalize()
		resp.Responses = append(resp.Responses, item)
	}
	return resp, nil
}

// Stats aggregates every response of the user. Averages are rounded to the
// nearest integer, halves rounding up.
func (s *interviewService) Stats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	records, err := s.responseRepo.FindByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}

	type bucket struct {
		count int
		total int
	}
	var total int
	buckets := make(map[string]*bucket)
	for _, r := range records {
		total += r.Feedback.Score
		b, ok := buckets[r.Category]
		if !ok {
			b = &bucket{}
			buckets[r.Category] = b
		}
		b.count++
		b.total += r.Feedback.Score
	}

	resp := &dto.StatsResponse{
		TotalInterviews: len(records),
		AvgScore:        roundedAverage(total, len(records)),
		CategoryStats:   make(map[string]dto.CategoryStats, len(buckets)),
	}
	for category, b := range buckets {
		resp.CategoryStats[category] = dto.CategoryStats{
			Count:    b.count,
			AvgScore: roundedAverage(b.total, b.count),
		}
	}
	return resp, nil
}

func roundedAverage(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Floor(float64(total)/float64(count) + 0.5))
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	_ = copier.Copy(&resp, q)
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.ExpectedKeywords == nil {
		resp.ExpectedKeywords = []string{}
	}
	return resp
}
