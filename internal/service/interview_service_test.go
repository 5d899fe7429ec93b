package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/careermind/interviewprep/internal/model"
	"github.com/careermind/interviewprep/internal/seed"
)

func TestInterviewServiceStats(t *testing.T) {
	responses := &fakeResponseRepo{}
	add := func(user, category string, score int) {
		_ = responses.Create(context.Background(), &model.ResponseRecord{
			UserID:   user,
			Category: category,
			Feedback: model.Feedback{Score: score},
		})
	}
	add("u1", model.CategoryTechnical, 80)
	add("u1", model.CategoryTechnical, 71)
	add("u1", model.CategoryBehavioral, 60)
	add("u2", model.CategoryBehavioral, 10)

	svc := NewInterviewService(&fakeQuestionRepo{}, responses)
	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalInterviews != 3 {
		t.Fatalf("total=%d want=3", stats.TotalInterviews)
	}
	// (80+71+60)/3 = 70.33
	if stats.AvgScore != 70 {
		t.Fatalf("avg=%d want=70", stats.AvgScore)
	}
	// (80+71)/2 = 75.5 rounds up
	if got := stats.CategoryStats[model.CategoryTechnical]; got.Count != 2 || got.AvgScore != 76 {
		t.Fatalf("technical=%+v", got)
	}
	if got := stats.CategoryStats[model.CategoryBehavioral]; got.Count != 1 || got.AvgScore != 60 {
		t.Fatalf("behavioral=%+v", got)
	}

	empty, err := svc.Stats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if empty.TotalInterviews != 0 || empty.AvgScore != 0 || empty.CategoryStats == nil {
		t.Fatalf("empty stats=%+v", empty)
	}
}

func TestInterviewServiceHistoryLimit(t *testing.T) {
	responses := &fakeResponseRepo{}
	for i := 0; i < 25; i++ {
		_ = responses.Create(context.Background(), &model.ResponseRecord{
			UserID:   "u1",
			Answer:   fmt.Sprintf("answer %d", i),
			Feedback: model.Feedback{Score: i},
		})
	}

	svc := NewInterviewService(&fakeQuestionRepo{}, responses)
	history, err := svc.History(context.Background(), "u1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history.Responses) != 20 {
		t.Fatalf("len=%d want=20", len(history.Responses))
	}
	if history.Responses[0].Answer != "answer 24" {
		t.Fatalf("first=%q want newest", history.Responses[0].Answer)
	}
	if history.Responses[0].Feedback.Strengths == nil {
		t.Fatalf("history feedback lists must not be nil")
	}
}

func TestInterviewServiceQuestions(t *testing.T) {
	questions := &fakeQuestionRepo{}
	admin := NewQuestionAdminService(questions)
	n, err := admin.SeedQuestions(context.Background(), seed.Questions())
	if err != nil {
		t.Fatalf("SeedQuestions: %v", err)
	}
	if n != len(seed.Questions()) {
		t.Fatalf("inserted=%d", n)
	}
	again, err := admin.SeedQuestions(context.Background(), seed.Questions())
	if err != nil || again != 0 {
		t.Fatalf("second seed inserted=%d err=%v", again, err)
	}

	svc := NewInterviewService(questions, &fakeResponseRepo{})
	list, err := svc.ListQuestions(context.Background(), dto.ListQuestionsQuery{Category: model.CategorySystemDesign})
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(list.Questions) != 3 {
		t.Fatalf("system design questions=%d want=3", len(list.Questions))
	}
	for _, q := range list.Questions {
		if q.Category != model.CategorySystemDesign || q.ID == "" {
			t.Fatalf("question=%+v", q)
		}
	}

	got, err := svc.GetQuestion(context.Background(), list.Questions[0].ID)
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if got.Question != list.Questions[0].Question {
		t.Fatalf("GetQuestion returned %q", got.Question)
	}

	if _, err := svc.GetQuestion(context.Background(), "nope"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("err=%v want ErrQuestionNotFound", err)
	}
}

func TestQuestionAdminServiceCreate(t *testing.T) {
	questions := &fakeQuestionRepo{}
	admin := NewQuestionAdminService(questions)

	resp, err := admin.CreateQuestion(context.Background(), dto.CreateQuestionRequest{
		Question:         "Explain eventual consistency.",
		Category:         model.CategoryTechnical,
		Type:             "Explanation",
		ExpectedKeywords: []string{"replication"},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if resp.ID == "" || resp.Difficulty != "Medium" || resp.Tags == nil {
		t.Fatalf("resp=%+v", resp)
	}
	if len(questions.questions) != 1 {
		t.Fatalf("stored=%d want=1", len(questions.questions))
	}

	if _, err := admin.CreateQuestion(context.Background(), dto.CreateQuestionRequest{Question: "x", Category: "Trivia"}); err == nil {
		t.Fatalf("expected invalid category error")
	}
}
