package dto

import (
	"time"

	"github.com/careermind/interviewprep/internal/model"
)

type QuestionResponse struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Tags             []string `json:"tags"`
	ExpectedKeywords []string `json:"expectedKeywords"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// SubmitAnswerResponse is returned after an answer has been evaluated and stored.
type SubmitAnswerResponse struct {
	ResponseID string         `json:"responseId"`
	Feedback   model.Feedback `json:"feedback"`
}

type ResponseRecordResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	QuestionID string         `json:"questionId"`
	Question   string         `json:"question"`
	Category   string         `json:"category"`
	Answer     string         `json:"answer"`
	Feedback   model.Feedback `json:"feedback"`
	TimeSpent  int            `json:"timeSpent"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type HistoryResponse struct {
	Responses []ResponseRecordResponse `json:"responses"`
}

type CategoryStats struct {
	Count    int `json:"count"`
	AvgScore int `json:"avgScore"`
}

type StatsResponse struct {
	TotalInterviews int                      `json:"totalInterviews"`
	AvgScore        int                      `json:"avgScore"`
	CategoryStats   map[string]CategoryStats `json:"categoryStats"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
