package dto

// SubmitAnswerRequest is the body of POST /questions/:id/submit.
type SubmitAnswerRequest struct {
	Answer    string `json:"answer" binding:"required"`
	TimeSpent int    `json:"timeSpent" binding:"min=0"` // seconds
}

// CreateQuestionRequest is used by admins to add a question to the bank.
type CreateQuestionRequest struct {
	Question         string   `json:"question" binding:"required"`
	Category         string   `json:"category" binding:"required,oneof=Behavioral Technical SystemDesign"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Tags             []string `json:"tags"`
	ExpectedKeywords []string `json:"expectedKeywords"`
}

// ListQuestionsQuery holds the optional filters of GET /questions.
type ListQuestionsQuery struct {
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
}
