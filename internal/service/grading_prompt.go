package service

import (
	"strings"
)

// GradingRequest is everything a grading client needs to evaluate one answer.
type GradingRequest struct {
	Question         string
	Category         string
	Type             string
	ExpectedKeywords []string
	Answer           string
}

const feedbackFormatInstruction = `Evaluate the answer and provide feedback in the following JSON format (IMPORTANT: Return ONLY the JSON, no other text):
{
  "score": <number 0-100>,
  "strengths": ["strength1", "strength2", "strength3"],
  "weaknesses": ["weakness1", "weakness2"],
  "feedback": "<detailed feedback about the answer>",
  "suggestions": ["suggestion1", "suggestion2"],
  "keywordsCovered": ["keyword1", "keyword2"]
}`

// buildEvaluationPrompt renders the single user message sent to the model.
func buildEvaluationPrompt(req GradingRequest) string {
	keywords := "N/A"
	if len(req.ExpectedKeywords) > 0 {
		keywords = strings.Join(req.ExpectedKeywords, ", ")
	}

	var b strings.Builder
	b.WriteString("You are an expert technical interviewer evaluating a candidate's answer.\n\n")
	b.WriteString("Question: ")
	b.WriteString(req.Question)
	b.WriteString("\nQuestion Category: ")
	b.WriteString(req.Category)
	b.WriteString("\nQuestion Type: ")
	b.WriteString(req.Type)
	b.WriteString("\n\nCandidate's Answer: ")
	b.WriteString(req.Answer)
	b.WriteString("\n\nExpected Keywords (hint, not required): ")
	b.WriteString(keywords)
	b.WriteString("\n\n")
	b.WriteString(feedbackFormatInstruction)
	return b.String()
}
