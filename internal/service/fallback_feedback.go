package service

import (
	"github.com/careermind/interviewprep/internal/model"
)

const (
	quotaFallbackScore       = 75
	quotaFallbackKeywordCap  = 3
	genericFallbackNarrative = "Failed to generate AI feedback. Please try again."
	quotaFallbackNarrative   = "Your answer shows a good understanding of the fundamentals. To improve, consider exploring more advanced scenarios and edge cases. The explanation was clear but could benefit from more technical details. (Note: Using mock feedback - please recharge your Kimi K2 account)"
)

// QuotaFallbackFeedback is returned when the grading provider reports that the
// account is out of credit. keywordsCovered echoes at most the first three
// expected keywords.
func QuotaFallbackFeedback(expectedKeywords []string) model.Feedback {
	n := len(expectedKeywords)
	if n > quotaFallbackKeywordCap {
		n = quotaFallbackKeywordCap
	}
	covered := make([]string, n)
	copy(covered, expectedKeywords[:n])

	return model.Feedback{
		Score: quotaFallbackScore,
		Strengths: []string{
			"Clear explanation of the concept",
			"Good use of examples",
			"Demonstrates understanding",
		},
		Weaknesses: []string{
			"Could include more technical depth",
			"Missing edge case considerations",
		},
		Feedback: quotaFallbackNarrative,
		Suggestions: []string{
			"Deep dive into the underlying implementation details",
			"Discuss potential edge cases and error handling",
			"Consider performance implications and optimizations",
			"Explore alternative approaches and their trade-offs",
		},
		KeywordsCovered: covered,
	}
}

// GenericFallbackFeedback is used for every other grading or parsing failure.
func GenericFallbackFeedback() model.Feedback {
	return model.Feedback{
		Score:           0,
		Strengths:       []string{},
		Weaknesses:      []string{"Could not generate feedback"},
		Feedback:        genericFallbackNarrative,
		Suggestions:     []string{},
		KeywordsCovered: []string{},
	}
}
