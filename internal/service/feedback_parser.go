package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/careermind/interviewprep/internal/model"
)

// missingNarrative replaces an absent or blank "feedback" field.
const missingNarrative = "No detailed feedback was provided."

// ParseResult is the outcome of reading model output. When OK is false,
// Feedback is the zero value and Reason says what was wrong.
type ParseResult struct {
	Feedback model.Feedback
	OK       bool
	Reason   string
}

func parseFailure(format string, args ...any) ParseResult {
	return ParseResult{Reason: fmt.Sprintf(format, args...)}
}

// ParseFeedback turns raw model text into validated Feedback. Malformed model
// output is an expected outcome and is reported through ParseResult.
func ParseFeedback(raw string) ParseResult {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return parseFailure("empty model output")
	}

	fields, err := decodeObject(cleaned)
	if err != nil {
		spans := jsonObjectSpans(cleaned)
		if len(spans) == 0 {
			return parseFailure("no JSON object in model output: %v", err)
		}
		for _, span := range spans {
			if fields, err = decodeObject(span); err == nil {
				break
			}
		}
		if err != nil {
			return parseFailure("invalid JSON object in model output: %v", err)
		}
	}

	return validateFeedback(fields)
}

func decodeObject(s string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("top-level value is null")
	}
	return fields, nil
}

func validateFeedback(fields map[string]json.RawMessage) ParseResult {
	rawScore, ok := fields["score"]
	if !ok || isNull(rawScore) {
		return parseFailure("score is missing")
	}
	trimmed := bytes.TrimSpace(rawScore)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return parseFailure("score is not a number: %s", string(trimmed))
	}
	var score float64
	if err := json.Unmarshal(trimmed, &score); err != nil {
		return parseFailure("score is not a number: %v", err)
	}

	fb := model.Feedback{Score: clampScore(score)}

	lists := []struct {
		key string
		dst *[]string
	}{
		{"strengths", &fb.Strengths},
		{"weaknesses", &fb.Weaknesses},
		{"suggestions", &fb.Suggestions},
		{"keywordsCovered", &fb.KeywordsCovered},
	}
	for _, l := range lists {
		values, err := decodeStringList(fields[l.key])
		if err != nil {
			return parseFailure("%s: %v", l.key, err)
		}
		*l.dst = values
	}

	if rawNarrative, ok := fields["feedback"]; ok && !isNull(rawNarrative) {
		if err := json.Unmarshal(rawNarrative, &fb.Feedback); err != nil {
			return parseFailure("feedback is not a string: %v", err)
		}
	}
	if strings.TrimSpace(fb.Feedback) == "" {
		fb.Feedback = missingNarrative
	}

	fb.Normalize()
	return ParseResult{Feedback: fb, OK: true}
}

// decodeStringList accepts a missing or null field as an empty list and
// rejects anything that is not an array of strings.
func decodeStringList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || isNull(raw) {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.New("must be an array of strings")
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// clampScore rounds half away from zero and bounds the result to 0..100.
func clampScore(score float64) int {
	rounded := math.Round(score)
	switch {
	case rounded < 0:
		return 0
	case rounded > 100:
		return 100
	default:
		return int(rounded)
	}
}

// stripCodeFence removes a surrounding ```json ... ``` block if the model added one.
func stripCodeFence(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		if nl := strings.IndexAny(clean, "\r\n"); nl >= 0 && !strings.ContainsAny(clean[:nl], "{[\"") {
			clean = clean[nl:]
		}
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	}
	return strings.TrimSpace(clean)
}

// jsonObjectSpans returns every top-level balanced {...} span in s, in order,
// skipping braces that appear inside string literals.
func jsonObjectSpans(s string) []string {
	var spans []string
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' && depth > 0 {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				spans = append(spans, s[start:i+1])
				start = -1
			}
		}
	}
	return spans
}
