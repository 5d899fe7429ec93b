package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/careermind/interviewprep/internal/middleware"
	"github.com/careermind/interviewprep/internal/model"
	"github.com/careermind/interviewprep/internal/service"
	"github.com/gin-gonic/gin"
)

type stubEvaluationService struct {
	got  service.AnswerSubmission
	resp *dto.SubmitAnswerResponse
	err  error
}

func (s *stubEvaluationService) SubmitAnswer(ctx context.Context, sub service.AnswerSubmission) (*dto.SubmitAnswerResponse, error) {
	s.got = sub
	return s.resp, s.err
}

type stubInterviewService struct {
	question *dto.QuestionResponse
	err      error
}

func (s *stubInterviewService) ListQuestions(ctx context.Context, q dto.ListQuestionsQuery) (*dto.QuestionListResponse, error) {
	return &dto.QuestionListResponse{Questions: []dto.QuestionResponse{}}, s.err
}

func (s *stubInterviewService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	return s.question, s.err
}

func (s *stubInterviewService) History(ctx context.Context, userID string) (*dto.HistoryResponse, error) {
	return &dto.HistoryResponse{Responses: []dto.ResponseRecordResponse{}}, s.err
}

func (s *stubInterviewService) Stats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	return &dto.StatsResponse{CategoryStats: map[string]dto.CategoryStats{}}, s.err
}

func newTestRouter(interview service.InterviewService, eval service.EvaluationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", middleware.NewIdentityMiddleware("", false).Resolve())
	NewInterviewController(interview, eval).RegisterRoutes(api.Group("/interview"))
	return r
}

func postJSON(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAnswerOK(t *testing.T) {
	eval := &stubEvaluationService{resp: &dto.SubmitAnswerResponse{
		ResponseID: "resp-1",
		Feedback:   service.QuotaFallbackFeedback([]string{"a"}),
	}}
	r := newTestRouter(&stubInterviewService{}, eval)

	w := postJSON(r, "/api/interview/questions/q1/submit", `{"answer":"REST uses stateless HTTP calls...","timeSpent":42}`, map[string]string{"X-User-Id": "u1"})
	if w.Code != http.StatusOK {
		t.Fatalf("got=%d want=%d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	if eval.got.QuestionID != "q1" || eval.got.UserID != "u1" || eval.got.TimeSpent != 42 {
		t.Fatalf("submission=%+v", eval.got)
	}

	var body struct {
		ResponseID string         `json:"responseId"`
		Feedback   model.Feedback `json:"feedback"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ResponseID != "resp-1" || body.Feedback.Score != 75 {
		t.Fatalf("body=%+v", body)
	}
}

func TestSubmitAnswerFeedbackListsSerializeAsArrays(t *testing.T) {
	eval := &stubEvaluationService{resp: &dto.SubmitAnswerResponse{ResponseID: "r", Feedback: service.GenericFallbackFeedback()}}
	r := newTestRouter(&stubInterviewService{}, eval)

	w := postJSON(r, "/api/interview/questions/q1/submit", `{"answer":"x"}`, nil)
	if !bytes.Contains(w.Body.Bytes(), []byte(`"keywordsCovered":[]`)) {
		t.Fatalf("body=%s want empty array", w.Body.String())
	}
	if eval.got.UserID != middleware.AnonymousUser {
		t.Fatalf("userId=%q want anonymous", eval.got.UserID)
	}
}

func TestSubmitAnswerErrors(t *testing.T) {
	cases := map[string]struct {
		body string
		err  error
		want int
	}{
		"missing answer": {`{"timeSpent":3}`, nil, http.StatusBadRequest},
		"negative time":  {`{"answer":"x","timeSpent":-1}`, nil, http.StatusBadRequest},
		"not json":       {`answer=x`, nil, http.StatusBadRequest},
		"not found":      {`{"answer":"x"}`, service.ErrQuestionNotFound, http.StatusNotFound},
		"persistence":    {`{"answer":"x"}`, errors.Join(service.ErrPersistence, errors.New("db down")), http.StatusInternalServerError},
	}
	for name, tc := range cases {
		eval := &stubEvaluationService{err: tc.err}
		r := newTestRouter(&stubInterviewService{}, eval)
		w := postJSON(r, "/api/interview/questions/q1/submit", tc.body, nil)
		if w.Code != tc.want {
			t.Fatalf("%s: got=%d want=%d body=%s", name, w.Code, tc.want, w.Body.String())
		}
		var resp dto.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Error == "" {
			t.Fatalf("%s: error body=%s", name, w.Body.String())
		}
	}
}

func TestGetQuestionNotFound(t *testing.T) {
	r := newTestRouter(&stubInterviewService{err: service.ErrQuestionNotFound}, &stubEvaluationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/interview/questions/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("got=%d want=%d", w.Code, http.StatusNotFound)
	}
	if w.Body.String() != `{"error":"Question not found"}` {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestReadEndpoints(t *testing.T) {
	r := newTestRouter(&stubInterviewService{}, &stubEvaluationService{})
	for _, path := range []string{"/api/interview/questions?category=Technical", "/api/interview/history", "/api/interview/stats"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: got=%d want=%d", path, w.Code, http.StatusOK)
		}
	}
}
