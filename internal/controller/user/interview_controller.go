package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/careermind/interviewprep/internal/middleware"
	"github.com/careermind/interviewprep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService  service.InterviewService
	evaluationService service.EvaluationService
}

func NewInterviewController(interviewService service.InterviewService, evaluationService service.EvaluationService) *InterviewController {
	return &InterviewController{
		interviewService:  interviewService,
		evaluationService: evaluationService,
	}
}

// ListQuestions godoc
// @Summary List interview questions
// @Description Returns the question bank, optionally filtered by category and difficulty.
// @Tags Interview
// @Produce json
// @Param category query string false "Behavioral, Technical or SystemDesign"
// @Param difficulty query string false "Easy, Medium or Hard"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch questions"
// @Router /interview/questions [get]
func (c *InterviewController) ListQuestions(ctx *gin.Context) {
	var query dto.ListQuestionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.ListQuestions(ctx.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch questions"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuestion godoc
// @Summary Get one interview question
// @Tags Interview
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch question"
// @Router /interview/questions/{id} [get]
func (c *InterviewController) GetQuestion(ctx *gin.Context) {
	resp, err := c.interviewService.GetQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Str("questionId", ctx.Param("id")).Msg("GetQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch question"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer for AI grading
// @Description Grades the answer with the configured LLM and stores the response. When grading is unavailable, fallback feedback is returned instead of an error.
// @Tags Interview
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param X-User-Id header string false "Submitter identity when no bearer token is sent"
// @Param submission body dto.SubmitAnswerRequest true "Answer text and seconds spent"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to submit answer"
// @Router /interview/questions/{id}/submit [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	// Once grading has started it runs to completion even if the client goes away.
	evalCtx := context.WithoutCancel(ctx.Request.Context())

	resp, err := c.evaluationService.SubmitAnswer(evalCtx, service.AnswerSubmission{
		QuestionID: ctx.Param("id"),
		UserID:     middleware.UserID(ctx),
		Answer:     req.Answer,
		TimeSpent:  req.TimeSpent,
	})
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Str("questionId", ctx.Param("id")).Msg("SubmitAnswer: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit answer"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary Recent interview responses of the caller
// @Description Newest first, at most 20 entries.
// @Tags Interview
// @Produce json
// @Param X-User-Id header string false "Submitter identity when no bearer token is sent"
// @Success 200 {object} dto.HistoryResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch history"
// @Router /interview/history [get]
func (c *InterviewController) History(ctx *gin.Context) {
	resp, err := c.interviewService.History(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("History: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch history"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Aggregate scores of the caller
// @Tags Interview
// @Produce json
// @Param X-User-Id header string false "Submitter identity when no bearer token is sent"
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch stats"
// @Router /interview/stats [get]
func (c *InterviewController) Stats(ctx *gin.Context) {
	resp, err := c.interviewService.Stats(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("Stats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch stats"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RegisterRoutes mounts the interview endpoints on rg.
func (c *InterviewController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", c.ListQuestions)
	rg.GET("/questions/:id", c.GetQuestion)
	rg.POST("/questions/:id/submit", c.SubmitAnswer)
	rg.GET("/history", c.History)
	rg.GET("/stats", c.Stats)
}
