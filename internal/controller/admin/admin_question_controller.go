package admin

import (
	"net/http"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/careermind/interviewprep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionAdminService service.QuestionAdminService
}

func NewAdminQuestionController(questionAdminService service.QuestionAdminService) *AdminQuestionController {
	return &AdminQuestionController{questionAdminService: questionAdminService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the interview bank
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_data body dto.CreateQuestionRequest true "Question to create"
// @Success 201 {object} dto.QuestionResponse "Question created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionAdminService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Interface("requestPayload", req).Msg("Admin CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
