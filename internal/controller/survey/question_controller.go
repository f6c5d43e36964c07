package survey

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/middleware"
	"github.com/lshigami/surveylite/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

func questionIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("questionId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question id"})
		return 0, false
	}
	return uint(id), true
}

// ListQuestions godoc
// @Summary List a survey's questions
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {array} dto.QuestionResponseDTO "Questions in display order"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	resp, err := c.questionService.ListQuestions(surveyID, middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "ListQuestions")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddQuestion godoc
// @Summary Add a question to a survey
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO "Question created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/questions [post]
func (c *QuestionController) AddQuestion(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AddQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.AddQuestion(surveyID, middleware.UserID(ctx), req)
	if err != nil {
		respondError(ctx, err, "AddQuestion")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param questionId path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Fields to update"
// @Success 200 {object} dto.QuestionResponseDTO "Updated question"
// @Failure 404 {object} dto.ErrorResponse "Survey or question not found"
// @Router /surveys/{id}/questions/{questionId} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	questionID, ok := questionIDParam(ctx)
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.UpdateQuestion(surveyID, questionID, middleware.UserID(ctx), req)
	if err != nil {
		respondError(ctx, err, "UpdateQuestion")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param questionId path int true "Question ID"
// @Success 204 "Question deleted"
// @Failure 404 {object} dto.ErrorResponse "Survey or question not found"
// @Router /surveys/{id}/questions/{questionId} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	questionID, ok := questionIDParam(ctx)
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(surveyID, questionID, middleware.UserID(ctx)); err != nil {
		respondError(ctx, err, "DeleteQuestion")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ReorderQuestions godoc
// @Summary Reorder a survey's questions
// @Description Applies the given display order. Question ids not in the survey are ignored.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param order body dto.ReorderQuestionsDTO true "New question order"
// @Success 200 {array} dto.QuestionResponseDTO "Questions in the new order"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/questions/reorder [put]
func (c *QuestionController) ReorderQuestions(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	var req dto.ReorderQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ReorderQuestions: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.UserID(ctx)
	if err := c.questionService.ReorderQuestions(surveyID, userID, req); err != nil {
		respondError(ctx, err, "ReorderQuestions")
		return
	}
	resp, err := c.questionService.ListQuestions(surveyID, userID)
	if err != nil {
		respondError(ctx, err, "ReorderQuestions")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
