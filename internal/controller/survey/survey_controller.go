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

type SurveyController struct {
	surveyService service.SurveyService
}

func NewSurveyController(surveyService service.SurveyService) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

func surveyIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid survey id"})
		return 0, false
	}
	return uint(id), true
}

// CreateSurvey godoc
// @Summary Create a survey
// @Description Creates a survey for the authenticated user, optionally with initial questions.
// @Tags Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey body dto.SurveyCreateDTO true "Survey data"
// @Success 201 {object} dto.SurveyResponseDTO "Survey created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.surveyService.CreateSurvey(middleware.UserID(ctx), req)
	if err != nil {
		respondError(ctx, err, "CreateSurvey")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListSurveys godoc
// @Summary List the caller's surveys
// @Description Returns a page of the authenticated user's surveys with question and response counts.
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param search query string false "Match against title and description"
// @Success 200 {object} dto.PaginatedResult[dto.SurveySummaryDTO] "Page of surveys"
// @Router /surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	search := ctx.Query("search")

	resp, err := c.surveyService.ListSurveys(middleware.UserID(ctx), page, pageSize, search)
	if err != nil {
		respondError(ctx, err, "ListSurveys")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSurvey godoc
// @Summary Get one survey
// @Description Returns a survey with its questions. Only the owner can read it.
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO "Survey with questions"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	resp, err := c.surveyService.GetSurvey(surveyID, middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "GetSurvey")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateSurvey godoc
// @Summary Update a survey
// @Description Updates title, description and active state. Activating the first time stamps published_at.
// @Tags Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param survey body dto.SurveyUpdateDTO true "Fields to update"
// @Success 200 {object} dto.SurveyResponseDTO "Updated survey"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id} [put]
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	var req dto.SurveyUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.surveyService.UpdateSurvey(surveyID, middleware.UserID(ctx), req)
	if err != nil {
		respondError(ctx, err, "UpdateSurvey")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteSurvey godoc
// @Summary Delete a survey
// @Description Soft deletes a survey owned by the caller.
// @Tags Surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 204 "Survey deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id} [delete]
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	if err := c.surveyService.DeleteSurvey(surveyID, middleware.UserID(ctx)); err != nil {
		respondError(ctx, err, "DeleteSurvey")
		return
	}
	ctx.Status(http.StatusNoContent)
}
