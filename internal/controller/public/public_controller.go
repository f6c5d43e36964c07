package public

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/service"
	"github.com/rs/zerolog/log"
)

// PublicController serves the unauthenticated respondent surface. Surveys are
// addressed by share token only; numeric ids are never exposed here.
type PublicController struct {
	submissionService service.SubmissionService
}

func NewPublicController(submissionService service.SubmissionService) *PublicController {
	return &PublicController{submissionService: submissionService}
}

// GetPublicSurvey godoc
// @Summary Fetch a survey for filling in
// @Description Returns the questions of an active survey by its share token. Inactive and archived surveys read as not found.
// @Tags Public
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} dto.PublicSurveyDTO "Survey questions"
// @Failure 404 {object} dto.ErrorResponse "No active survey for this token"
// @Router /s/{token} [get]
func (c *PublicController) GetPublicSurvey(ctx *gin.Context) {
	resp, err := c.submissionService.GetPublicSurvey(ctx.Param("token"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
			return
		}
		log.Error().Err(err).Str("token", ctx.Param("token")).Msg("GetPublicSurvey: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitResponse godoc
// @Summary Submit a response
// @Description Records a respondent's answers against an active survey. Required questions must all be answered.
// @Tags Public
// @Accept json
// @Produce json
// @Param token path string true "Share token"
// @Param response body dto.SubmitResponseDTO true "Respondent answers"
// @Success 201 {object} dto.SubmissionResultDTO "Response recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid body or missing required answers"
// @Failure 404 {object} dto.ErrorResponse "No active survey for this token"
// @Router /s/{token}/responses [post]
func (c *PublicController) SubmitResponse(ctx *gin.Context) {
	var req dto.SubmitResponseDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResponse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.submissionService.SubmitResponse(ctx.Param("token"), ctx.ClientIP(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Survey not found"})
		case errors.Is(err, service.ErrConflict):
			// Validation failures: unknown questions, duplicates, missing
			// required answers.
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Str("token", ctx.Param("token")).Msg("SubmitResponse: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
