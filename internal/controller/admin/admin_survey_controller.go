package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminSurveyController struct {
	adminSurveyService service.AdminSurveyService
}

func NewAdminSurveyController(adminSurveyService service.AdminSurveyService) *AdminSurveyController {
	return &AdminSurveyController{adminSurveyService: adminSurveyService}
}

// SearchSurveys godoc
// @Summary (Admin) Search all surveys
// @Description Filters, sorts and paginates surveys across every user.
// @Tags Admin - Surveys
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against title and description"
// @Param is_active query bool false "Filter by active state"
// @Param is_archived query bool false "Filter by archived state"
// @Param created_from query string false "Earliest creation date (YYYY-MM-DD)"
// @Param created_to query string false "Latest creation date, inclusive (YYYY-MM-DD)"
// @Param sort_by query string false "title, isactive, isarchived, responsecount, updatedat or createdat (default createdat)"
// @Param sort_desc query bool false "Sort descending"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.PaginatedResult[dto.SurveyItemDTO] "Page of surveys"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin/surveys [get]
func (c *AdminSurveyController) SearchSurveys(ctx *gin.Context) {
	filters, ok := surveyFiltersFromQuery(ctx)
	if !ok {
		return
	}
	resp, err := c.adminSurveyService.SearchSurveys(filters)
	if err != nil {
		log.Error().Err(err).Msg("SearchSurveys: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to search surveys"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CloneSurvey godoc
// @Summary (Admin) Clone a survey
// @Description Copies a survey and its questions under a new title. The clone starts inactive with a fresh share token.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param clone body dto.CloneSurveyDTO true "Title for the clone"
// @Success 201 {object} dto.CloneSurveyResultDTO "Survey cloned"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /admin/surveys/{id}/clone [post]
func (c *AdminSurveyController) CloneSurvey(ctx *gin.Context) {
	surveyID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid survey id"})
		return
	}
	var req dto.CloneSurveyDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CloneSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminSurveyService.CloneSurvey(uint(surveyID), req.NewTitle)
	if err != nil {
		respondError(ctx, err, "CloneSurvey")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// BulkArchiveSurveys godoc
// @Summary (Admin) Archive or unarchive surveys in bulk
// @Description Applies the archived flag to every survey id it can resolve and reports the count. Bad ids are skipped.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkArchiveSurveysDTO true "Survey ids and the target state"
// @Success 200 {object} dto.BulkArchiveResultDTO "Number of surveys changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /admin/surveys/bulk-archive [post]
func (c *AdminSurveyController) BulkArchiveSurveys(ctx *gin.Context) {
	var req dto.BulkArchiveSurveysDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("BulkArchiveSurveys: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminSurveyService.BulkArchive(req)
	if err != nil {
		log.Error().Err(err).Msg("BulkArchiveSurveys: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to archive surveys"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func surveyFiltersFromQuery(ctx *gin.Context) (dto.SurveyFiltersDTO, bool) {
	filters := dto.SurveyFiltersDTO{
		SearchTerm:     ctx.Query("search"),
		SortBy:         ctx.Query("sort_by"),
		SortDescending: ctx.Query("sort_desc") == "true",
	}
	filters.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	if raw := ctx.Query("is_active"); raw != "" {
		active := raw == "true"
		filters.IsActive = &active
	}
	if raw := ctx.Query("is_archived"); raw != "" {
		archived := raw == "true"
		filters.IsArchived = &archived
	}
	var ok bool
	if filters.CreatedFromDate, ok = dateQuery(ctx, "created_from"); !ok {
		return filters, false
	}
	if filters.CreatedToDate, ok = dateQuery(ctx, "created_to"); !ok {
		return filters, false
	}
	return filters, true
}

// respondError maps service sentinel errors to HTTP statuses.
func respondError(ctx *gin.Context, err error, handler string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrConflict):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("handler", handler).Msg("unexpected service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
