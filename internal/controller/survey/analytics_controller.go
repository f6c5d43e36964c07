package survey

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/middleware"
	"github.com/lshigami/surveylite/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
	exportService    service.ExportService
	dashboardService service.DashboardService
}

func NewAnalyticsController(
	analyticsService service.AnalyticsService,
	exportService service.ExportService,
	dashboardService service.DashboardService,
) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		exportService:    exportService,
		dashboardService: dashboardService,
	}
}

// GetSurveyAnalytics godoc
// @Summary Aggregated statistics for a survey
// @Description Returns per-question aggregates and the response timeline for a survey owned by the caller.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyAnalyticsDTO "Survey analytics"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/analytics [get]
func (c *AnalyticsController) GetSurveyAnalytics(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	resp, err := c.analyticsService.GetSurveyAnalytics(surveyID, middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "GetSurveyAnalytics")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ExportAnalytics godoc
// @Summary Export a survey's responses as CSV or JSON
// @Description Streams a file download. The date range filters by submission time; to_date is inclusive.
// @Tags Analytics
// @Produce json
// @Produce text/csv
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param format query string false "csv or json (default csv)"
// @Param from_date query string false "Earliest submission date (YYYY-MM-DD)"
// @Param to_date query string false "Latest submission date, inclusive (YYYY-MM-DD)"
// @Param include_answers query bool false "Include per-question answers in JSON export (default true)"
// @Success 200 {file} file "Exported file"
// @Failure 400 {object} dto.ErrorResponse "Bad date or format parameter"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/export [get]
func (c *AnalyticsController) ExportAnalytics(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}

	opts := service.ExportOptions{
		Format:         ctx.DefaultQuery("format", "csv"),
		IncludeAnswers: ctx.DefaultQuery("include_answers", "true") == "true",
	}
	if opts.Format != "csv" && opts.Format != "json" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Unsupported format %q, use csv or json", opts.Format)})
		return
	}
	if opts.FromDate, ok = dateQuery(ctx, "from_date"); !ok {
		return
	}
	if opts.ToDate, ok = dateQuery(ctx, "to_date"); !ok {
		return
	}

	result, err := c.exportService.ExportAnalytics(surveyID, middleware.UserID(ctx), opts)
	if err != nil {
		respondError(ctx, err, "ExportAnalytics")
		return
	}
	sendFile(ctx, result)
}

// ExportResponsesCSV godoc
// @Summary Export all of a survey's responses as CSV
// @Tags Analytics
// @Produce text/csv
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {file} file "CSV file"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/responses/export [get]
func (c *AnalyticsController) ExportResponsesCSV(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	result, err := c.exportService.ExportResponsesCSV(surveyID, middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "ExportResponsesCSV")
		return
	}
	sendFile(ctx, result)
}

// GetDashboard godoc
// @Summary Dashboard statistics for the caller
// @Description Returns survey and response totals, recent activity and the 30 day response trend.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStatsDTO "Dashboard statistics"
// @Router /dashboard [get]
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	resp, err := c.dashboardService.GetDashboardStats(middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "GetDashboard")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func dateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s, expected YYYY-MM-DD", name)})
		return nil, false
	}
	return &t, true
}

func sendFile(ctx *gin.Context, result *dto.ExportResultDTO) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	ctx.Data(http.StatusOK, result.ContentType, result.Content)
}
