package survey

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/middleware"
	"github.com/lshigami/surveylite/internal/service"
)

type ResponseController struct {
	responseService service.ResponseService
}

func NewResponseController(responseService service.ResponseService) *ResponseController {
	return &ResponseController{responseService: responseService}
}

// ListResponses godoc
// @Summary List a survey's responses
// @Description Returns a page of response summaries for a survey owned by the caller.
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.PaginatedResult[dto.ResponseSummaryDTO] "Page of responses"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{id}/responses [get]
func (c *ResponseController) ListResponses(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	resp, err := c.responseService.ListResponses(surveyID, middleware.UserID(ctx), page, pageSize)
	if err != nil {
		respondError(ctx, err, "ListResponses")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetResponse godoc
// @Summary Get one response with its answers
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Param responseId path int true "Response ID"
// @Success 200 {object} dto.ResponseDetailDTO "Response with answers in question order"
// @Failure 404 {object} dto.ErrorResponse "Survey or response not found"
// @Router /surveys/{id}/responses/{responseId} [get]
func (c *ResponseController) GetResponse(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}
	responseID, err := strconv.ParseUint(ctx.Param("responseId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid response id"})
		return
	}

	resp, err := c.responseService.GetResponse(surveyID, uint(responseID), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "GetResponse")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
