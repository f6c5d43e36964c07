package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminUserController struct {
	adminUserService service.AdminUserService
}

func NewAdminUserController(adminUserService service.AdminUserService) *AdminUserController {
	return &AdminUserController{adminUserService: adminUserService}
}

// SearchUsers godoc
// @Summary (Admin) Search users
// @Description Filters, sorts and paginates all users with their survey and response counts.
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against email and name"
// @Param role query string false "user or admin"
// @Param is_active query bool false "Filter by suspension state"
// @Param created_from query string false "Earliest creation date (YYYY-MM-DD)"
// @Param created_to query string false "Latest creation date, inclusive (YYYY-MM-DD)"
// @Param sort_by query string false "email, firstname, lastname, role or createdat (default createdat)"
// @Param sort_desc query bool false "Sort descending"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.PaginatedResult[dto.AdminUserDTO] "Page of users"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin/users [get]
func (c *AdminUserController) SearchUsers(ctx *gin.Context) {
	filters, ok := userFiltersFromQuery(ctx)
	if !ok {
		return
	}
	resp, err := c.adminUserService.SearchUsers(filters)
	if err != nil {
		log.Error().Err(err).Msg("SearchUsers: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to search users"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateUserRole godoc
// @Summary (Admin) Change a user's role
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param role body dto.UpdateUserRoleDTO true "New role (user or admin)"
// @Success 200 {object} dto.RoleUpdateResultDTO "Role updated"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Unknown role"
// @Router /admin/users/{id}/role [put]
func (c *AdminUserController) UpdateUserRole(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateUserRoleDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateUserRole: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminUserService.UpdateUserRole(userID, req.Role)
	if err != nil {
		respondError(ctx, err, "UpdateUserRole")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SuspendUser godoc
// @Summary (Admin) Suspend or unsuspend a user
// @Description Suspended users cannot log in. Suspending an already suspended user is an error.
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param suspension body dto.SuspendUserDTO true "Suspension state"
// @Success 200 {object} dto.SuspensionResultDTO "State changed"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "User already in the requested state"
// @Router /admin/users/{id}/suspend [put]
func (c *AdminUserController) SuspendUser(ctx *gin.Context) {
	userID, ok := userIDParam(ctx)
	if !ok {
		return
	}
	var req dto.SuspendUserDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SuspendUser: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminUserService.SuspendUser(userID, req.Suspend)
	if err != nil {
		respondError(ctx, err, "SuspendUser")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func userIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

func userFiltersFromQuery(ctx *gin.Context) (dto.UserFiltersDTO, bool) {
	filters := dto.UserFiltersDTO{
		SearchTerm:     ctx.Query("search"),
		Role:           ctx.Query("role"),
		SortBy:         ctx.Query("sort_by"),
		SortDescending: ctx.Query("sort_desc") == "true",
	}
	filters.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(ctx.DefaultQuery("page_size", "10"))

	if raw := ctx.Query("is_active"); raw != "" {
		active := raw == "true"
		filters.IsActive = &active
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

func dateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
