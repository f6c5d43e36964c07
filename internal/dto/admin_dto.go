package dto

import "time"

// UserFiltersDTO shapes the admin user search. Zero values mean "no filter".
type UserFiltersDTO struct {
	SearchTerm      string     `json:"search_term"`
	Role            string     `json:"role"`
	IsActive        *bool      `json:"is_active"`
	CreatedFromDate *time.Time `json:"created_from_date"`
	CreatedToDate   *time.Time `json:"created_to_date"`
	SortBy          string     `json:"sort_by"`
	SortDescending  bool       `json:"sort_descending"`
	Page            int        `json:"page"`
	PageSize        int        `json:"page_size"`
}

type AdminUserDTO struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	SurveyCount   int        `json:"survey_count"`
	ResponseCount int        `json:"response_count"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
}

type UpdateUserRoleDTO struct {
	Role string `json:"role" binding:"required"`
}

type RoleUpdateResultDTO struct {
	Message string       `json:"message"`
	User    AdminUserDTO `json:"user"`
}

type SuspendUserDTO struct {
	Suspend bool   `json:"suspend"`
	Reason  string `json:"reason,omitempty"`
}

type SuspensionResultDTO struct {
	Message string `json:"message"`
}

// SurveyFiltersDTO shapes the admin survey search.
type SurveyFiltersDTO struct {
	SearchTerm      string     `json:"search_term"`
	IsActive        *bool      `json:"is_active"`
	IsArchived      *bool      `json:"is_archived"`
	CreatedFromDate *time.Time `json:"created_from_date"`
	CreatedToDate   *time.Time `json:"created_to_date"`
	SortBy          string     `json:"sort_by"`
	SortDescending  bool       `json:"sort_descending"`
	Page            int        `json:"page"`
	PageSize        int        `json:"page_size"`
}

type SurveyItemDTO struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	IsActive      bool       `json:"is_active"`
	IsArchived    bool       `json:"is_archived"`
	ResponseCount int64      `json:"response_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

type CloneSurveyDTO struct {
	NewTitle string `json:"new_title" binding:"required,max=200"`
}

type CloneSurveyResultDTO struct {
	Message      string        `json:"message"`
	ClonedSurvey SurveyItemDTO `json:"cloned_survey"`
}

type BulkArchiveSurveysDTO struct {
	SurveyIDs []string `json:"survey_ids" binding:"required,min=1"`
	Archive   bool     `json:"archive"`
}

type BulkArchiveResultDTO struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
