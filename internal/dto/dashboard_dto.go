package dto

import "time"

type SurveyStatsDTO struct {
	TotalSurveys   int `json:"total_surveys"`
	ActiveSurveys  int `json:"active_surveys"`
	TotalResponses int `json:"total_responses"`
}

type ResponseStatsDTO struct {
	TotalResponses     int     `json:"total_responses"`
	ResponsesThisMonth int     `json:"responses_this_month"`
	AveragePerSurvey   float64 `json:"average_per_survey"`
}

type RecentSurveyDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	ResponseCount int       `json:"response_count"`
}

type RecentResponseDTO struct {
	ID              uint      `json:"id"`
	SurveyID        uint      `json:"survey_id"`
	SurveyTitle     string    `json:"survey_title"`
	RespondentEmail *string   `json:"respondent_email,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type TopSurveyDTO struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	ResponseCount int    `json:"response_count"`
}

type DashboardStatsDTO struct {
	SurveyStats     SurveyStatsDTO      `json:"survey_stats"`
	ResponseStats   ResponseStatsDTO    `json:"response_stats"`
	RecentSurveys   []RecentSurveyDTO   `json:"recent_surveys"`
	RecentResponses []RecentResponseDTO `json:"recent_responses"`
	ActivityTrend   []TimelinePoint     `json:"activity_trend"`
	TopSurveys      []TopSurveyDTO      `json:"top_surveys"`
}
