package dto

import "time"

// QuestionStatistics is the per-question aggregate. Optional fields stay nil
// when the question type (or the data) does not produce them.
type QuestionStatistics struct {
	QuestionID      uint           `json:"question_id"`
	QuestionText    string         `json:"question_text"`
	QuestionType    string         `json:"question_type"`
	TotalAnswers    int            `json:"total_answers"`
	OptionBreakdown map[string]int `json:"option_breakdown,omitempty"`
	AverageRating   *float64       `json:"average_rating,omitempty"`
	TopAnswers      []string       `json:"top_answers,omitempty"`
}

// TimelinePoint is one (date, count) pair; Date is a "2006-01-02" string.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type SurveyAnalyticsDTO struct {
	SurveyID           uint                 `json:"survey_id"`
	SurveyTitle        string               `json:"survey_title"`
	TotalResponses     int                  `json:"total_responses"`
	FirstResponseAt    *time.Time           `json:"first_response_at,omitempty"`
	LastResponseAt     *time.Time           `json:"last_response_at,omitempty"`
	ResponseTimeline   []TimelinePoint      `json:"response_timeline"`
	QuestionStatistics []QuestionStatistics `json:"question_statistics"`
}
