package dto

import "time"

// ResponseSummaryDTO is one row in the paginated response listing.
type ResponseSummaryDTO struct {
	ID              uint      `json:"id"`
	RespondentEmail *string   `json:"respondent_email,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at"`
	AnswerCount     int       `json:"answer_count"`
}

type ResponseAnswerDTO struct {
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type"`
	AnswerText   string `json:"answer_text"`
}

type ResponseDetailDTO struct {
	ID              uint                `json:"id"`
	SurveyID        uint                `json:"survey_id"`
	RespondentEmail *string             `json:"respondent_email,omitempty"`
	IPAddress       *string             `json:"ip_address,omitempty"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	Answers         []ResponseAnswerDTO `json:"answers"`
}
