package dto

import "time"

type SurveyCreateDTO struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type SurveyUpdateDTO struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// QuestionResponseDTO is used wherever question details are shown to the owner.
type QuestionResponseDTO struct {
	ID              uint    `json:"id"`
	SurveyID        uint    `json:"survey_id"`
	Type            string  `json:"type"`
	Text            string  `json:"text"`
	Order           int     `json:"order"`
	IsRequired      bool    `json:"is_required"`
	Options         *string `json:"options,omitempty"`
	ValidationRules *string `json:"validation_rules,omitempty"`
}

// SurveyResponseDTO is the full owner-facing view of a survey.
type SurveyResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	IsActive    bool                  `json:"is_active"`
	IsArchived  bool                  `json:"is_archived"`
	ShareToken  string                `json:"share_token"`
	PublishedAt *time.Time            `json:"published_at,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// SurveySummaryDTO is used for the owner's survey listing.
type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	IsArchived    bool      `json:"is_archived"`
	ShareToken    string    `json:"share_token"`
	QuestionCount int       `json:"question_count"`
	ResponseCount int64     `json:"response_count"`
	CreatedAt     time.Time `json:"created_at"`
}
