package dto

import "time"

// PublicQuestionDTO deliberately omits validation rules and internal metadata.
type PublicQuestionDTO struct {
	ID         uint    `json:"id"`
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	Order      int     `json:"order"`
	IsRequired bool    `json:"is_required"`
	Options    *string `json:"options,omitempty"`
}

type PublicSurveyDTO struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Questions   []PublicQuestionDTO `json:"questions"`
}

type AnswerSubmitDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text"`
}

type SubmitResponseDTO struct {
	RespondentEmail *string           `json:"respondent_email,omitempty" binding:"omitempty,email"`
	Answers         []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

type SubmissionResultDTO struct {
	ResponseID  uint      `json:"response_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}
