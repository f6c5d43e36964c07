package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one respondent's text value for a single question. A response
// holds at most one answer per question.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	ResponseID uint           `json:"response_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Question   Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AnswerText string         `json:"answer_text" gorm:"type:text;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
