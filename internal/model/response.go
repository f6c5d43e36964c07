package model

import (
	"time"

	"gorm.io/gorm"
)

// Response is one respondent's full submission to a survey.
type Response struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	SurveyID        uint           `json:"survey_id" gorm:"not null;index"`
	RespondentEmail *string        `json:"respondent_email,omitempty"`
	IPAddress       *string        `json:"ip_address,omitempty"`
	SubmittedAt     time.Time      `json:"submitted_at" gorm:"not null;index"`
	Answers         []Answer       `json:"answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
