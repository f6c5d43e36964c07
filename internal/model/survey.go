package model

import (
	"time"

	"gorm.io/gorm"
)

type Survey struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool           `json:"is_active" gorm:"not null;default:false"`
	IsArchived  bool           `json:"is_archived" gorm:"not null;default:false"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	ShareToken  string         `json:"share_token" gorm:"uniqueIndex;not null"` // public link identifier
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
	Responses   []Response     `json:"responses,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
