package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// QuestionType enumerates the supported question kinds. Stored as a string
// column so the database stays readable.
type QuestionType string

const (
	ShortText      QuestionType = "short_text"
	LongText       QuestionType = "long_text"
	MultipleChoice QuestionType = "multiple_choice"
	Checkboxes     QuestionType = "checkboxes"
	Rating         QuestionType = "rating"
	Date           QuestionType = "date"
	Email          QuestionType = "email"
)

func (t QuestionType) Valid() bool {
	switch t {
	case ShortText, LongText, MultipleChoice, Checkboxes, Rating, Date, Email:
		return true
	}
	return false
}

type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	SurveyID        uint           `json:"survey_id" gorm:"not null;index"`
	Type            QuestionType   `json:"type" gorm:"not null"`
	Text            string         `json:"text" gorm:"type:text;not null"`
	Order           int            `json:"order" gorm:"column:display_order;not null"`
	IsRequired      bool           `json:"is_required" gorm:"not null;default:false"`
	Options         *string        `json:"options,omitempty" gorm:"type:text"`          // JSON array of strings for choice questions
	ValidationRules *string        `json:"validation_rules,omitempty" gorm:"type:text"` // JSON, opaque to the backend
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// OptionList decodes the Options JSON. A missing or malformed value yields
// nil so analytics degrade to "no breakdown" instead of failing.
func (q *Question) OptionList() []string {
	if q.Options == nil {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(*q.Options), &opts); err != nil {
		return nil
	}
	return opts
}
