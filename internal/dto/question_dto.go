package dto

type QuestionCreateDTO struct {
	Type            string  `json:"type" binding:"required,oneof=short_text long_text multiple_choice checkboxes rating date email"`
	Text            string  `json:"text" binding:"required"`
	Order           int     `json:"order" binding:"required,min=1"`
	IsRequired      bool    `json:"is_required"`
	Options         *string `json:"options,omitempty"`
	ValidationRules *string `json:"validation_rules,omitempty"`
}

type QuestionUpdateDTO struct {
	Text            string  `json:"text" binding:"required"`
	IsRequired      bool    `json:"is_required"`
	Options         *string `json:"options,omitempty"`
	ValidationRules *string `json:"validation_rules,omitempty"`
}

type QuestionOrderDTO struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order" binding:"required,min=1"`
}

type ReorderQuestionsDTO struct {
	Questions []QuestionOrderDTO `json:"questions" binding:"required,min=1,dive"`
}
