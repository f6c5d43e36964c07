package dto

// ExportResultDTO carries a rendered export file back to the controller,
// which turns it into a download response.
type ExportResultDTO struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
	Message     string `json:"message"`
}

// Explicit record types for the JSON export body; no anonymous shapes.

type ExportSurveyInfo struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	TotalResponses int    `json:"totalResponses"`
}

type ExportAnswer struct {
	QuestionID   uint   `json:"questionId"`
	QuestionText string `json:"questionText"`
	AnswerText   string `json:"answerText"`
}

type ExportResponse struct {
	ID              uint           `json:"id"`
	RespondentEmail string         `json:"respondentEmail"`
	SubmittedAt     string         `json:"submittedAt"`
	Answers         []ExportAnswer `json:"answers,omitempty"`
}

type ExportDocument struct {
	Survey    ExportSurveyInfo `json:"survey"`
	Responses []ExportResponse `json:"responses"`
}
