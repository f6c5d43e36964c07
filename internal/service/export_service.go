package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const exportTimeFormat = "2006-01-02 15:04:05"

// ExportOptions shapes an analytics export request.
type ExportOptions struct {
	Format         string // "csv" or "json"
	FromDate       *time.Time
	ToDate         *time.Time // inclusive, treated as end of day
	IncludeAnswers bool
}

type ExportService interface {
	ExportAnalytics(surveyID, ownerID uint, opts ExportOptions) (*dto.ExportResultDTO, error)
	ExportResponsesCSV(surveyID, ownerID uint) (*dto.ExportResultDTO, error)
}

type exportService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
}

func NewExportService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) ExportService {
	return &exportService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

func (s *exportService) ExportAnalytics(surveyID, ownerID uint, opts ExportOptions) (*dto.ExportResultDTO, error) {
	survey, responses, err := s.load(surveyID, ownerID)
	if err != nil {
		return nil, err
	}

	responses = filterByDateRange(responses, opts.FromDate, opts.ToDate)

	suffix := time.Now().UTC().Format("20060102")
	base := strings.ReplaceAll(survey.Title, " ", "_")

	if strings.EqualFold(opts.Format, "csv") {
		content := buildAnalyticsCSV(survey, responses, opts.IncludeAnswers)
		return &dto.ExportResultDTO{
			FileName:    fmt.Sprintf("%s_%s.csv", base, suffix),
			ContentType: "text/csv",
			Content:     content,
			Message:     fmt.Sprintf("Exported %d responses to CSV", len(responses)),
		}, nil
	}

	content, err := buildExportJSON(survey, responses, opts.IncludeAnswers)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("ExportAnalytics: failed to marshal export document")
		return nil, fmt.Errorf("rendering JSON export: %w", err)
	}
	return &dto.ExportResultDTO{
		FileName:    fmt.Sprintf("%s_%s.json", base, suffix),
		ContentType: "application/json",
		Content:     content,
		Message:     fmt.Sprintf("Exported %d responses to JSON", len(responses)),
	}, nil
}

// ExportResponsesCSV is the plain response listing download: no date filter,
// always one column per question.
func (s *exportService) ExportResponsesCSV(surveyID, ownerID uint) (*dto.ExportResultDTO, error) {
	survey, responses, err := s.load(surveyID, ownerID)
	if err != nil {
		return nil, err
	}
	content := buildAnalyticsCSV(survey, responses, true)
	return &dto.ExportResultDTO{
		FileName:    fmt.Sprintf("%s_responses.csv", strings.ReplaceAll(survey.Title, " ", "_")),
		ContentType: "text/csv",
		Content:     content,
		Message:     fmt.Sprintf("Exported %d responses to CSV", len(responses)),
	}, nil
}

func (s *exportService) load(surveyID, ownerID uint) (*model.Survey, []model.Response, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}
	if survey.UserID != ownerID {
		return nil, nil, fmt.Errorf("survey %d: %w", surveyID, ErrForbidden)
	}
	responses, err := s.responseRepo.FindAllBySurveyIDWithAnswers(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("export: failed to load responses")
		return nil, nil, fmt.Errorf("loading responses for survey %d: %w", surveyID, err)
	}
	return survey, responses, nil
}

func filterByDateRange(responses []model.Response, from, to *time.Time) []model.Response {
	if from == nil && to == nil {
		return responses
	}
	var end time.Time
	if to != nil {
		end = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	filtered := make([]model.Response, 0, len(responses))
	for _, r := range responses {
		if from != nil && r.SubmittedAt.Before(*from) {
			continue
		}
		if to != nil && r.SubmittedAt.After(end) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func buildAnalyticsCSV(survey *model.Survey, responses []model.Response, includeAnswers bool) []byte {
	var b strings.Builder

	headers := []string{"Response ID", "Respondent Email", "Submitted At"}
	if includeAnswers {
		for _, q := range survey.Questions {
			headers = append(headers, fmt.Sprintf("Q%d: %s", q.Order, q.Text))
		}
	}
	writeCSVRow(&b, headers)

	ordered := make([]model.Response, len(responses))
	copy(ordered, responses)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SubmittedAt.Before(ordered[j].SubmittedAt)
	})

	for _, response := range ordered {
		row := []string{
			strconv.FormatUint(uint64(response.ID), 10),
			respondentOrAnonymous(response.RespondentEmail),
			response.SubmittedAt.Format(exportTimeFormat),
		}
		if includeAnswers {
			byQuestion := make(map[uint]string, len(response.Answers))
			for _, answer := range response.Answers {
				byQuestion[answer.QuestionID] = answer.AnswerText
			}
			for _, q := range survey.Questions {
				row = append(row, byQuestion[q.ID])
			}
		}
		writeCSVRow(&b, row)
	}

	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSVField(field))
	}
	b.WriteByte('\n')
}

// escapeCSVField quote-wraps every field, doubling embedded quotes
// (RFC 4180 style). Empty fields render as "".
func escapeCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func buildExportJSON(survey *model.Survey, responses []model.Response, includeAnswers bool) ([]byte, error) {
	questionText := make(map[uint]string, len(survey.Questions))
	for _, q := range survey.Questions {
		questionText[q.ID] = q.Text
	}

	doc := dto.ExportDocument{
		Survey: dto.ExportSurveyInfo{
			ID:             survey.ID,
			Title:          survey.Title,
			Description:    survey.Description,
			TotalResponses: len(responses),
		},
		Responses: make([]dto.ExportResponse, 0, len(responses)),
	}

	for _, response := range responses {
		item := dto.ExportResponse{
			ID:              response.ID,
			RespondentEmail: respondentOrAnonymous(response.RespondentEmail),
			SubmittedAt:     response.SubmittedAt.Format(exportTimeFormat),
		}
		if includeAnswers {
			for _, answer := range response.Answers {
				text, ok := questionText[answer.QuestionID]
				if !ok {
					text = "Unknown"
				}
				item.Answers = append(item.Answers, dto.ExportAnswer{
					QuestionID:   answer.QuestionID,
					QuestionText: text,
					AnswerText:   answer.AnswerText,
				})
			}
		}
		doc.Responses = append(doc.Responses, item)
	}

	return json.MarshalIndent(doc, "", "  ")
}

func respondentOrAnonymous(email *string) string {
	if email == nil || *email == "" {
		return "Anonymous"
	}
	return *email
}
