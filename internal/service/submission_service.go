package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService serves the public (unauthenticated) survey surface:
// fetching a survey by its share token and accepting a response.
type SubmissionService interface {
	GetPublicSurvey(shareToken string) (*dto.PublicSurveyDTO, error)
	SubmitResponse(shareToken, ipAddress string, req dto.SubmitResponseDTO) (*dto.SubmissionResultDTO, error)
}

type submissionService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
}

func NewSubmissionService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) SubmissionService {
	return &submissionService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

func (s *submissionService) GetPublicSurvey(shareToken string) (*dto.PublicSurveyDTO, error) {
	survey, err := s.activeSurvey(shareToken)
	if err != nil {
		return nil, err
	}

	questions := make([]dto.PublicQuestionDTO, 0, len(survey.Questions))
	for _, question := range survey.Questions {
		questions = append(questions, dto.PublicQuestionDTO{
			ID:         question.ID,
			Type:       string(question.Type),
			Text:       question.Text,
			Order:      question.Order,
			IsRequired: question.IsRequired,
			Options:    question.Options,
		})
	}
	return &dto.PublicSurveyDTO{
		Title:       survey.Title,
		Description: survey.Description,
		Questions:   questions,
	}, nil
}

func (s *submissionService) SubmitResponse(shareToken, ipAddress string, req dto.SubmitResponseDTO) (*dto.SubmissionResultDTO, error) {
	survey, err := s.activeSurvey(shareToken)
	if err != nil {
		return nil, err
	}

	validIDs := make(map[uint]bool, len(survey.Questions))
	required := make(map[uint]bool)
	for _, question := range survey.Questions {
		validIDs[question.ID] = true
		if question.IsRequired {
			required[question.ID] = true
		}
	}

	answered := make(map[uint]bool, len(req.Answers))
	for _, answer := range req.Answers {
		if !validIDs[answer.QuestionID] {
			return nil, fmt.Errorf("question %d does not belong to this survey: %w", answer.QuestionID, ErrConflict)
		}
		if answered[answer.QuestionID] {
			return nil, fmt.Errorf("duplicate answer for question %d: %w", answer.QuestionID, ErrConflict)
		}
		answered[answer.QuestionID] = true
	}

	var missing []string
	for id := range required {
		if !answered[id] {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required questions not answered: %s: %w", strings.Join(missing, ", "), ErrConflict)
	}

	response := model.Response{
		SurveyID:        survey.ID,
		RespondentEmail: req.RespondentEmail,
		SubmittedAt:     time.Now().UTC(),
	}
	if ipAddress != "" {
		response.IPAddress = &ipAddress
	}
	for _, answer := range req.Answers {
		response.Answers = append(response.Answers, model.Answer{
			QuestionID: answer.QuestionID,
			AnswerText: answer.AnswerText,
		})
	}

	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Uint("surveyID", survey.ID).Msg("SubmitResponse: failed to save response")
		return nil, fmt.Errorf("saving response: %w", err)
	}

	return &dto.SubmissionResultDTO{ResponseID: response.ID, SubmittedAt: response.SubmittedAt}, nil
}

func (s *submissionService) activeSurvey(shareToken string) (*model.Survey, error) {
	survey, err := s.surveyRepo.FindByShareTokenWithQuestions(shareToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading survey: %w", err)
	}
	if !survey.IsActive || survey.IsArchived {
		return nil, fmt.Errorf("survey is not accepting responses: %w", ErrNotFound)
	}
	return survey, nil
}
