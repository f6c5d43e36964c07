package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResponseService interface {
	ListResponses(surveyID, ownerID uint, page, pageSize int) (*dto.PaginatedResult[dto.ResponseSummaryDTO], error)
	GetResponse(surveyID, responseID, ownerID uint) (*dto.ResponseDetailDTO, error)
}

type responseService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
}

func NewResponseService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

func (s *responseService) ListResponses(surveyID, ownerID uint, page, pageSize int) (*dto.PaginatedResult[dto.ResponseSummaryDTO], error) {
	if err := s.checkOwnership(surveyID, ownerID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	responses, err := s.responseRepo.FindBySurveyIDPaged(surveyID, page, pageSize)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("ListResponses: failed to load responses")
		return nil, fmt.Errorf("loading responses for survey %d: %w", surveyID, err)
	}
	totalCount, err := s.responseRepo.CountBySurveyID(surveyID)
	if err != nil {
		return nil, fmt.Errorf("counting responses for survey %d: %w", surveyID, err)
	}

	summaries := make([]dto.ResponseSummaryDTO, 0, len(responses))
	for _, response := range responses {
		summaries = append(summaries, dto.ResponseSummaryDTO{
			ID:              response.ID,
			RespondentEmail: response.RespondentEmail,
			SubmittedAt:     response.SubmittedAt,
			AnswerCount:     len(response.Answers),
		})
	}
	result := dto.NewPaginatedResult(summaries, totalCount, page, pageSize)
	return &result, nil
}

func (s *responseService) GetResponse(surveyID, responseID, ownerID uint) (*dto.ResponseDetailDTO, error) {
	if err := s.checkOwnership(surveyID, ownerID); err != nil {
		return nil, err
	}

	response, err := s.responseRepo.FindByIDWithAnswers(responseID, surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("response %d: %w", responseID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading response %d: %w", responseID, err)
	}

	sort.SliceStable(response.Answers, func(i, j int) bool {
		return response.Answers[i].Question.Order < response.Answers[j].Question.Order
	})
	answers := make([]dto.ResponseAnswerDTO, 0, len(response.Answers))
	for _, answer := range response.Answers {
		answers = append(answers, dto.ResponseAnswerDTO{
			QuestionID:   answer.QuestionID,
			QuestionText: answer.Question.Text,
			QuestionType: string(answer.Question.Type),
			AnswerText:   answer.AnswerText,
		})
	}

	return &dto.ResponseDetailDTO{
		ID:              response.ID,
		SurveyID:        response.SurveyID,
		RespondentEmail: response.RespondentEmail,
		IPAddress:       response.IPAddress,
		SubmittedAt:     response.SubmittedAt,
		Answers:         answers,
	}, nil
}

func (s *responseService) checkOwnership(surveyID, ownerID uint) error {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
		}
		return fmt.Errorf("loading survey %d: %w", surveyID, err)
	}
	if survey.UserID != ownerID {
		return fmt.Errorf("survey %d: %w", surveyID, ErrForbidden)
	}
	return nil
}
