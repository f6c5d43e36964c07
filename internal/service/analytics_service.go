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

type AnalyticsService interface {
	GetSurveyAnalytics(surveyID, ownerID uint) (*dto.SurveyAnalyticsDTO, error)
}

type analyticsService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
}

func NewAnalyticsService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) AnalyticsService {
	return &analyticsService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

func (s *analyticsService) GetSurveyAnalytics(surveyID, ownerID uint) (*dto.SurveyAnalyticsDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyAnalytics: failed to load survey")
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}
	if survey.UserID != ownerID {
		return nil, fmt.Errorf("survey %d: %w", surveyID, ErrForbidden)
	}

	responses, err := s.responseRepo.FindAllBySurveyIDWithAnswers(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyAnalytics: failed to load responses")
		return nil, fmt.Errorf("loading responses for survey %d: %w", surveyID, err)
	}

	// The data layer gives no ordering guarantee, so sort before taking
	// first/last submission times.
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].SubmittedAt.Before(responses[j].SubmittedAt)
	})

	analytics := &dto.SurveyAnalyticsDTO{
		SurveyID:         survey.ID,
		SurveyTitle:      survey.Title,
		TotalResponses:   len(responses),
		ResponseTimeline: buildTimeline(responses),
	}
	if len(responses) > 0 {
		first := responses[0].SubmittedAt
		last := responses[len(responses)-1].SubmittedAt
		analytics.FirstResponseAt = &first
		analytics.LastResponseAt = &last
	}

	analytics.QuestionStatistics = make([]dto.QuestionStatistics, 0, len(survey.Questions))
	for _, question := range survey.Questions {
		var answers []string
		for _, response := range responses {
			for _, answer := range response.Answers {
				if answer.QuestionID == question.ID {
					answers = append(answers, answer.AnswerText)
				}
			}
		}
		analytics.QuestionStatistics = append(analytics.QuestionStatistics, aggregateQuestion(question, answers))
	}

	return analytics, nil
}
