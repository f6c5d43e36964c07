package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SurveyService interface {
	CreateSurvey(ownerID uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	GetSurvey(surveyID, ownerID uint) (*dto.SurveyResponseDTO, error)
	ListSurveys(ownerID uint, page, pageSize int, searchTerm string) (*dto.PaginatedResult[dto.SurveySummaryDTO], error)
	UpdateSurvey(surveyID, ownerID uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error)
	DeleteSurvey(surveyID, ownerID uint) error
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository) SurveyService {
	return &surveyService{surveyRepo: surveyRepo}
}

func (s *surveyService) CreateSurvey(ownerID uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	survey := model.Survey{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		IsActive:    req.IsActive,
		ShareToken:  uuid.NewString(),
	}
	if req.IsActive {
		now := time.Now()
		survey.PublishedAt = &now
	}
	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Uint("ownerID", ownerID).Msg("CreateSurvey: failed to create survey")
		return nil, fmt.Errorf("creating survey: %w", err)
	}
	return surveyToDTO(&survey), nil
}

func (s *surveyService) GetSurvey(surveyID, ownerID uint) (*dto.SurveyResponseDTO, error) {
	survey, err := s.loadOwned(surveyID, ownerID)
	if err != nil {
		return nil, err
	}
	return surveyToDTO(survey), nil
}

func (s *surveyService) ListSurveys(ownerID uint, page, pageSize int, searchTerm string) (*dto.PaginatedResult[dto.SurveySummaryDTO], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	rows, err := s.surveyRepo.FindAllByUserWithCounts(ownerID, page, pageSize, searchTerm)
	if err != nil {
		log.Error().Err(err).Uint("ownerID", ownerID).Msg("ListSurveys: failed to load surveys")
		return nil, fmt.Errorf("loading surveys: %w", err)
	}
	totalCount, err := s.surveyRepo.CountByUser(ownerID, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("counting surveys: %w", err)
	}

	summaries := make([]dto.SurveySummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.SurveySummaryDTO{
			ID:            row.ID,
			Title:         row.Title,
			Description:   row.Description,
			IsActive:      row.IsActive,
			IsArchived:    row.IsArchived,
			ShareToken:    row.ShareToken,
			QuestionCount: row.QuestionCount,
			ResponseCount: row.ResponseCount,
			CreatedAt:     row.CreatedAt,
		})
	}
	result := dto.NewPaginatedResult(summaries, totalCount, page, pageSize)
	return &result, nil
}

func (s *surveyService) UpdateSurvey(surveyID, ownerID uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error) {
	survey, err := s.loadOwned(surveyID, ownerID)
	if err != nil {
		return nil, err
	}

	survey.Title = req.Title
	survey.Description = req.Description
	if req.IsActive && !survey.IsActive && survey.PublishedAt == nil {
		now := time.Now()
		survey.PublishedAt = &now
	}
	survey.IsActive = req.IsActive

	if err := s.surveyRepo.Update(survey); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("UpdateSurvey: failed to save survey")
		return nil, fmt.Errorf("updating survey %d: %w", surveyID, err)
	}
	return surveyToDTO(survey), nil
}

func (s *surveyService) DeleteSurvey(surveyID, ownerID uint) error {
	if _, err := s.loadOwned(surveyID, ownerID); err != nil {
		return err
	}
	if err := s.surveyRepo.Delete(surveyID); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("DeleteSurvey: failed to delete survey")
		return fmt.Errorf("deleting survey %d: %w", surveyID, err)
	}
	return nil
}

func (s *surveyService) loadOwned(surveyID, ownerID uint) (*model.Survey, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}
	if survey.UserID != ownerID {
		return nil, fmt.Errorf("survey %d: %w", surveyID, ErrForbidden)
	}
	return survey, nil
}

func surveyToDTO(survey *model.Survey) *dto.SurveyResponseDTO {
	var resp dto.SurveyResponseDTO
	if err := copier.Copy(&resp, survey); err != nil {
		log.Error().Err(err).Msg("failed to copy survey model to DTO")
	}
	return &resp
}
