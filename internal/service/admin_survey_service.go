package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminSurveyService interface {
	SearchSurveys(filters dto.SurveyFiltersDTO) (*dto.PaginatedResult[dto.SurveyItemDTO], error)
	CloneSurvey(surveyID uint, newTitle string) (*dto.CloneSurveyResultDTO, error)
	BulkArchive(req dto.BulkArchiveSurveysDTO) (*dto.BulkArchiveResultDTO, error)
}

type adminSurveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewAdminSurveyService(surveyRepo repository.SurveyRepository) AdminSurveyService {
	return &adminSurveyService{surveyRepo: surveyRepo}
}

func (s *adminSurveyService) SearchSurveys(filters dto.SurveyFiltersDTO) (*dto.PaginatedResult[dto.SurveyItemDTO], error) {
	surveys, err := s.surveyRepo.FindAllWithResponseCounts()
	if err != nil {
		log.Error().Err(err).Msg("SearchSurveys: failed to load surveys")
		return nil, fmt.Errorf("loading surveys: %w", err)
	}

	filtered := filterSurveys(surveys, filters)
	sortSurveys(filtered, filters.SortBy, filters.SortDescending)

	totalCount := int64(len(filtered))
	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	pageItems := paginate(filtered, page, pageSize)

	dtos := make([]dto.SurveyItemDTO, 0, len(pageItems))
	for _, survey := range pageItems {
		dtos = append(dtos, surveyItemToDTO(&survey))
	}
	result := dto.NewPaginatedResult(dtos, totalCount, page, pageSize)
	return &result, nil
}

func (s *adminSurveyService) CloneSurvey(surveyID uint, newTitle string) (*dto.CloneSurveyResultDTO, error) {
	source, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}

	clone := &model.Survey{
		UserID:      source.UserID,
		Title:       newTitle,
		Description: source.Description,
		IsActive:    false,
		ShareToken:  uuid.NewString(),
	}
	for _, question := range source.Questions {
		clone.Questions = append(clone.Questions, model.Question{
			Text:            question.Text,
			Type:            question.Type,
			IsRequired:      question.IsRequired,
			Order:           question.Order,
			Options:         question.Options,
			ValidationRules: question.ValidationRules,
		})
	}

	if err := s.surveyRepo.Create(clone); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("CloneSurvey: failed to save clone")
		return nil, fmt.Errorf("cloning survey %d: %w", surveyID, err)
	}

	return &dto.CloneSurveyResultDTO{
		Message: fmt.Sprintf("Survey cloned successfully with %d questions", len(clone.Questions)),
		ClonedSurvey: surveyItemToDTO(&repository.SurveyWithCounts{
			Survey:        *clone,
			QuestionCount: len(clone.Questions),
		}),
	}, nil
}

// BulkArchive flips the archived flag on every survey it can resolve and
// reports how many it changed. Bad IDs and missing surveys are skipped, not
// treated as failures.
func (s *adminSurveyService) BulkArchive(req dto.BulkArchiveSurveysDTO) (*dto.BulkArchiveResultDTO, error) {
	count := 0
	for _, rawID := range req.SurveyIDs {
		id, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			log.Warn().Str("surveyID", rawID).Msg("BulkArchive: skipping unparseable survey id")
			continue
		}
		survey, err := s.surveyRepo.FindByID(uint(id))
		if err != nil {
			log.Warn().Err(err).Str("surveyID", rawID).Msg("BulkArchive: skipping survey")
			continue
		}
		survey.IsArchived = req.Archive
		if req.Archive {
			survey.IsActive = false
		}
		if err := s.surveyRepo.Update(survey); err != nil {
			log.Warn().Err(err).Str("surveyID", rawID).Msg("BulkArchive: failed to update survey")
			continue
		}
		count++
	}

	verb := "archived"
	if !req.Archive {
		verb = "unarchived"
	}
	return &dto.BulkArchiveResultDTO{
		Message: fmt.Sprintf("Successfully %s %d surveys", verb, count),
		Count:   count,
	}, nil
}

func filterSurveys(surveys []repository.SurveyWithCounts, filters dto.SurveyFiltersDTO) []repository.SurveyWithCounts {
	term := strings.ToLower(strings.TrimSpace(filters.SearchTerm))

	filtered := make([]repository.SurveyWithCounts, 0, len(surveys))
	for _, survey := range surveys {
		if term != "" &&
			!strings.Contains(strings.ToLower(survey.Title), term) &&
			!strings.Contains(strings.ToLower(survey.Description), term) {
			continue
		}
		if filters.IsActive != nil && survey.IsActive != *filters.IsActive {
			continue
		}
		if filters.IsArchived != nil && survey.IsArchived != *filters.IsArchived {
			continue
		}
		if filters.CreatedFromDate != nil && survey.CreatedAt.Before(*filters.CreatedFromDate) {
			continue
		}
		if filters.CreatedToDate != nil {
			end := filters.CreatedToDate.AddDate(0, 0, 1).Add(-1)
			if survey.CreatedAt.After(end) {
				continue
			}
		}
		filtered = append(filtered, survey)
	}
	return filtered
}

func sortSurveys(surveys []repository.SurveyWithCounts, sortBy string, descending bool) {
	less := func(i, j int) bool { return surveys[i].CreatedAt.Before(surveys[j].CreatedAt) }
	switch strings.ToLower(sortBy) {
	case "title":
		less = func(i, j int) bool { return surveys[i].Title < surveys[j].Title }
	case "isactive":
		less = func(i, j int) bool { return !surveys[i].IsActive && surveys[j].IsActive }
	case "isarchived":
		less = func(i, j int) bool { return !surveys[i].IsArchived && surveys[j].IsArchived }
	case "responsecount":
		less = func(i, j int) bool { return surveys[i].ResponseCount < surveys[j].ResponseCount }
	case "updatedat":
		less = func(i, j int) bool { return surveys[i].UpdatedAt.Before(surveys[j].UpdatedAt) }
	}
	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(surveys, less)
}

func surveyItemToDTO(survey *repository.SurveyWithCounts) dto.SurveyItemDTO {
	return dto.SurveyItemDTO{
		ID:            survey.ID,
		Title:         survey.Title,
		Description:   survey.Description,
		IsActive:      survey.IsActive,
		IsArchived:    survey.IsArchived,
		ResponseCount: survey.ResponseCount,
		CreatedAt:     survey.CreatedAt,
		UpdatedAt:     survey.UpdatedAt,
		PublishedAt:   survey.PublishedAt,
	}
}
