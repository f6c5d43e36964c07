package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	AddQuestion(surveyID, ownerID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(surveyID, questionID, ownerID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(surveyID, questionID, ownerID uint) error
	ReorderQuestions(surveyID, ownerID uint, req dto.ReorderQuestionsDTO) error
	ListQuestions(surveyID, ownerID uint) ([]dto.QuestionResponseDTO, error)
}

type questionService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(surveyRepo repository.SurveyRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{surveyRepo: surveyRepo, questionRepo: questionRepo}
}

func (s *questionService) AddQuestion(surveyID, ownerID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.ownedSurvey(surveyID, ownerID); err != nil {
		return nil, err
	}
	question := model.Question{
		SurveyID:        surveyID,
		Type:            model.QuestionType(req.Type),
		Text:            req.Text,
		Order:           req.Order,
		IsRequired:      req.IsRequired,
		Options:         req.Options,
		ValidationRules: req.ValidationRules,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("AddQuestion: failed to create question")
		return nil, fmt.Errorf("creating question: %w", err)
	}
	return questionToDTO(&question), nil
}

func (s *questionService) UpdateQuestion(surveyID, questionID, ownerID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.ownedSurvey(surveyID, ownerID); err != nil {
		return nil, err
	}
	question, err := s.surveyQuestion(surveyID, questionID)
	if err != nil {
		return nil, err
	}

	question.Text = req.Text
	question.IsRequired = req.IsRequired
	question.Options = req.Options
	question.ValidationRules = req.ValidationRules

	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("UpdateQuestion: failed to save question")
		return nil, fmt.Errorf("updating question %d: %w", questionID, err)
	}
	return questionToDTO(question), nil
}

func (s *questionService) DeleteQuestion(surveyID, questionID, ownerID uint) error {
	if _, err := s.ownedSurvey(surveyID, ownerID); err != nil {
		return err
	}
	if _, err := s.surveyQuestion(surveyID, questionID); err != nil {
		return err
	}
	if err := s.questionRepo.Delete(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("DeleteQuestion: failed to delete question")
		return fmt.Errorf("deleting question %d: %w", questionID, err)
	}
	return nil
}

// ReorderQuestions applies the given order values one question at a time.
// IDs that do not belong to the survey are skipped.
func (s *questionService) ReorderQuestions(surveyID, ownerID uint, req dto.ReorderQuestionsDTO) error {
	if _, err := s.ownedSurvey(surveyID, ownerID); err != nil {
		return err
	}
	questions, err := s.questionRepo.FindBySurveyID(surveyID)
	if err != nil {
		return fmt.Errorf("loading questions for survey %d: %w", surveyID, err)
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	for _, item := range req.Questions {
		question, ok := byID[item.ID]
		if !ok {
			log.Warn().Uint("questionID", item.ID).Uint("surveyID", surveyID).Msg("ReorderQuestions: question not in survey, skipping")
			continue
		}
		question.Order = item.Order
		if err := s.questionRepo.Update(question); err != nil {
			log.Error().Err(err).Uint("questionID", item.ID).Msg("ReorderQuestions: failed to save order")
			return fmt.Errorf("updating question %d: %w", item.ID, err)
		}
	}
	return nil
}

func (s *questionService) ListQuestions(surveyID, ownerID uint) ([]dto.QuestionResponseDTO, error) {
	if _, err := s.ownedSurvey(surveyID, ownerID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindBySurveyID(surveyID)
	if err != nil {
		return nil, fmt.Errorf("loading questions for survey %d: %w", surveyID, err)
	}
	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		dtos = append(dtos, *questionToDTO(&questions[i]))
	}
	return dtos, nil
}

func (s *questionService) ownedSurvey(surveyID, ownerID uint) (*model.Survey, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
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

func (s *questionService) surveyQuestion(surveyID, questionID uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading question %d: %w", questionID, err)
	}
	if question.SurveyID != surveyID {
		return nil, fmt.Errorf("question %d does not belong to survey %d: %w", questionID, surveyID, ErrNotFound)
	}
	return question, nil
}

func questionToDTO(question *model.Question) *dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Msg("failed to copy question model to DTO")
	}
	return &resp
}
