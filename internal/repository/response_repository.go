package repository

import (
	"github.com/lshigami/surveylite/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	FindAllBySurveyIDWithAnswers(surveyID uint) ([]model.Response, error)
	FindBySurveyIDPaged(surveyID uint, page, pageSize int) ([]model.Response, error)
	CountBySurveyID(surveyID uint) (int64, error)
	FindByIDWithAnswers(responseID, surveyID uint) (*model.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	// Answers populated on the response are created in the same insert.
	return r.db.Create(response).Error
}

func (r *responseRepository) FindAllBySurveyIDWithAnswers(surveyID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("Answers").
		Where("survey_id = ?", surveyID).
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindBySurveyIDPaged(surveyID uint, page, pageSize int) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("Answers").
		Where("survey_id = ?", surveyID).
		Order("submitted_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) CountBySurveyID(surveyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).Where("survey_id = ?", surveyID).Count(&count).Error
	return count, err
}

func (r *responseRepository) FindByIDWithAnswers(responseID, surveyID uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Preload("Answers.Question").
		Where("id = ? AND survey_id = ?", responseID, surveyID).
		First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}
