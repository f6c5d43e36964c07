package repository

import (
	"github.com/lshigami/surveylite/internal/model"
	"gorm.io/gorm"
)

// SurveyWithCounts carries a survey row together with aggregate counts used
// by listings; gorm scans the count columns from the subselects.
type SurveyWithCounts struct {
	model.Survey
	QuestionCount int
	ResponseCount int64
}

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithQuestions(id uint) (*model.Survey, error)
	FindByShareTokenWithQuestions(token string) (*model.Survey, error)
	FindAllByUser(userID uint) ([]model.Survey, error)
	FindAllByUserWithCounts(userID uint, page, pageSize int, searchTerm string) ([]SurveyWithCounts, error)
	CountByUser(userID uint, searchTerm string) (int64, error)
	FindAllWithResponseCounts() ([]SurveyWithCounts, error)
	Update(survey *model.Survey) error
	Delete(id uint) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// Create with associations also persists survey.Questions when populated.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.display_order ASC")
	}).First(&survey, id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByShareTokenWithQuestions(token string) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.display_order ASC")
	}).Where("share_token = ?", token).First(&survey).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllByUser(userID uint) ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&surveys).Error
	return surveys, err
}

func (r *surveyRepository) FindAllByUserWithCounts(userID uint, page, pageSize int, searchTerm string) ([]SurveyWithCounts, error) {
	var results []SurveyWithCounts
	query := r.db.Model(&model.Survey{}).
		Select(`surveys.*,
			(SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) AS question_count,
			(SELECT COUNT(*) FROM responses WHERE responses.survey_id = surveys.id AND responses.deleted_at IS NULL) AS response_count`).
		Where("surveys.user_id = ?", userID)
	if searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where("surveys.title ILIKE ? OR surveys.description ILIKE ?", pattern, pattern)
	}
	err := query.Order("surveys.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&results).Error
	return results, err
}

func (r *surveyRepository) CountByUser(userID uint, searchTerm string) (int64, error) {
	var count int64
	query := r.db.Model(&model.Survey{}).Where("user_id = ?", userID)
	if searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *surveyRepository) FindAllWithResponseCounts() ([]SurveyWithCounts, error) {
	var results []SurveyWithCounts
	err := r.db.Model(&model.Survey{}).
		Select(`surveys.*,
			(SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) AS question_count,
			(SELECT COUNT(*) FROM responses WHERE responses.survey_id = surveys.id AND responses.deleted_at IS NULL) AS response_count`).
		Order("surveys.created_at ASC").
		Scan(&results).Error
	return results, err
}

func (r *surveyRepository) Update(survey *model.Survey) error {
	return r.db.Save(survey).Error
}

func (r *surveyRepository) Delete(id uint) error {
	return r.db.Delete(&model.Survey{}, id).Error
}
