package service

import (
	"sort"
	"strings"

	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeSurveyRepo struct {
	surveys map[uint]*model.Survey
	nextID  uint
}

func newFakeSurveyRepo(surveys ...*model.Survey) *fakeSurveyRepo {
	repo := &fakeSurveyRepo{surveys: make(map[uint]*model.Survey), nextID: 1}
	for _, survey := range surveys {
		repo.add(survey)
	}
	return repo
}

func (r *fakeSurveyRepo) add(survey *model.Survey) {
	if survey.ID == 0 {
		survey.ID = r.nextID
	}
	if survey.ID >= r.nextID {
		r.nextID = survey.ID + 1
	}
	for i := range survey.Questions {
		if survey.Questions[i].ID == 0 {
			survey.Questions[i].ID = r.nextID
			r.nextID++
		}
		survey.Questions[i].SurveyID = survey.ID
	}
	r.surveys[survey.ID] = survey
}

func (r *fakeSurveyRepo) Create(survey *model.Survey) error {
	r.add(survey)
	return nil
}

func (r *fakeSurveyRepo) FindByID(id uint) (*model.Survey, error) {
	survey, ok := r.surveys[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *survey
	return &copied, nil
}

func (r *fakeSurveyRepo) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	survey, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(survey.Questions, func(i, j int) bool {
		return survey.Questions[i].Order < survey.Questions[j].Order
	})
	return survey, nil
}

func (r *fakeSurveyRepo) FindByShareTokenWithQuestions(token string) (*model.Survey, error) {
	for _, survey := range r.surveys {
		if survey.ShareToken == token {
			return r.FindByIDWithQuestions(survey.ID)
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSurveyRepo) FindAllByUser(userID uint) ([]model.Survey, error) {
	var surveys []model.Survey
	for _, survey := range r.surveys {
		if survey.UserID == userID {
			surveys = append(surveys, *survey)
		}
	}
	sort.SliceStable(surveys, func(i, j int) bool {
		if surveys[i].CreatedAt.Equal(surveys[j].CreatedAt) {
			return surveys[i].ID < surveys[j].ID
		}
		return surveys[i].CreatedAt.Before(surveys[j].CreatedAt)
	})
	return surveys, nil
}

func (r *fakeSurveyRepo) FindAllByUserWithCounts(userID uint, page, pageSize int, searchTerm string) ([]repository.SurveyWithCounts, error) {
	all, _ := r.FindAllByUser(userID)
	var rows []repository.SurveyWithCounts
	for _, survey := range all {
		if searchTerm != "" && !matchesSearch(&survey, searchTerm) {
			continue
		}
		rows = append(rows, repository.SurveyWithCounts{
			Survey:        survey,
			QuestionCount: len(survey.Questions),
			ResponseCount: int64(len(survey.Responses)),
		})
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], nil
}

func (r *fakeSurveyRepo) CountByUser(userID uint, searchTerm string) (int64, error) {
	var count int64
	for _, survey := range r.surveys {
		if survey.UserID != userID {
			continue
		}
		if searchTerm != "" && !matchesSearch(survey, searchTerm) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeSurveyRepo) FindAllWithResponseCounts() ([]repository.SurveyWithCounts, error) {
	var rows []repository.SurveyWithCounts
	for _, survey := range r.surveys {
		rows = append(rows, repository.SurveyWithCounts{
			Survey:        *survey,
			QuestionCount: len(survey.Questions),
			ResponseCount: int64(len(survey.Responses)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (r *fakeSurveyRepo) Update(survey *model.Survey) error {
	if _, ok := r.surveys[survey.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *survey
	r.surveys[survey.ID] = &copied
	return nil
}

func (r *fakeSurveyRepo) Delete(id uint) error {
	delete(r.surveys, id)
	return nil
}

func matchesSearch(survey *model.Survey, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(survey.Title), term) ||
		strings.Contains(strings.ToLower(survey.Description), term)
}

type fakeResponseRepo struct {
	responses []model.Response
	nextID    uint
}

func newFakeResponseRepo(responses ...model.Response) *fakeResponseRepo {
	repo := &fakeResponseRepo{nextID: 1}
	for _, response := range responses {
		repo.Create(&response)
	}
	return repo
}

func (r *fakeResponseRepo) Create(response *model.Response) error {
	if response.ID == 0 {
		response.ID = r.nextID
	}
	if response.ID >= r.nextID {
		r.nextID = response.ID + 1
	}
	for i := range response.Answers {
		response.Answers[i].ResponseID = response.ID
	}
	r.responses = append(r.responses, *response)
	return nil
}

func (r *fakeResponseRepo) FindAllBySurveyIDWithAnswers(surveyID uint) ([]model.Response, error) {
	var matched []model.Response
	for _, response := range r.responses {
		if response.SurveyID == surveyID {
			matched = append(matched, response)
		}
	}
	return matched, nil
}

func (r *fakeResponseRepo) FindBySurveyIDPaged(surveyID uint, page, pageSize int) ([]model.Response, error) {
	matched, _ := r.FindAllBySurveyIDWithAnswers(surveyID)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SubmittedAt.After(matched[j].SubmittedAt)
	})
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *fakeResponseRepo) CountBySurveyID(surveyID uint) (int64, error) {
	matched, _ := r.FindAllBySurveyIDWithAnswers(surveyID)
	return int64(len(matched)), nil
}

func (r *fakeResponseRepo) FindByIDWithAnswers(responseID, surveyID uint) (*model.Response, error) {
	for _, response := range r.responses {
		if response.ID == responseID && response.SurveyID == surveyID {
			copied := response
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	nextID    uint
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[uint]*model.Question), nextID: 1}
	for _, question := range questions {
		repo.Create(question)
	}
	return repo
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	if question.ID == 0 {
		question.ID = r.nextID
	}
	if question.ID >= r.nextID {
		r.nextID = question.ID + 1
	}
	copied := *question
	r.questions[question.ID] = &copied
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *question
	return &copied, nil
}

func (r *fakeQuestionRepo) FindBySurveyID(surveyID uint) ([]model.Question, error) {
	var questions []model.Question
	for _, question := range r.questions {
		if question.SurveyID == surveyID {
			questions = append(questions, *question)
		}
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Order < questions[j].Order
	})
	return questions, nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	if _, ok := r.questions[question.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *question
	r.questions[question.ID] = &copied
	return nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
	for _, user := range users {
		repo.Create(user)
	}
	return repo
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	var users []model.User
	for _, user := range r.users {
		users = append(users, *user)
	}
	sort.SliceStable(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}
