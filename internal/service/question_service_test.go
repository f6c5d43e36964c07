package service

import (
	"testing"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionFixture() (*fakeSurveyRepo, *fakeQuestionRepo) {
	surveyRepo := newFakeSurveyRepo(&model.Survey{ID: 1, UserID: 7, Title: "Feedback"})
	questionRepo := newFakeQuestionRepo(
		&model.Question{ID: 10, SurveyID: 1, Text: "First", Type: model.ShortText, Order: 1},
		&model.Question{ID: 11, SurveyID: 1, Text: "Second", Type: model.Rating, Order: 2},
	)
	return surveyRepo, questionRepo
}

func TestAddQuestion(t *testing.T) {
	surveyRepo, questionRepo := questionFixture()
	svc := NewQuestionService(surveyRepo, questionRepo)

	created, err := svc.AddQuestion(1, 7, dto.QuestionCreateDTO{
		Type: "multiple_choice", Text: "Pick one", Order: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "multiple_choice", created.Type)

	questions, err := questionRepo.FindBySurveyID(1)
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestAddQuestionForbiddenForNonOwner(t *testing.T) {
	surveyRepo, questionRepo := questionFixture()
	svc := NewQuestionService(surveyRepo, questionRepo)

	_, err := svc.AddQuestion(1, 99, dto.QuestionCreateDTO{Type: "short_text", Text: "x"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateQuestionFromAnotherSurvey(t *testing.T) {
	surveyRepo, questionRepo := questionFixture()
	questionRepo.Create(&model.Question{ID: 99, SurveyID: 2, Text: "Other", Type: model.ShortText})
	svc := NewQuestionService(surveyRepo, questionRepo)

	_, err := svc.UpdateQuestion(1, 99, 7, dto.QuestionUpdateDTO{Text: "hijack"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	surveyRepo, questionRepo := questionFixture()
	svc := NewQuestionService(surveyRepo, questionRepo)

	require.NoError(t, svc.DeleteQuestion(1, 10, 7))

	questions, err := questionRepo.FindBySurveyID(1)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestReorderQuestionsSkipsUnknownIDs(t *testing.T) {
	surveyRepo, questionRepo := questionFixture()
	svc := NewQuestionService(surveyRepo, questionRepo)

	err := svc.ReorderQuestions(1, 7, dto.ReorderQuestionsDTO{
		Questions: []dto.QuestionOrderDTO{
			{ID: 11, Order: 1},
			{ID: 10, Order: 2},
			{ID: 999, Order: 3}, // not in this survey
		},
	})
	require.NoError(t, err)

	questions, err := svc.ListQuestions(1, 7)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, uint(11), questions[0].ID)
	assert.Equal(t, uint(10), questions[1].ID)
}
