package service

import (
	"testing"
	"time"

	"github.com/lshigami/surveylite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResponsesPaginates(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(&model.Survey{ID: 1, UserID: 7})
	responseRepo := newFakeResponseRepo()
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		responseRepo.Create(&model.Response{
			SurveyID:    1,
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	svc := NewResponseService(surveyRepo, responseRepo)

	page, err := svc.ListResponses(1, 7, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(7), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	// Newest first, so page two carries the two oldest.
	assert.Equal(t, base.Add(time.Hour), page.Items[0].SubmittedAt)
	assert.Equal(t, base, page.Items[1].SubmittedAt)
}

func TestGetResponseOrdersAnswersByQuestionOrder(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(&model.Survey{ID: 1, UserID: 7})
	responseRepo := newFakeResponseRepo(model.Response{
		ID:          5,
		SurveyID:    1,
		SubmittedAt: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
		Answers: []model.Answer{
			{
				QuestionID: 11,
				Question:   model.Question{ID: 11, Text: "Second", Type: model.Rating, Order: 2},
				AnswerText: "4",
			},
			{
				QuestionID: 10,
				Question:   model.Question{ID: 10, Text: "First", Type: model.ShortText, Order: 1},
				AnswerText: "Jane",
			},
		},
	})
	svc := NewResponseService(surveyRepo, responseRepo)

	detail, err := svc.GetResponse(1, 5, 7)
	require.NoError(t, err)

	require.Len(t, detail.Answers, 2)
	assert.Equal(t, "First", detail.Answers[0].QuestionText)
	assert.Equal(t, "Second", detail.Answers[1].QuestionText)
}

func TestGetResponseFromAnotherSurveyNotFound(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(&model.Survey{ID: 1, UserID: 7})
	responseRepo := newFakeResponseRepo(model.Response{ID: 5, SurveyID: 2, SubmittedAt: time.Now()})
	svc := NewResponseService(surveyRepo, responseRepo)

	_, err := svc.GetResponse(1, 5, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListResponsesForbiddenForNonOwner(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(&model.Survey{ID: 1, UserID: 7})
	svc := NewResponseService(surveyRepo, newFakeResponseRepo())

	_, err := svc.ListResponses(1, 99, 1, 10)
	assert.ErrorIs(t, err, ErrForbidden)
}
