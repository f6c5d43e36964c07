package service

import (
	"testing"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionFixture(active bool) *fakeSurveyRepo {
	return newFakeSurveyRepo(&model.Survey{
		ID:         1,
		UserID:     7,
		Title:      "Feedback",
		IsActive:   active,
		ShareToken: "tok-123",
		Questions: []model.Question{
			{ID: 10, Text: "Name", Type: model.ShortText, Order: 1, IsRequired: true},
			{ID: 11, Text: "Comments", Type: model.LongText, Order: 2},
		},
	})
}

func TestGetPublicSurveyReturnsQuestionsInOrder(t *testing.T) {
	svc := NewSubmissionService(submissionFixture(true), newFakeResponseRepo())

	survey, err := svc.GetPublicSurvey("tok-123")
	require.NoError(t, err)

	assert.Equal(t, "Feedback", survey.Title)
	require.Len(t, survey.Questions, 2)
	assert.Equal(t, uint(10), survey.Questions[0].ID)
	assert.True(t, survey.Questions[0].IsRequired)
}

func TestGetPublicSurveyInactiveReadsAsNotFound(t *testing.T) {
	svc := NewSubmissionService(submissionFixture(false), newFakeResponseRepo())

	_, err := svc.GetPublicSurvey("tok-123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPublicSurveyArchivedReadsAsNotFound(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(&model.Survey{
		ID: 1, UserID: 7, IsActive: true, IsArchived: true, ShareToken: "tok-123",
	})
	svc := NewSubmissionService(surveyRepo, newFakeResponseRepo())

	_, err := svc.GetPublicSurvey("tok-123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitResponseSuccess(t *testing.T) {
	responseRepo := newFakeResponseRepo()
	svc := NewSubmissionService(submissionFixture(true), responseRepo)

	email := "jane@example.com"
	result, err := svc.SubmitResponse("tok-123", "203.0.113.9", dto.SubmitResponseDTO{
		RespondentEmail: &email,
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: 10, AnswerText: "Jane"},
			{QuestionID: 11, AnswerText: "All good"},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, result.ResponseID)

	stored, err := responseRepo.FindAllBySurveyIDWithAnswers(1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Len(t, stored[0].Answers, 2)
	require.NotNil(t, stored[0].IPAddress)
	assert.Equal(t, "203.0.113.9", *stored[0].IPAddress)
}

func TestSubmitResponseMissingRequiredQuestion(t *testing.T) {
	svc := NewSubmissionService(submissionFixture(true), newFakeResponseRepo())

	_, err := svc.SubmitResponse("tok-123", "", dto.SubmitResponseDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: 11, AnswerText: "optional only"},
		},
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSubmitResponseUnknownQuestion(t *testing.T) {
	svc := NewSubmissionService(submissionFixture(true), newFakeResponseRepo())

	_, err := svc.SubmitResponse("tok-123", "", dto.SubmitResponseDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: 10, AnswerText: "Jane"},
			{QuestionID: 999, AnswerText: "bogus"},
		},
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSubmitResponseDuplicateAnswer(t *testing.T) {
	svc := NewSubmissionService(submissionFixture(true), newFakeResponseRepo())

	_, err := svc.SubmitResponse("tok-123", "", dto.SubmitResponseDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionID: 10, AnswerText: "Jane"},
			{QuestionID: 10, AnswerText: "Janet"},
		},
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSubmitResponseUnknownToken(t *testing.T) {
	svc := NewSubmissionService(newFakeSurveyRepo(), newFakeResponseRepo())

	_, err := svc.SubmitResponse("missing", "", dto.SubmitResponseDTO{})
	assert.ErrorIs(t, err, ErrNotFound)
}
