package service

import (
	"testing"
	"time"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminSurveyFixture() *fakeSurveyRepo {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	options := `["Red","Blue"]`
	return newFakeSurveyRepo(
		&model.Survey{
			ID: 1, UserID: 7, Title: "Customer Feedback", IsActive: true,
			ShareToken: "tok-1", CreatedAt: day(1),
			Questions: []model.Question{
				{ID: 10, Text: "Name", Type: model.ShortText, Order: 1, IsRequired: true},
				{ID: 11, Text: "Color", Type: model.MultipleChoice, Order: 2, Options: &options},
			},
			Responses: []model.Response{{ID: 1}, {ID: 2}, {ID: 3}},
		},
		&model.Survey{ID: 2, UserID: 8, Title: "Employee Pulse", IsArchived: true, ShareToken: "tok-2", CreatedAt: day(2)},
		&model.Survey{ID: 3, UserID: 8, Title: "Beta Feedback", ShareToken: "tok-3", CreatedAt: day(3)},
	)
}

func TestSearchSurveysByTerm(t *testing.T) {
	svc := NewAdminSurveyService(adminSurveyFixture())

	page, err := svc.SearchSurveys(dto.SurveyFiltersDTO{SearchTerm: "feedback", Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.TotalCount)
}

func TestSearchSurveysArchivedFilter(t *testing.T) {
	svc := NewAdminSurveyService(adminSurveyFixture())

	archived := true
	page, err := svc.SearchSurveys(dto.SurveyFiltersDTO{IsArchived: &archived, Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Employee Pulse", page.Items[0].Title)
}

func TestSearchSurveysSortByResponseCount(t *testing.T) {
	svc := NewAdminSurveyService(adminSurveyFixture())

	page, err := svc.SearchSurveys(dto.SurveyFiltersDTO{
		SortBy: "responsecount", SortDescending: true, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 3)
	assert.Equal(t, "Customer Feedback", page.Items[0].Title)
	assert.Equal(t, int64(3), page.Items[0].ResponseCount)
}

func TestCloneSurveyCopiesQuestions(t *testing.T) {
	repo := adminSurveyFixture()
	svc := NewAdminSurveyService(repo)

	result, err := svc.CloneSurvey(1, "Customer Feedback (Copy)")
	require.NoError(t, err)

	clone, err := repo.FindByIDWithQuestions(result.ClonedSurvey.ID)
	require.NoError(t, err)

	assert.Equal(t, "Customer Feedback (Copy)", clone.Title)
	assert.False(t, clone.IsActive)
	assert.NotEqual(t, "tok-1", clone.ShareToken)
	assert.NotEmpty(t, clone.ShareToken)
	assert.Equal(t, uint(7), clone.UserID)

	require.Len(t, clone.Questions, 2)
	assert.Equal(t, "Name", clone.Questions[0].Text)
	assert.True(t, clone.Questions[0].IsRequired)
	require.NotNil(t, clone.Questions[1].Options)
	assert.Equal(t, `["Red","Blue"]`, *clone.Questions[1].Options)
	// Clones never carry the source's responses.
	assert.Empty(t, clone.Responses)
}

func TestCloneSurveyNotFound(t *testing.T) {
	svc := NewAdminSurveyService(adminSurveyFixture())

	_, err := svc.CloneSurvey(999, "Copy")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBulkArchiveSkipsBadAndMissingIDs(t *testing.T) {
	repo := adminSurveyFixture()
	svc := NewAdminSurveyService(repo)

	result, err := svc.BulkArchive(dto.BulkArchiveSurveysDTO{
		SurveyIDs: []string{"1", "not-a-number", "999", "3"},
		Archive:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	one, _ := repo.FindByID(1)
	assert.True(t, one.IsArchived)
	// Archiving also deactivates.
	assert.False(t, one.IsActive)

	three, _ := repo.FindByID(3)
	assert.True(t, three.IsArchived)
}

func TestBulkUnarchive(t *testing.T) {
	repo := adminSurveyFixture()
	svc := NewAdminSurveyService(repo)

	result, err := svc.BulkArchive(dto.BulkArchiveSurveysDTO{
		SurveyIDs: []string{"2"},
		Archive:   false,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	two, _ := repo.FindByID(2)
	assert.False(t, two.IsArchived)
}
