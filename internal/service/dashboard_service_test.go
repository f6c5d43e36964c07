package service

import (
	"testing"
	"time"

	"github.com/lshigami/surveylite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestGetDashboardStatsEmpty(t *testing.T) {
	svc := &dashboardService{
		surveyRepo:   newFakeSurveyRepo(),
		responseRepo: newFakeResponseRepo(),
		now:          fixedNow,
	}

	stats, err := svc.GetDashboardStats(7)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.SurveyStats.TotalSurveys)
	assert.Equal(t, 0.0, stats.ResponseStats.AveragePerSurvey)
	assert.Empty(t, stats.RecentSurveys)
	assert.Empty(t, stats.TopSurveys)
	// The trend still covers every one of the trailing 30 days.
	require.Len(t, stats.ActivityTrend, 30)
	for _, point := range stats.ActivityTrend {
		assert.Equal(t, 0, point.Count)
	}
	assert.Equal(t, "2024-05-17", stats.ActivityTrend[0].Date)
	assert.Equal(t, "2024-06-15", stats.ActivityTrend[29].Date)
}

func TestGetDashboardStatsCountsAndAverages(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(
		&model.Survey{ID: 1, UserID: 7, Title: "Alpha", IsActive: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		&model.Survey{ID: 2, UserID: 7, Title: "Beta", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	)
	responseRepo := newFakeResponseRepo(
		// Two responses this month, one from before.
		model.Response{SurveyID: 1, SubmittedAt: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
		model.Response{SurveyID: 1, SubmittedAt: time.Date(2024, 6, 14, 8, 0, 0, 0, time.UTC)},
		model.Response{SurveyID: 2, SubmittedAt: time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)},
	)
	svc := &dashboardService{surveyRepo: surveyRepo, responseRepo: responseRepo, now: fixedNow}

	stats, err := svc.GetDashboardStats(7)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.SurveyStats.TotalSurveys)
	assert.Equal(t, 1, stats.SurveyStats.ActiveSurveys)
	assert.Equal(t, 3, stats.ResponseStats.TotalResponses)
	assert.Equal(t, 2, stats.ResponseStats.ResponsesThisMonth)
	assert.Equal(t, 1.5, stats.ResponseStats.AveragePerSurvey)

	require.Len(t, stats.TopSurveys, 2)
	assert.Equal(t, "Alpha", stats.TopSurveys[0].Title)
	assert.Equal(t, 2, stats.TopSurveys[0].ResponseCount)

	// Most recently created survey first.
	require.NotEmpty(t, stats.RecentSurveys)
	assert.Equal(t, "Beta", stats.RecentSurveys[0].Title)

	// Most recent response first.
	require.NotEmpty(t, stats.RecentResponses)
	assert.Equal(t, time.Date(2024, 6, 14, 8, 0, 0, 0, time.UTC), stats.RecentResponses[0].SubmittedAt)
}

func TestBuildActivityTrendCountsInsideWindowOnly(t *testing.T) {
	now := fixedNow()
	responses := []model.Response{
		{SubmittedAt: now},
		{SubmittedAt: now.AddDate(0, 0, -29)},
		{SubmittedAt: now.AddDate(0, 0, -30)}, // outside the window
	}

	trend := buildActivityTrend(responses, now)

	require.Len(t, trend, 30)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, 1, trend[29].Count)

	total := 0
	for _, point := range trend {
		total += point.Count
	}
	assert.Equal(t, 2, total)
}

func TestTopSurveysCappedAtFive(t *testing.T) {
	var surveys []model.Survey
	counts := make(map[uint]int)
	for i := uint(1); i <= 7; i++ {
		surveys = append(surveys, model.Survey{ID: i, Title: "S"})
		counts[i] = int(i)
	}

	top := topSurveys(surveys, counts, 5)

	require.Len(t, top, 5)
	assert.Equal(t, 7, top[0].ResponseCount)
}
