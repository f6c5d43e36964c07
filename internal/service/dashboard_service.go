package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/rs/zerolog/log"
)

type DashboardService interface {
	GetDashboardStats(userID uint) (*dto.DashboardStatsDTO, error)
}

type dashboardService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
	now          func() time.Time
}

func NewDashboardService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) DashboardService {
	return &dashboardService{surveyRepo: surveyRepo, responseRepo: responseRepo, now: time.Now}
}

func (s *dashboardService) GetDashboardStats(userID uint) (*dto.DashboardStatsDTO, error) {
	surveys, err := s.surveyRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetDashboardStats: failed to load surveys")
		return nil, fmt.Errorf("loading surveys for user %d: %w", userID, err)
	}

	var allResponses []model.Response
	responsesPerSurvey := make(map[uint]int, len(surveys))
	for _, survey := range surveys {
		responses, err := s.responseRepo.FindAllBySurveyIDWithAnswers(survey.ID)
		if err != nil {
			log.Error().Err(err).Uint("surveyID", survey.ID).Msg("GetDashboardStats: failed to load responses")
			return nil, fmt.Errorf("loading responses for survey %d: %w", survey.ID, err)
		}
		responsesPerSurvey[survey.ID] = len(responses)
		allResponses = append(allResponses, responses...)
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	totalSurveys := len(surveys)
	activeSurveys := 0
	for _, survey := range surveys {
		if survey.IsActive {
			activeSurveys++
		}
	}

	totalResponses := len(allResponses)
	responsesThisMonth := 0
	for _, response := range allResponses {
		if !response.SubmittedAt.Before(monthStart) {
			responsesThisMonth++
		}
	}

	averagePerSurvey := 0.0
	if totalSurveys > 0 {
		averagePerSurvey = roundTo2(float64(totalResponses) / float64(totalSurveys))
	}

	titleBySurvey := make(map[uint]string, len(surveys))
	for _, survey := range surveys {
		titleBySurvey[survey.ID] = survey.Title
	}

	return &dto.DashboardStatsDTO{
		SurveyStats:     dto.SurveyStatsDTO{TotalSurveys: totalSurveys, ActiveSurveys: activeSurveys, TotalResponses: totalResponses},
		ResponseStats:   dto.ResponseStatsDTO{TotalResponses: totalResponses, ResponsesThisMonth: responsesThisMonth, AveragePerSurvey: averagePerSurvey},
		RecentSurveys:   recentSurveys(surveys, responsesPerSurvey, 5),
		RecentResponses: recentResponses(allResponses, titleBySurvey, 5),
		ActivityTrend:   buildActivityTrend(allResponses, now),
		TopSurveys:      topSurveys(surveys, responsesPerSurvey, 5),
	}, nil
}

func recentSurveys(surveys []model.Survey, counts map[uint]int, n int) []dto.RecentSurveyDTO {
	sorted := make([]model.Survey, len(surveys))
	copy(sorted, surveys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	recent := make([]dto.RecentSurveyDTO, 0, len(sorted))
	for _, survey := range sorted {
		recent = append(recent, dto.RecentSurveyDTO{
			ID:            survey.ID,
			Title:         survey.Title,
			CreatedAt:     survey.CreatedAt,
			ResponseCount: counts[survey.ID],
		})
	}
	return recent
}

func recentResponses(responses []model.Response, titles map[uint]string, n int) []dto.RecentResponseDTO {
	sorted := make([]model.Response, len(responses))
	copy(sorted, responses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SubmittedAt.After(sorted[j].SubmittedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	recent := make([]dto.RecentResponseDTO, 0, len(sorted))
	for _, response := range sorted {
		title, ok := titles[response.SurveyID]
		if !ok {
			title = "Unknown Survey"
		}
		recent = append(recent, dto.RecentResponseDTO{
			ID:              response.ID,
			SurveyID:        response.SurveyID,
			SurveyTitle:     title,
			RespondentEmail: response.RespondentEmail,
			SubmittedAt:     response.SubmittedAt,
		})
	}
	return recent
}

// buildActivityTrend zero-fills every one of the trailing 30 calendar days
// (today included) before counting responses into matching buckets, so quiet
// days still show up as explicit zeroes.
func buildActivityTrend(responses []model.Response, now time.Time) []dto.TimelinePoint {
	trend := make(map[string]int, 30)
	for i := 29; i >= 0; i-- {
		trend[now.AddDate(0, 0, -i).Format("2006-01-02")] = 0
	}
	for _, response := range responses {
		key := response.SubmittedAt.UTC().Format("2006-01-02")
		if _, ok := trend[key]; ok {
			trend[key]++
		}
	}
	points := make([]dto.TimelinePoint, 0, len(trend))
	for date, count := range trend {
		points = append(points, dto.TimelinePoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// topSurveys ranks by response count descending, ties broken by encounter
// order.
func topSurveys(surveys []model.Survey, counts map[uint]int, n int) []dto.TopSurveyDTO {
	ranked := make([]dto.TopSurveyDTO, 0, len(surveys))
	for _, survey := range surveys {
		ranked = append(ranked, dto.TopSurveyDTO{
			ID:            survey.ID,
			Title:         survey.Title,
			ResponseCount: counts[survey.ID],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ResponseCount > ranked[j].ResponseCount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
