package service

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lshigami/surveylite/internal/dto"
	"github.com/lshigami/surveylite/internal/model"
)

// Layouts accepted for date-question answers. Anything else is dropped from
// the aggregate rather than failing the report.
var dateAnswerLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// aggregateQuestion computes the statistics summary for one question from
// the answer texts collected across all responses. It never returns an
// error: unparseable values are excluded, never fatal.
func aggregateQuestion(question model.Question, answers []string) dto.QuestionStatistics {
	stats := dto.QuestionStatistics{
		QuestionID:   question.ID,
		QuestionText: question.Text,
		QuestionType: string(question.Type),
		TotalAnswers: len(answers),
	}
	if len(answers) == 0 {
		return stats
	}

	switch question.Type {
	case model.MultipleChoice, model.Checkboxes:
		// Checkboxes answers arrive as a single comma-joined string, so each
		// answer is split into its option tokens before counting.
		breakdown := make(map[string]int)
		for _, answer := range answers {
			for _, token := range strings.Split(answer, ",") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				breakdown[token]++
			}
		}
		stats.OptionBreakdown = breakdown

	case model.Rating:
		breakdown := make(map[string]int)
		var sum float64
		var parsed int
		for _, answer := range answers {
			value, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
			if err != nil {
				continue
			}
			sum += value
			parsed++
			breakdown[strconv.FormatFloat(value, 'f', -1, 64)]++
		}
		if parsed > 0 {
			avg := roundTo2(sum / float64(parsed))
			stats.AverageRating = &avg
		}
		stats.OptionBreakdown = breakdown

	case model.ShortText, model.LongText, model.Email:
		stats.TopAnswers = topAnswers(answers, 5)

	case model.Date:
		breakdown := make(map[string]int)
		for _, answer := range answers {
			if date, ok := parseDateAnswer(answer); ok {
				breakdown[date.Format("2006-01")]++
			}
		}
		if len(breakdown) > 0 {
			stats.OptionBreakdown = breakdown
		}
	}

	return stats
}

// topAnswers returns the n most frequent non-blank answers, ties broken by
// first-encountered order.
func topAnswers(answers []string, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, answer := range answers {
		if strings.TrimSpace(answer) == "" {
			continue
		}
		if counts[answer] == 0 {
			order = append(order, answer)
		}
		counts[answer]++
	}
	if len(order) == 0 {
		return nil
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

func parseDateAnswer(answer string) (time.Time, bool) {
	answer = strings.TrimSpace(answer)
	for _, layout := range dateAnswerLayouts {
		if date, err := time.Parse(layout, answer); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

// buildTimeline groups responses by UTC calendar date, ascending. Dates
// without responses are not synthesized.
func buildTimeline(responses []model.Response) []dto.TimelinePoint {
	counts := make(map[string]int)
	for _, response := range responses {
		counts[response.SubmittedAt.UTC().Format("2006-01-02")]++
	}
	points := make([]dto.TimelinePoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, dto.TimelinePoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
