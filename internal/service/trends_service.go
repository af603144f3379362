package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTrendsWindowDays is the default aggregation window.
	DefaultTrendsWindowDays = 30

	// trendDelta is the minimum half-window average shift (on the 1-10
	// rating scale) to call a trend improving or declining.
	trendDelta = 0.5
)

// TrendsService merges both partners' assessment series into chart-ready
// projections and derives per-category trends.
type TrendsService interface {
	// TimeSeries returns the couple's joined daily rating series.
	TimeSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.TimeSeriesPoint, error)
	// Radar returns per-category averages for both partners.
	Radar(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.RadarPoint, error)
	// CategoryTrends returns the user's per-category score+trend plus the
	// overall health summary, both on a 0-100 scale.
	CategoryTrends(ctx context.Context, userID uuid.UUID, windowDays int) (map[string]domain.CategoryAnalysis, domain.ScoreTrend, error)
}

type trendsService struct {
	assessmentRepo repository.AssessmentRepository
	userRepo       repository.UserRepository
}

// NewTrendsService creates a new TrendsService.
func NewTrendsService(assessmentRepo repository.AssessmentRepository, userRepo repository.UserRepository) TrendsService {
	return &trendsService{
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
	}
}

// fetchCouple loads the user's and (when linked) the partner's assessments
// for the window, both date-ascending.
func (s *trendsService) fetchCouple(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.DailyAssessment, []domain.DailyAssessment, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if windowDays <= 0 {
		windowDays = DefaultTrendsWindowDays
	}
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -windowDays)

	userAssessments, err := s.assessmentRepo.ListByRange(ctx, userID, from, now.AddDate(0, 0, 1))
	if err != nil {
		return nil, nil, err
	}

	var partnerAssessments []domain.DailyAssessment
	if user.PartnerID != nil {
		partnerAssessments, err = s.assessmentRepo.ListByRange(ctx, *user.PartnerID, from, now.AddDate(0, 0, 1))
		if err != nil {
			return nil, nil, err
		}
	}

	return userAssessments, partnerAssessments, nil
}

func (s *trendsService) TimeSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.TimeSeriesPoint, error) {
	tracer := otel.Tracer("wellness-api/trends")
	ctx, span := tracer.Start(ctx, "TrendsService.TimeSeries",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	userAssessments, partnerAssessments, err := s.fetchCouple(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}

	series := BuildTimeSeries(userAssessments, partnerAssessments)
	span.SetAttributes(attribute.Int("series.points", len(series)))
	return series, nil
}

func (s *trendsService) Radar(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.RadarPoint, error) {
	userAssessments, partnerAssessments, err := s.fetchCouple(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}
	return BuildRadar(userAssessments, partnerAssessments), nil
}

func (s *trendsService) CategoryTrends(ctx context.Context, userID uuid.UUID, windowDays int) (map[string]domain.CategoryAnalysis, domain.ScoreTrend, error) {
	userAssessments, _, err := s.fetchCouple(ctx, userID, windowDays)
	if err != nil {
		return nil, domain.ScoreTrend{}, err
	}

	categories := ComputeCategoryTrends(userAssessments)
	overall := computeOverallHealth(categories)
	return categories, overall, nil
}

// BuildTimeSeries merges both assessment lists into per-day records joined on
// the canonical UTC calendar-day key, sorted ascending by date. Each side
// contributes "user<Categoria>" / "partner<Categoria>" keys; a side with no
// submission that day contributes no keys, so consumers must treat a missing
// key as "no data", never as zero.
func BuildTimeSeries(userAssessments, partnerAssessments []domain.DailyAssessment) []domain.TimeSeriesPoint {
	byDate := make(map[string]domain.TimeSeriesPoint)

	merge := func(assessments []domain.DailyAssessment, prefix string) {
		for _, a := range assessments {
			key := a.DateKey()
			point, ok := byDate[key]
			if !ok {
				point = domain.TimeSeriesPoint{"date": key}
				byDate[key] = point
			}
			for _, c := range domain.Categories {
				point[prefix+titleKey(c.Key)] = c.Get(a.Ratings)
			}
		}
	}

	merge(userAssessments, "user")
	merge(partnerAssessments, "partner")

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := make([]domain.TimeSeriesPoint, 0, len(dates))
	for _, d := range dates {
		series = append(series, byDate[d])
	}
	return series
}

// titleKey upper-cases the first byte of a category key so "comunicacao"
// joins as "userComunicacao". Category keys are ASCII-leading by construction.
func titleKey(key string) string {
	if key == "" {
		return key
	}
	b := []byte(key)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// BuildRadar computes per-category averages for both partners. A side with no
// assessments yields nil averages rather than zeroes.
func BuildRadar(userAssessments, partnerAssessments []domain.DailyAssessment) []domain.RadarPoint {
	points := make([]domain.RadarPoint, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		point := domain.RadarPoint{
			Category: c.Key,
			Label:    c.Label,
		}
		if avg, ok := categoryAverage(userAssessments, c); ok {
			point.User = &avg
		}
		if avg, ok := categoryAverage(partnerAssessments, c); ok {
			point.Partner = &avg
		}
		points = append(points, point)
	}
	return points
}

func categoryAverage(assessments []domain.DailyAssessment, c domain.Category) (float64, bool) {
	if len(assessments) == 0 {
		return 0, false
	}
	sum := 0
	for _, a := range assessments {
		sum += c.Get(a.Ratings)
	}
	return float64(sum) / float64(len(assessments)), true
}

// ComputeCategoryTrends derives a 0-100 score and a direction per category
// from a date-ascending assessment list. The trend compares the second half
// of the window against the first.
func ComputeCategoryTrends(assessments []domain.DailyAssessment) map[string]domain.CategoryAnalysis {
	trends := make(map[string]domain.CategoryAnalysis, len(domain.Categories))
	for _, c := range domain.Categories {
		avg, ok := categoryAverage(assessments, c)
		if !ok {
			trends[c.Key] = domain.CategoryAnalysis{Trend: domain.TrendStable, Insights: []string{}}
			continue
		}

		trends[c.Key] = domain.CategoryAnalysis{
			Score:    avg * 10,
			Trend:    halfWindowTrend(assessments, c),
			Insights: []string{},
		}
	}
	return trends
}

// halfWindowTrend splits the series in two and compares half averages.
func halfWindowTrend(assessments []domain.DailyAssessment, c domain.Category) domain.TrendDirection {
	if len(assessments) < 4 {
		return domain.TrendStable
	}

	mid := len(assessments) / 2
	first, _ := categoryAverage(assessments[:mid], c)
	second, _ := categoryAverage(assessments[mid:], c)

	switch {
	case second-first > trendDelta:
		return domain.TrendImproving
	case first-second > trendDelta:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func computeOverallHealth(categories map[string]domain.CategoryAnalysis) domain.ScoreTrend {
	overall := domain.ScoreTrend{Trend: domain.TrendStable}
	if len(categories) == 0 {
		return overall
	}

	sum := 0.0
	improving, declining := 0, 0
	for _, c := range categories {
		sum += c.Score
		switch c.Trend {
		case domain.TrendImproving:
			improving++
		case domain.TrendDeclining:
			declining++
		}
	}
	overall.Score = sum / float64(len(categories))

	// The overall direction follows the majority of moving categories.
	if improving > declining {
		overall.Trend = domain.TrendImproving
	} else if declining > improving {
		overall.Trend = domain.TrendDeclining
	}
	return overall
}
