package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// HighVariabilityThreshold flags unstable emotional intensity.
	HighVariabilityThreshold = 0.7
	// LowResilienceThreshold flags difficulty recovering from negative moods.
	LowResilienceThreshold = 0.3

	// Fixed confidence literals carried by each rule's insights.
	VariabilityInsightConfidence = 0.8
	ActivityInsightConfidence    = 0.7
	ResilienceInsightConfidence  = 0.75
)

// MoodAnalysisService computes mood pattern analyses from mood entries.
type MoodAnalysisService interface {
	// Analyze computes the mood pattern analysis for a user over the timeframe.
	// Returns nil (no error) when the user has no entries in the window.
	Analyze(ctx context.Context, userID uuid.UUID, timeframe domain.Timeframe) (*domain.MoodAnalysis, error)
}

type moodAnalysisService struct {
	moodRepo repository.MoodEntryRepository
	userRepo repository.UserRepository
}

// NewMoodAnalysisService creates a new MoodAnalysisService.
func NewMoodAnalysisService(moodRepo repository.MoodEntryRepository, userRepo repository.UserRepository) MoodAnalysisService {
	return &moodAnalysisService{
		moodRepo: moodRepo,
		userRepo: userRepo,
	}
}

func (s *moodAnalysisService) Analyze(ctx context.Context, userID uuid.UUID, timeframe domain.Timeframe) (*domain.MoodAnalysis, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tracer := otel.Tracer("wellness-api/mood")
	ctx, span := tracer.Start(ctx, "MoodAnalysisService.Analyze",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("timeframe", string(timeframe)),
		),
	)
	defer span.End()

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -timeframe.Days())

	// Entries come back timestamp-ascending; the adjacency metrics depend on it.
	entries, err := s.moodRepo.ListByRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}

	analysis := AnalyzeMoodPatterns(entries, timeframe)

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	if analysis != nil {
		if outJSON, err := json.Marshal(analysis.Metrics); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
		}
	}

	return analysis, nil
}

// AnalyzeMoodPatterns derives variability, stability, resilience and
// activity-mood correlations from a mood entry list. Entries are consumed in
// the order given; callers wanting temporal adjacency must pre-sort by
// timestamp. Returns nil for an empty list.
func AnalyzeMoodPatterns(entries []domain.MoodEntry, timeframe domain.Timeframe) *domain.MoodAnalysis {
	if len(entries) == 0 {
		return nil
	}

	analysis := &domain.MoodAnalysis{
		Timeframe:  timeframe,
		EntryCount: len(entries),
		Metrics: domain.MoodMetrics{
			EmotionalVariability: computeEmotionalVariability(entries),
			MoodStability:        computeMoodStability(entries),
			RecoveryResilience:   computeRecoveryResilience(entries),
		},
		ActivityMoods: correlateActivityMoods(entries),
	}
	analysis.Insights = buildMoodInsights(analysis)

	return analysis
}

// computeEmotionalVariability is the mean absolute intensity delta between
// adjacent entries, normalized by the 5-point scale and clamped to [0,1].
func computeEmotionalVariability(entries []domain.MoodEntry) float64 {
	if len(entries) < 2 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(entries); i++ {
		delta := entries[i].Intensity - entries[i-1].Intensity
		if delta < 0 {
			delta = -delta
		}
		total += float64(delta)
	}

	variability := total / float64(len(entries)-1) / 5.0
	if variability > 1 {
		variability = 1
	}
	if variability < 0 {
		variability = 0
	}
	return variability
}

// computeMoodStability is 1 minus the rate of primary-mood changes between
// adjacent entries. A single entry is perfectly stable.
func computeMoodStability(entries []domain.MoodEntry) float64 {
	if len(entries) < 2 {
		return 1
	}

	changes := 0
	for i := 1; i < len(entries); i++ {
		if entries[i].Primary != entries[i-1].Primary {
			changes++
		}
	}

	return 1 - float64(changes)/float64(len(entries)-1)
}

// computeRecoveryResilience is the fraction of negative-mood entries whose
// successor is positive. With no negative antecedents the result is 1: no
// evidence of struggling counts as resilient.
func computeRecoveryResilience(entries []domain.MoodEntry) float64 {
	negatives := 0
	recoveries := 0
	for i := 0; i < len(entries)-1; i++ {
		if domain.MoodPolarity(entries[i].Primary) != domain.PolarityNegative {
			continue
		}
		negatives++
		if domain.MoodPolarity(entries[i+1].Primary) == domain.PolarityPositive {
			recoveries++
		}
	}

	if negatives == 0 {
		return 1
	}
	return float64(recoveries) / float64(negatives)
}

// correlateActivityMoods counts primary-mood frequency per activity tag and
// picks the dominant mood per activity. Ties keep the first mood to reach the
// winning count, preserving encounter order.
func correlateActivityMoods(entries []domain.MoodEntry) []domain.ActivityMood {
	var order []string
	counts := make(map[string]map[domain.MoodType]int)
	dominant := make(map[string]domain.MoodType)
	best := make(map[string]int)

	for _, entry := range entries {
		for _, activity := range entry.Activities {
			if counts[activity] == nil {
				counts[activity] = make(map[domain.MoodType]int)
				order = append(order, activity)
			}
			counts[activity][entry.Primary]++
			if counts[activity][entry.Primary] > best[activity] {
				best[activity] = counts[activity][entry.Primary]
				dominant[activity] = entry.Primary
			}
		}
	}

	result := make([]domain.ActivityMood, 0, len(order))
	for _, activity := range order {
		result = append(result, domain.ActivityMood{
			Activity: activity,
			Dominant: dominant[activity],
			Counts:   counts[activity],
		})
	}
	return result
}

// buildMoodInsights applies the threshold rules to a computed analysis.
func buildMoodInsights(a *domain.MoodAnalysis) []domain.Insight {
	insights := []domain.Insight{}

	if a.Metrics.EmotionalVariability > HighVariabilityThreshold {
		insights = append(insights, domain.Insight{
			Type:           "pattern",
			Description:    "Suas emoções têm variado bastante de intensidade ultimamente.",
			Confidence:     VariabilityInsightConfidence,
			Recommendation: "Tente identificar o que antecede as mudanças bruscas de humor e registre os gatilhos.",
		})
	}

	for _, am := range a.ActivityMoods {
		if domain.MoodPolarity(am.Dominant) == domain.PolarityPositive {
			insights = append(insights, domain.Insight{
				Type:           "improvement",
				Description:    fmt.Sprintf("A atividade %q costuma vir acompanhada de humor %s.", am.Activity, am.Dominant),
				Confidence:     ActivityInsightConfidence,
				Recommendation: fmt.Sprintf("Reserve mais tempo para %q na sua rotina.", am.Activity),
			})
		}
	}

	if a.Metrics.RecoveryResilience < LowResilienceThreshold {
		insights = append(insights, domain.Insight{
			Type:           "warning",
			Description:    "Momentos difíceis têm demorado a dar lugar a emoções positivas.",
			Confidence:     ResilienceInsightConfidence,
			Recommendation: "Considere praticar pequenos rituais de autocuidado após dias pesados.",
		})
	}

	return insights
}
