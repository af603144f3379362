package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// PairingWindow is the maximum timestamp distance for pairing two entries.
	PairingWindow = 24 * time.Hour

	// DiscrepancyThreshold is the minimum dissimilarity to flag a pair.
	DiscrepancyThreshold = 0.3
	// Impact tier cutoffs over the discrepancy value.
	HighImpactThreshold   = 0.7
	MediumImpactThreshold = 0.5

	// SyncWarningThreshold triggers the low-sync warning insight.
	SyncWarningThreshold = 0.6
	// SyncRecommendationThreshold triggers the therapeutic suggestions.
	SyncRecommendationThreshold = 0.4
	// NegativityRatioThreshold flags a pooled negative-mood majority.
	NegativityRatioThreshold = 0.7
	// LowSimilarityThreshold and ConsecutiveLowPairs drive the
	// emotional-disconnection risk factor.
	LowSimilarityThreshold = 0.2
	ConsecutiveLowPairs    = 3

	// SyncWindowDays is the default correlation window.
	SyncWindowDays = 30
)

// SyncService correlates two partners' mood streams.
type SyncService interface {
	// AnalyzeSync runs the emotion correlator over both partners' recent
	// mood entries. Requires a linked partner.
	AnalyzeSync(ctx context.Context, userID uuid.UUID) (*domain.RelationshipAnalysis, error)
}

type syncService struct {
	moodRepo repository.MoodEntryRepository
	userRepo repository.UserRepository
}

// NewSyncService creates a new SyncService.
func NewSyncService(moodRepo repository.MoodEntryRepository, userRepo repository.UserRepository) SyncService {
	return &syncService{
		moodRepo: moodRepo,
		userRepo: userRepo,
	}
}

func (s *syncService) AnalyzeSync(ctx context.Context, userID uuid.UUID) (*domain.RelationshipAnalysis, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.PartnerID == nil {
		return nil, domain.ErrNoPartner
	}

	tracer := otel.Tracer("wellness-api/sync")
	ctx, span := tracer.Start(ctx, "SyncService.AnalyzeSync",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("partner.id", user.PartnerID.String()),
		),
	)
	defer span.End()

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -SyncWindowDays)

	userEntries, err := s.moodRepo.ListByRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}
	partnerEntries, err := s.moodRepo.ListByRange(ctx, *user.PartnerID, from, now)
	if err != nil {
		return nil, err
	}

	analysis := AnalyzeRelationshipEmotions(userEntries, partnerEntries)

	span.SetAttributes(
		attribute.Int("entries.user", len(userEntries)),
		attribute.Int("entries.partner", len(partnerEntries)),
		attribute.Float64("emotional_sync", analysis.EmotionalSync),
	)
	if outJSON, err := json.Marshal(map[string]any{
		"emotional_sync": analysis.EmotionalSync,
		"discrepancies":  len(analysis.MoodDiscrepancies),
		"risk_factors":   analysis.RiskFactors,
	}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
	}

	return &analysis, nil
}

// moodPair is one user entry matched with its nearest partner entry.
type moodPair struct {
	user       domain.MoodEntry
	partner    domain.MoodEntry
	similarity float64
}

// AnalyzeRelationshipEmotions correlates two users' mood entries and always
// returns a fully-shaped analysis; empty inputs degrade to zeroed defaults.
func AnalyzeRelationshipEmotions(userEntries, partnerEntries []domain.MoodEntry) domain.RelationshipAnalysis {
	analysis := domain.NewRelationshipAnalysis(domain.SourceHeuristic)

	pairs, pairedFlags := pairEntries(userEntries, partnerEntries)

	if len(pairs) > 0 {
		total := 0.0
		for _, p := range pairs {
			total += p.similarity
		}
		analysis.EmotionalSync = total / float64(len(pairs))
	}

	analysis.MoodDiscrepancies = collectDiscrepancies(pairs)

	if len(pairs) > 0 && analysis.EmotionalSync < SyncWarningThreshold {
		analysis.Insights = append(analysis.Insights, domain.Insight{
			Type:           "warning",
			Description:    "A sintonia emocional do casal está abaixo do habitual.",
			Recommendation: "Reservem momentos para conversar sobre como cada um tem se sentido.",
		})
	}

	if ratio := pooledNegativityRatio(userEntries, partnerEntries); ratio > NegativityRatioThreshold {
		analysis.RiskFactors = append(analysis.RiskFactors,
			"Predomínio de emoções negativas em ambos os parceiros no período.")
	}

	if hasDisconnectionRun(userEntries, pairs, pairedFlags) {
		analysis.RiskFactors = append(analysis.RiskFactors,
			"Sequência de registros com baixa sintonia emocional, possível desconexão.")
		analysis.Insights = append(analysis.Insights, domain.Insight{
			Type:        "disconnection",
			Description: "Vários registros seguidos mostram humores muito distantes entre o casal.",
		})
	}

	// Suggestions only make sense once at least one pair was scored;
	// unpaired inputs keep the zeroed defaults.
	if len(pairs) > 0 {
		analysis.Recommendations = append(analysis.Recommendations, buildSyncRecommendations(analysis)...)
	}

	return analysis
}

// pairEntries matches each user entry with the partner entry at minimum
// absolute timestamp distance within the 24-hour window. Entries with no
// qualifying partner entry are skipped, not errors. The returned flags slice
// is parallel to userEntries and records which entries found a pair.
func pairEntries(userEntries, partnerEntries []domain.MoodEntry) ([]moodPair, []bool) {
	pairs := make([]moodPair, 0, len(userEntries))
	pairedFlags := make([]bool, len(userEntries))

	for i, ue := range userEntries {
		bestIdx := -1
		var bestDiff time.Duration
		for j, pe := range partnerEntries {
			diff := ue.Timestamp.Sub(pe.Timestamp)
			if diff < 0 {
				diff = -diff
			}
			if diff > PairingWindow {
				continue
			}
			if bestIdx == -1 || diff < bestDiff {
				bestIdx = j
				bestDiff = diff
			}
		}
		if bestIdx == -1 {
			continue
		}

		pe := partnerEntries[bestIdx]
		pairs = append(pairs, moodPair{
			user:       ue,
			partner:    pe,
			similarity: moodSimilarity(ue, pe),
		})
		pairedFlags[i] = true
	}

	return pairs, pairedFlags
}

// moodSimilarity scores how aligned two mood reports are. The result is
// intentionally unclamped: strongly mismatched intensities can push it
// negative and secondary-mood overlap can push it past 1. Downstream
// discrepancy thresholds were tuned against this raw range, so do not clamp.
func moodSimilarity(a, b domain.MoodEntry) float64 {
	sameCategory := sameMoodCategory(a.Primary, b.Primary)

	score := 0.3
	if sameCategory {
		score = 1.0
	}

	intensityDiff := a.Intensity - b.Intensity
	if intensityDiff < 0 {
		intensityDiff = -intensityDiff
	}
	score -= float64(intensityDiff) / 5.0

	score += secondaryOverlapBonus(a.Secondary, b.Secondary, sameCategory)

	return score
}

// sameMoodCategory reports whether both moods share a polarity. Neutral
// (unclassified) moods never match.
func sameMoodCategory(a, b domain.MoodType) bool {
	pa, pb := domain.MoodPolarity(a), domain.MoodPolarity(b)
	if pa == domain.PolarityNeutral || pb == domain.PolarityNeutral {
		return false
	}
	return pa == pb
}

// secondaryOverlapBonus is shared secondary moods over the longer list,
// weighted 0.2 when the primary categories match and 0.1 otherwise.
func secondaryOverlapBonus(a, b []domain.MoodType, sameCategory bool) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}

	set := make(map[domain.MoodType]bool, len(a))
	for _, m := range a {
		set[m] = true
	}
	shared := 0
	for _, m := range b {
		if set[m] {
			shared++
		}
	}

	weight := 0.1
	if sameCategory {
		weight = 0.2
	}
	return float64(shared) / float64(maxLen) * weight
}

// collectDiscrepancies flags pairs whose dissimilarity exceeds the threshold
// and classifies their impact tier.
func collectDiscrepancies(pairs []moodPair) []domain.MoodDiscrepancy {
	discrepancies := []domain.MoodDiscrepancy{}
	for _, p := range pairs {
		discrepancy := 1 - p.similarity
		if discrepancy <= DiscrepancyThreshold {
			continue
		}

		impact := domain.ImpactLow
		if discrepancy > HighImpactThreshold {
			impact = domain.ImpactHigh
		} else if discrepancy > MediumImpactThreshold {
			impact = domain.ImpactMedium
		}

		discrepancies = append(discrepancies, domain.MoodDiscrepancy{
			Timestamp:   p.user.Timestamp,
			UserMood:    p.user.Primary,
			PartnerMood: p.partner.Primary,
			Similarity:  p.similarity,
			Discrepancy: discrepancy,
			Impact:      impact,
		})
	}
	return discrepancies
}

// pooledNegativityRatio is the fraction of all entries, both users pooled,
// whose primary mood is negative.
func pooledNegativityRatio(userEntries, partnerEntries []domain.MoodEntry) float64 {
	total := len(userEntries) + len(partnerEntries)
	if total == 0 {
		return 0
	}

	negatives := 0
	for _, e := range userEntries {
		if domain.MoodPolarity(e.Primary) == domain.PolarityNegative {
			negatives++
		}
	}
	for _, e := range partnerEntries {
		if domain.MoodPolarity(e.Primary) == domain.PolarityNegative {
			negatives++
		}
	}
	return float64(negatives) / float64(total)
}

// hasDisconnectionRun walks the user entries in order looking for a run of
// at least ConsecutiveLowPairs paired entries below LowSimilarityThreshold.
// A failed pairing or a recovered similarity resets the run.
func hasDisconnectionRun(userEntries []domain.MoodEntry, pairs []moodPair, pairedFlags []bool) bool {
	run := 0
	pairIdx := 0
	for i := range userEntries {
		if !pairedFlags[i] {
			run = 0
			continue
		}
		similarity := pairs[pairIdx].similarity
		pairIdx++

		if similarity < LowSimilarityThreshold {
			run++
			if run >= ConsecutiveLowPairs {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// buildSyncRecommendations appends the fixed suggestion literals. Conditions
// push independently; duplicates across conditions are intentional.
func buildSyncRecommendations(a domain.RelationshipAnalysis) []string {
	var recs []string

	if a.EmotionalSync < SyncRecommendationThreshold {
		recs = append(recs,
			"Façam um check-in emocional diário de cinco minutos, sem distrações.",
			"Pratiquem escuta ativa: repitam com as próprias palavras o que o outro disse antes de responder.",
			"Considerem buscar acompanhamento de um terapeuta de casal.",
		)
	}

	for _, d := range a.MoodDiscrepancies {
		if d.Impact == domain.ImpactHigh {
			recs = append(recs,
				"Conversem sobre os dias em que os humores estiveram muito distantes e o que aconteceu neles.",
				"Combinem um sinal para pedir apoio quando um dos dois estiver em um dia difícil.",
			)
			break
		}
	}

	return recs
}
