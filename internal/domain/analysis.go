package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrendDirection describes how a score has been moving.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

// ImpactLevel classifies how strongly a mood discrepancy is likely to be felt.
// Tier labels are kept in Portuguese to match the client vocabulary.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "alto"
	ImpactMedium ImpactLevel = "médio"
	ImpactLow    ImpactLevel = "baixo"
)

// Insight is a single rule-generated observation with a suggested follow-up.
// @Description Rule-based insight with confidence and recommendation.
type Insight struct {
	// Insight kind: "pattern", "improvement", "warning" or "disconnection"
	Type        string `json:"type"`
	Description string `json:"description"`
	// Fixed confidence literal assigned by the generating rule
	Confidence     float64 `json:"confidence,omitempty"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// MoodMetrics are the derived per-user mood pattern measures, each in [0,1].
// @Description Derived mood pattern metrics.
type MoodMetrics struct {
	// Mean absolute intensity change between adjacent entries, normalized
	EmotionalVariability float64 `json:"emotionalVariability"`
	// 1 minus the rate of primary-mood changes between adjacent entries
	MoodStability float64 `json:"moodStability"`
	// Fraction of negative moods followed by a positive one
	RecoveryResilience float64 `json:"recoveryResilience"`
}

// ActivityMood summarizes which mood dominates while a given activity is logged.
type ActivityMood struct {
	Activity string           `json:"activity"`
	Dominant MoodType         `json:"dominant"`
	Counts   map[MoodType]int `json:"counts"`
}

// MoodAnalysis is a computed view over a user's mood entries for a timeframe.
// It is recomputed on demand and never persisted as source of truth.
type MoodAnalysis struct {
	Timeframe     Timeframe      `json:"timeframe"`
	EntryCount    int            `json:"entryCount"`
	Metrics       MoodMetrics    `json:"metrics"`
	ActivityMoods []ActivityMood `json:"activityMoods"`
	Insights      []Insight      `json:"insights"`
}

// ScoreTrend pairs a score with its direction of movement.
type ScoreTrend struct {
	Score float64        `json:"score"`
	Trend TrendDirection `json:"trend"`
}

// CategoryAnalysis is the per-category slice of a relationship analysis.
type CategoryAnalysis struct {
	Score    float64        `json:"score"`
	Trend    TrendDirection `json:"trend"`
	Insights []string       `json:"insights"`
}

// RelationshipDynamics groups observed interaction patterns.
type RelationshipDynamics struct {
	PositivePatterns   []string `json:"positivePatterns"`
	ConcerningPatterns []string `json:"concerningPatterns"`
	GrowthAreas        []string `json:"growthAreas"`
	CommunicationStyle string   `json:"communicationStyle"`
}

// MoodDiscrepancy is a temporally paired mood comparison whose dissimilarity
// crossed the significance threshold.
type MoodDiscrepancy struct {
	Timestamp   time.Time   `json:"timestamp"`
	UserMood    MoodType    `json:"userMood"`
	PartnerMood MoodType    `json:"partnerMood"`
	Similarity  float64     `json:"similarity"`
	Discrepancy float64     `json:"discrepancy"`
	Impact      ImpactLevel `json:"impact"`
}

// AnalysisSource tags which production path built a RelationshipAnalysis.
type AnalysisSource string

const (
	SourceHeuristic AnalysisSource = "heuristic"
	SourceLLM       AnalysisSource = "llm"
)

// RelationshipAnalysis is the canonical analysis shape. Both the heuristic
// correlator and the LLM path are normalized into it before storage or
// rendering; Source records which path produced it.
// @Description Canonical relationship analysis.
type RelationshipAnalysis struct {
	Source        AnalysisSource `json:"source"`
	OverallHealth ScoreTrend     `json:"overallHealth"`

	Categories map[string]CategoryAnalysis `json:"categories"`

	Strengths                []string `json:"strengths"`
	Challenges               []string `json:"challenges"`
	CommunicationSuggestions []string `json:"communicationSuggestions"`
	ActionItems              []string `json:"actionItems"`

	Dynamics RelationshipDynamics `json:"relationshipDynamics"`

	EmotionalSync     float64           `json:"emotionalSync"`
	MoodDiscrepancies []MoodDiscrepancy `json:"moodDiscrepancies"`
	Insights          []Insight         `json:"insights"`
	RiskFactors       []string          `json:"riskFactors"`
	Recommendations   []string          `json:"recommendations"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// NewRelationshipAnalysis returns a fully-shaped analysis with the documented
// defaults: zero scores, empty slices, "stable" trend, "collaborative" style.
func NewRelationshipAnalysis(source AnalysisSource) RelationshipAnalysis {
	return RelationshipAnalysis{
		Source:        source,
		OverallHealth: ScoreTrend{Trend: TrendStable},
		Categories:    make(map[string]CategoryAnalysis),

		Strengths:                []string{},
		Challenges:               []string{},
		CommunicationSuggestions: []string{},
		ActionItems:              []string{},

		Dynamics: RelationshipDynamics{
			PositivePatterns:   []string{},
			ConcerningPatterns: []string{},
			GrowthAreas:        []string{},
			CommunicationStyle: "collaborative",
		},

		MoodDiscrepancies: []MoodDiscrepancy{},
		Insights:          []Insight{},
		RiskFactors:       []string{},
		Recommendations:   []string{},

		GeneratedAt: time.Now().UTC(),
	}
}

// LLMAnalysisOutput is the JSON shape the LLM is instructed to produce.
// It overlaps with RelationshipAnalysis but carries no emotional-sync fields;
// NormalizeLLM adapts it into the canonical shape.
// @Description LLM-generated relationship analysis payload.
type LLMAnalysisOutput struct {
	OverallHealth struct {
		Score float64 `json:"score"`
		Trend string  `json:"trend"`
	} `json:"overallHealth"`
	Categories map[string]struct {
		Score    float64  `json:"score"`
		Trend    string   `json:"trend"`
		Insights []string `json:"insights"`
	} `json:"categories"`
	Strengths                []string `json:"strengths"`
	Challenges               []string `json:"challenges"`
	CommunicationSuggestions []string `json:"communicationSuggestions"`
	ActionItems              []string `json:"actionItems"`
	RelationshipDynamics     struct {
		PositivePatterns   []string `json:"positivePatterns"`
		ConcerningPatterns []string `json:"concerningPatterns"`
		GrowthAreas        []string `json:"growthAreas"`
	} `json:"relationshipDynamics"`
}

// NormalizeLLM converts the LLM payload into the canonical analysis shape.
func NormalizeLLM(out *LLMAnalysisOutput) RelationshipAnalysis {
	a := NewRelationshipAnalysis(SourceLLM)
	a.OverallHealth = ScoreTrend{
		Score: out.OverallHealth.Score,
		Trend: normalizeTrend(out.OverallHealth.Trend),
	}
	for key, c := range out.Categories {
		insights := c.Insights
		if insights == nil {
			insights = []string{}
		}
		a.Categories[key] = CategoryAnalysis{
			Score:    c.Score,
			Trend:    normalizeTrend(c.Trend),
			Insights: insights,
		}
	}
	a.Strengths = orEmpty(out.Strengths)
	a.Challenges = orEmpty(out.Challenges)
	a.CommunicationSuggestions = orEmpty(out.CommunicationSuggestions)
	a.ActionItems = orEmpty(out.ActionItems)
	a.Dynamics.PositivePatterns = orEmpty(out.RelationshipDynamics.PositivePatterns)
	a.Dynamics.ConcerningPatterns = orEmpty(out.RelationshipDynamics.ConcerningPatterns)
	a.Dynamics.GrowthAreas = orEmpty(out.RelationshipDynamics.GrowthAreas)
	return a
}

func normalizeTrend(s string) TrendDirection {
	switch TrendDirection(s) {
	case TrendImproving, TrendDeclining:
		return TrendDirection(s)
	default:
		return TrendStable
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// AnalysisRecord is a persisted relationship analysis.
type AnalysisRecord struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID            `gorm:"type:uuid;not null;index:idx_analysis_user_created" json:"user_id"`
	PartnerID *uuid.UUID           `gorm:"type:uuid" json:"partner_id,omitempty"`
	Source    AnalysisSource       `gorm:"type:varchar(16);not null" json:"source"`
	Payload   RelationshipAnalysis `gorm:"serializer:json" json:"payload"`
	CreatedAt time.Time            `gorm:"autoCreateTime;index:idx_analysis_user_created,sort:desc" json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_history"
}

// AnalysisContext is the context object serialized for the LLM.
// @Description Context data for LLM analysis generation.
type AnalysisContext struct {
	Heuristic    RelationshipAnalysis `json:"heuristic"`
	UserMoods    *MoodAnalysis        `json:"user_moods,omitempty"`
	PartnerMoods *MoodAnalysis        `json:"partner_moods,omitempty"`
	Radar        []RadarPoint         `json:"radar,omitempty"`
}

// AnalysisResponse wraps an analysis with the trace ID used for feedback.
// @Description Relationship analysis response.
type AnalysisResponse struct {
	Analysis RelationshipAnalysis `json:"analysis"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
