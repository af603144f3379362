package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/llm"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// analysisCacheTTL bounds staleness of the cached latest analysis.
	analysisCacheTTL = time.Hour

	// Category score cutoffs for narrative buckets (0-100 scale).
	strengthScoreThreshold  = 80.0
	challengeScoreThreshold = 40.0
)

// AnalysisService orchestrates full relationship analyses: it runs the
// heuristic pipeline, optionally hands the derived context to the LLM,
// normalizes either result into the canonical shape and persists it.
type AnalysisService interface {
	// Generate produces, persists and caches a new analysis.
	Generate(ctx context.Context, userID uuid.UUID, source domain.AnalysisSource) (*domain.RelationshipAnalysis, error)
	// Latest returns the most recent persisted analysis, preferring the cache.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.AnalysisRecord, error)
	// History lists persisted analyses newest-first.
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AnalysisRecord, error)
}

type analysisService struct {
	syncService  SyncService
	moodAnalysis MoodAnalysisService
	trends       TrendsService
	llmClient    llm.AnalysisLLM
	analysisRepo repository.AnalysisRepository
	userRepo     repository.UserRepository
	cache        *redis.Client
}

// NewAnalysisService creates a new AnalysisService. cache may be nil to
// disable caching.
func NewAnalysisService(
	syncService SyncService,
	moodAnalysis MoodAnalysisService,
	trends TrendsService,
	llmClient llm.AnalysisLLM,
	analysisRepo repository.AnalysisRepository,
	userRepo repository.UserRepository,
	cache *redis.Client,
) AnalysisService {
	return &analysisService{
		syncService:  syncService,
		moodAnalysis: moodAnalysis,
		trends:       trends,
		llmClient:    llmClient,
		analysisRepo: analysisRepo,
		userRepo:     userRepo,
		cache:        cache,
	}
}

func (s *analysisService) Generate(ctx context.Context, userID uuid.UUID, source domain.AnalysisSource) (*domain.RelationshipAnalysis, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.PartnerID == nil {
		return nil, domain.ErrNoPartner
	}

	tracer := otel.Tracer("wellness-api/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("analysis.source", string(source)),
		),
	)
	defer span.End()

	heuristic, err := s.syncService.AnalyzeSync(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, overall, err := s.trends.CategoryTrends(ctx, userID, DefaultTrendsWindowDays)
	if err != nil {
		return nil, err
	}
	enrichFromTrends(heuristic, categories, overall)

	analysis := *heuristic
	if source == domain.SourceLLM {
		llmAnalysis, err := s.generateLLM(ctx, user, heuristic)
		if err != nil {
			return nil, err
		}
		analysis = *llmAnalysis
	}

	record := &domain.AnalysisRecord{
		UserID:    userID,
		PartnerID: user.PartnerID,
		Source:    analysis.Source,
		Payload:   analysis,
	}
	if err := s.analysisRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	s.cacheLatest(ctx, record)

	span.SetAttributes(attribute.Float64("analysis.overall_health", analysis.OverallHealth.Score))
	return &analysis, nil
}

// generateLLM builds the LLM context from the heuristic results, calls the
// model and normalizes the payload, carrying the heuristic sync fields into
// the canonical shape.
func (s *analysisService) generateLLM(ctx context.Context, user *domain.User, heuristic *domain.RelationshipAnalysis) (*domain.RelationshipAnalysis, error) {
	userMoods, err := s.moodAnalysis.Analyze(ctx, user.ID, domain.TimeframeMonthly)
	if err != nil {
		return nil, err
	}
	partnerMoods, err := s.moodAnalysis.Analyze(ctx, *user.PartnerID, domain.TimeframeMonthly)
	if err != nil {
		return nil, err
	}
	radar, err := s.trends.Radar(ctx, user.ID, DefaultTrendsWindowDays)
	if err != nil {
		return nil, err
	}

	analysisCtx := &domain.AnalysisContext{
		Heuristic:    *heuristic,
		UserMoods:    userMoods,
		PartnerMoods: partnerMoods,
		Radar:        radar,
	}

	output, err := s.llmClient.GenerateAnalysis(ctx, analysisCtx)
	if err != nil {
		return nil, err
	}

	analysis := domain.NormalizeLLM(output)
	analysis.EmotionalSync = heuristic.EmotionalSync
	analysis.MoodDiscrepancies = heuristic.MoodDiscrepancies
	analysis.Insights = append(analysis.Insights, heuristic.Insights...)
	analysis.RiskFactors = append(analysis.RiskFactors, heuristic.RiskFactors...)
	return &analysis, nil
}

// enrichFromTrends folds the assessment-derived category scores into the
// heuristic analysis and derives the narrative buckets from them.
func enrichFromTrends(a *domain.RelationshipAnalysis, categories map[string]domain.CategoryAnalysis, overall domain.ScoreTrend) {
	a.Categories = categories
	a.OverallHealth = overall

	for _, c := range domain.Categories {
		ca, ok := categories[c.Key]
		if !ok || ca.Score == 0 {
			continue
		}
		switch {
		case ca.Score >= strengthScoreThreshold:
			a.Strengths = append(a.Strengths, c.Label)
		case ca.Score <= challengeScoreThreshold:
			a.Challenges = append(a.Challenges, c.Label)
		}
		if ca.Trend == domain.TrendDeclining {
			a.Dynamics.GrowthAreas = append(a.Dynamics.GrowthAreas, c.Label)
		}
	}
}

func (s *analysisService) Latest(ctx context.Context, userID uuid.UUID) (*domain.AnalysisRecord, error) {
	if record := s.cachedLatest(ctx, userID); record != nil {
		return record, nil
	}

	record, err := s.analysisRepo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cacheLatest(ctx, record)
	return record, nil
}

func (s *analysisService) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AnalysisRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.analysisRepo.ListByUser(ctx, userID, limit)
}

func analysisCacheKey(userID uuid.UUID) string {
	return "analysis:latest:" + userID.String()
}

// cacheLatest stores the record in Redis. Cache failures are logged and
// otherwise ignored.
func (s *analysisService) cacheLatest(ctx context.Context, record *domain.AnalysisRecord) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, analysisCacheKey(record.UserID), data, analysisCacheTTL).Err(); err != nil {
		log.Printf("analysis cache write failed: %v", err)
	}
}

func (s *analysisService) cachedLatest(ctx context.Context, userID uuid.UUID) *domain.AnalysisRecord {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, analysisCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("analysis cache read failed: %v", err)
		}
		return nil
	}

	var record domain.AnalysisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil
	}
	return &record
}
